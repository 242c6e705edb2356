package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
)

type projectApi struct {
	svc            *project.Service
	supervisionSvc *supervision.Service
	userSvc        *user.Service
}

func registerProjectAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *project.Service,
	supervisionSvc *supervision.Service,
	userSvc *user.Service,
) {
	api := projectApi{svc: svc, supervisionSvc: supervisionSvc, userSvc: userSvc}

	pg := g.Group("/projects", jwt)
	pg.GET("", api.query)
	pg.POST("", api.create, roleMiddleware(user.RoleStudent))

	// detail endpoints
	dg := pg.Group("/:id", api.visibleProjectMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.PUT("/status", api.setStatus)
	dg.DELETE("", api.destroy)
}

// Handlers

// query scopes the listing to the caller: students see their own projects, staff the projects of
// the students they actively supervise, admins everything.
func (api *projectApi) query(ctx echo.Context) error {
	filter := new(project.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []project.Project{})
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var projects []project.Project
	switch {
	case ctxUsr.IsStudent():
		filter.StudentID = ctxUsr.ID
		projects, err = api.svc.Filter(ctx.Request().Context(), *filter)
	case ctxUsr.IsStaff():
		projects, err = api.svc.SupervisedBy(ctx.Request().Context(), ctxUsr.ID, *filter)
	default:
		projects, err = api.svc.Filter(ctx.Request().Context(), *filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying projects")
	}
	return ctx.JSON(http.StatusOK, nonNil(projects))
}

func (api *projectApi) create(ctx echo.Context) error {
	var data project.NewProject
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	p, err := api.svc.Create(ctx.Request().Context(), ctxUsr.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating project")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *projectApi) retrieve(ctx echo.Context) error {
	p, ok := ctx.Get("object").(project.Project)
	if !ok {
		return errObjectNotFoundInCtx
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *projectApi) update(ctx echo.Context) error {
	p, ctxUsr, err := api.contextProject(ctx)
	if err != nil {
		return err
	}
	if !ctxUsr.IsAdmin() && p.StudentID != ctxUsr.ID {
		return errHttpForbidden
	}

	var data project.UpdateProject
	if err = ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}
	if p, err = api.svc.Update(ctx.Request().Context(), p.ID, data); err != nil {
		return errors.Wrap(err, "updating project")
	}
	return ctx.JSON(http.StatusOK, p)
}

// setStatus lets the owner move between draft and submitted; reviewers may set any status.
func (api *projectApi) setStatus(ctx echo.Context) error {
	p, ctxUsr, err := api.contextProject(ctx)
	if err != nil {
		return err
	}

	var data project.UpdateStatus
	if err = ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}
	if ctxUsr.IsStudent() && data.Status != project.StatusDraft && data.Status != project.StatusSubmitted {
		return errHttpForbidden
	}

	if p, err = api.svc.SetStatus(ctx.Request().Context(), p.ID, data); err != nil {
		return errors.Wrap(err, "setting project status")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *projectApi) destroy(ctx echo.Context) error {
	p, ctxUsr, err := api.contextProject(ctx)
	if err != nil {
		return err
	}
	if !ctxUsr.IsAdmin() && p.StudentID != ctxUsr.ID {
		return errHttpForbidden
	}
	if err = api.svc.Delete(ctx.Request().Context(), p.ID); err != nil {
		return errors.Wrap(err, "deleting project")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *projectApi) contextProject(ctx echo.Context) (project.Project, user.User, error) {
	p, ok := ctx.Get("object").(project.Project)
	if !ok {
		return project.Project{}, user.User{}, errObjectNotFoundInCtx
	}
	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return project.Project{}, user.User{}, errors.Wrap(err, "getting context user")
	}
	return p, ctxUsr, nil
}

// visibleProjectMiddleware loads the project and hides it from users who may not see it.
func (api *projectApi) visibleProjectMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctxUsr, err := getContextUser(ctx, api.userSvc)
			if err != nil {
				return errors.Wrap(err, "getting context user")
			}

			p, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
			if err != nil {
				if errors.Is(err, project.ErrNotFound) {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding project by ID")
			}

			visible, err := canSeeStudentWork(ctx, api.supervisionSvc, ctxUsr, p.StudentID)
			if err != nil {
				return err
			}
			if !visible && !(ctxUsr.IsStaff() && p.SupervisorID.String == ctxUsr.ID) {
				return errHttpNotFound
			}
			ctx.Set("object", p)
			return next(ctx)
		}
	}
}

// canSeeStudentWork reports whether usr may see the work of studentID: admins see everything,
// students their own work, staff the work of the students they actively supervise.
func canSeeStudentWork(ctx echo.Context, supervisionSvc *supervision.Service, usr user.User, studentID string) (bool, error) {
	switch {
	case usr.IsAdmin():
		return true, nil
	case usr.IsStudent():
		return usr.ID == studentID, nil
	}

	ids, err := supervisionSvc.StudentsBySupervisor(ctx.Request().Context(), usr.ID)
	if err != nil {
		return false, errors.Wrap(err, "finding supervised students")
	}
	for _, id := range ids {
		if id == studentID {
			return true, nil
		}
	}
	return false, nil
}
