package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core/citation"
	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
)

type citationApi struct {
	svc            *citation.Service
	projectSvc     *project.Service
	supervisionSvc *supervision.Service
	userSvc        *user.Service
}

func registerCitationAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *citation.Service,
	projectSvc *project.Service,
	supervisionSvc *supervision.Service,
	userSvc *user.Service,
) {
	api := citationApi{svc: svc, projectSvc: projectSvc, supervisionSvc: supervisionSvc, userSvc: userSvc}

	cg := g.Group("/citations", jwt)
	cg.GET("", api.query)
	cg.POST("", api.create, roleMiddleware(user.RoleStudent))

	// detail endpoints
	dg := cg.Group("/:id", api.visibleCitationMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("/validate", api.validate, roleMiddleware(user.RoleStaff, user.RoleAdmin))
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *citationApi) query(ctx echo.Context) error {
	filter := new(citation.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []citation.Citation{})
	}
	if v := ctx.QueryParam("isValidated"); v != "" {
		isValidated, err := strconv.ParseBool(v)
		if err != nil {
			return ctx.JSON(http.StatusOK, []citation.Citation{})
		}
		filter.IsValidated = &isValidated
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var citations []citation.Citation
	switch {
	case ctxUsr.IsStudent():
		filter.StudentID = ctxUsr.ID
		citations, err = api.svc.Filter(ctx.Request().Context(), *filter)
	case ctxUsr.IsStaff():
		citations, err = api.svc.BySupervisor(ctx.Request().Context(), ctxUsr.ID, *filter)
	default:
		citations, err = api.svc.Filter(ctx.Request().Context(), *filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying citations")
	}
	return ctx.JSON(http.StatusOK, nonNil(citations))
}

// create cites a material from one of the student's own projects. Unknown projects are tolerated.
func (api *citationApi) create(ctx echo.Context) error {
	var data citation.NewCitation
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	p, err := api.projectSvc.GetByID(ctx.Request().Context(), data.ProjectID)
	switch {
	case err == nil:
		if p.StudentID != ctxUsr.ID {
			return errHttpForbidden
		}
	case !errors.Is(err, project.ErrNotFound):
		return errors.Wrap(err, "finding project by ID")
	}

	c, err := api.svc.Create(ctx.Request().Context(), ctxUsr.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating citation")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *citationApi) retrieve(ctx echo.Context) error {
	c, ok := ctx.Get("object").(citation.Citation)
	if !ok {
		return errObjectNotFoundInCtx
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *citationApi) validate(ctx echo.Context) error {
	c, ok := ctx.Get("object").(citation.Citation)
	if !ok {
		return errObjectNotFoundInCtx
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data citation.Review
	if err = ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}
	if c, err = api.svc.Validate(ctx.Request().Context(), c.ID, ctxUsr.ID, data); err != nil {
		return errors.Wrap(err, "validating citation")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *citationApi) destroy(ctx echo.Context) error {
	c, ok := ctx.Get("object").(citation.Citation)
	if !ok {
		return errObjectNotFoundInCtx
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if !ctxUsr.IsAdmin() && c.StudentID != ctxUsr.ID {
		return errHttpForbidden
	}

	if err = api.svc.Delete(ctx.Request().Context(), c.ID); err != nil {
		return errors.Wrap(err, "deleting citation")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// visibleCitationMiddleware loads the citation and hides it from users who may not see it.
// Staff see the citations of every student they have supervised, whatever the supervision status.
func (api *citationApi) visibleCitationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctxUsr, err := getContextUser(ctx, api.userSvc)
			if err != nil {
				return errors.Wrap(err, "getting context user")
			}

			c, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
			if err != nil {
				if errors.Is(err, citation.ErrNotFound) {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding citation by ID")
			}

			visible := ctxUsr.IsAdmin() || c.StudentID == ctxUsr.ID
			if !visible && ctxUsr.IsStaff() {
				ids, err := api.supervisionSvc.StudentsOf(ctx.Request().Context(), ctxUsr.ID, false /* activeOnly */)
				if err != nil {
					return errors.Wrap(err, "finding supervised students")
				}
				for _, id := range ids {
					if id == c.StudentID {
						visible = true
						break
					}
				}
			}
			if !visible {
				return errHttpNotFound
			}
			ctx.Set("object", c)
			return next(ctx)
		}
	}
}
