package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
)

type supervisionApi struct {
	svc     *supervision.Service
	userSvc *user.Service
}

func registerSupervisionAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *supervision.Service, userSvc *user.Service) {
	api := supervisionApi{svc: svc, userSvc: userSvc}

	sg := g.Group("/supervisions", jwt)
	sg.GET("", api.query)
	sg.POST("", api.create, adminMiddleware())

	// detail endpoints
	dg := sg.Group("/:id", adminMiddleware(), objectMiddleware(func(ctx echo.Context, id string) (interface{}, error) {
		return svc.GetByID(ctx.Request().Context(), id)
	}))
	dg.GET("", api.retrieve)
	dg.PUT("/status", api.setStatus)
	dg.DELETE("", api.destroy)
}

// Handlers

// query lists every supervision to admins; staff and students only see their own.
func (api *supervisionApi) query(ctx echo.Context) error {
	filter := new(supervision.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []supervision.Supervision{})
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	switch {
	case ctxUsr.IsStudent():
		filter.StudentID = ctxUsr.ID
	case ctxUsr.IsStaff():
		filter.SupervisorID = ctxUsr.ID
	}

	sups, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying supervisions")
	}
	return ctx.JSON(http.StatusOK, nonNil(sups))
}

func (api *supervisionApi) create(ctx echo.Context) error {
	var data supervision.NewSupervision
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	s, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating supervision")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *supervisionApi) retrieve(ctx echo.Context) error {
	s, ok := ctx.Get("object").(supervision.Supervision)
	if !ok {
		return errObjectNotFoundInCtx
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *supervisionApi) setStatus(ctx echo.Context) error {
	s, ok := ctx.Get("object").(supervision.Supervision)
	if !ok {
		return errObjectNotFoundInCtx
	}

	var data supervision.UpdateStatus
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}
	s, err := api.svc.SetStatus(ctx.Request().Context(), s.ID, data)
	if err != nil {
		return errors.Wrap(err, "setting supervision status")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *supervisionApi) destroy(ctx echo.Context) error {
	s, ok := ctx.Get("object").(supervision.Supervision)
	if !ok {
		return errObjectNotFoundInCtx
	}
	if err := api.svc.Delete(ctx.Request().Context(), s.ID); err != nil {
		return errors.Wrap(err, "deleting supervision")
	}
	return ctx.NoContent(http.StatusNoContent)
}
