package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core/material"
	"github.com/trezcool/unirepo/core/user"
	"github.com/trezcool/unirepo/services/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type materialApi struct {
	svc     *material.Service
	userSvc *user.Service
}

func registerMaterialAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *material.Service, userSvc *user.Service) {
	api := materialApi{svc: svc, userSvc: userSvc}

	mg := g.Group("/materials", jwt)
	mg.GET("", api.query)
	mg.POST("", api.create)
	mg.GET("/export", api.export, roleMiddleware(user.RoleStaff, user.RoleAdmin))

	// detail endpoints
	dg := mg.Group("/:id", objectMiddleware(func(ctx echo.Context, id string) (interface{}, error) {
		return svc.GetByID(ctx.Request().Context(), id)
	}))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy, adminMiddleware())
	dg.POST("/download", api.download)
}

// Handlers

func (api *materialApi) query(ctx echo.Context) error {
	filter := new(material.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []material.Material{})
	}

	materials, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	return ctx.JSON(http.StatusOK, nonNil(materials))
}

func (api *materialApi) create(ctx echo.Context) error {
	var data material.NewMaterial
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	m, err := api.svc.Create(ctx.Request().Context(), ctxUsr.Email, data)
	if err != nil {
		return errors.Wrap(err, "creating material")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *materialApi) retrieve(ctx echo.Context) error {
	m, ok := ctx.Get("object").(material.Material)
	if !ok {
		return errObjectNotFoundInCtx
	}
	return ctx.JSON(http.StatusOK, m)
}

// update is allowed to admins and to the uploader.
func (api *materialApi) update(ctx echo.Context) error {
	m, ok := ctx.Get("object").(material.Material)
	if !ok {
		return errObjectNotFoundInCtx
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if !ctxUsr.IsAdmin() && m.UploadedBy != ctxUsr.Email {
		return errHttpForbidden
	}

	var data material.UpdateMaterial
	if err = ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}
	if m, err = api.svc.Update(ctx.Request().Context(), m.ID, data); err != nil {
		return errors.Wrap(err, "updating material")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *materialApi) destroy(ctx echo.Context) error {
	m, ok := ctx.Get("object").(material.Material)
	if !ok {
		return errObjectNotFoundInCtx
	}
	if err := api.svc.Delete(ctx.Request().Context(), m.ID); err != nil {
		return errors.Wrap(err, "deleting material")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *materialApi) download(ctx echo.Context) error {
	m, ok := ctx.Get("object").(material.Material)
	if !ok {
		return errObjectNotFoundInCtx
	}
	m, err := api.svc.IncrementDownload(ctx.Request().Context(), m.ID)
	if err != nil {
		return errors.Wrap(err, "counting download")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *materialApi) export(ctx echo.Context) error {
	filter := new(material.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errHttpBadRequest
	}

	materials, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	buf, err := export.MaterialsWorkbook(materials)
	if err != nil {
		return errors.Wrap(err, "exporting materials")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="materials.xlsx"`)
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
