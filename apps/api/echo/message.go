package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core/message"
	"github.com/trezcool/unirepo/core/user"
)

type messageApi struct {
	svc     *message.Service
	userSvc *user.Service
}

func registerMessageAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *message.Service, userSvc *user.Service) {
	api := messageApi{svc: svc, userSvc: userSvc}

	mg := g.Group("/messages", jwt)
	mg.GET("/recipients", api.recipients)
	mg.GET("/inbox", api.inbox)
	mg.GET("/sent", api.sent)
	mg.POST("", api.send)
}

// Handlers

func (api *messageApi) recipients(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	return ctx.JSON(http.StatusOK, nonNil(message.RecipientOptions(claims.Role)))
}

func (api *messageApi) inbox(ctx echo.Context) error {
	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	msgs, err := api.svc.Inbox(ctx.Request().Context(), ctxUsr.ID)
	if err != nil {
		return errors.Wrap(err, "querying inbox")
	}
	return ctx.JSON(http.StatusOK, nonNil(msgs))
}

func (api *messageApi) sent(ctx echo.Context) error {
	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	msgs, err := api.svc.Sent(ctx.Request().Context(), ctxUsr.ID)
	if err != nil {
		return errors.Wrap(err, "querying sent messages")
	}
	return ctx.JSON(http.StatusOK, nonNil(msgs))
}

func (api *messageApi) send(ctx echo.Context) error {
	var data message.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	msgs, err := api.svc.Send(ctx.Request().Context(), ctxUsr, data)
	if err != nil {
		return errors.Wrap(err, "sending message")
	}
	return ctx.JSON(http.StatusCreated, msgs)
}
