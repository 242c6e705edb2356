package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core/user"
)

type sessionApi struct {
	tokens   *tokenIssuer
	svc      *user.Service
	validate *validator.Validate
}

func registerSessionAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	tokens *tokenIssuer,
	svc *user.Service,
	validate *validator.Validate,
) {
	api := sessionApi{tokens: tokens, svc: svc, validate: validate}

	sg := g.Group("/auth")

	// un-authed endpoints
	sg.POST("/login", api.login)
	sg.POST("/register", api.register)

	// authed endpoints
	ag := sg.Group("", jwt)
	ag.POST("/token-refresh", api.refreshToken)
	ag.POST("/logout", api.logout)
	ag.GET("/me", api.me)
}

// Handlers

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data.Email, data.Password, data.Role)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return errInvalidLogin
		}
		return errors.Wrap(err, "authenticating")
	}
	return api.respondWithToken(ctx, http.StatusOK, usr)
}

func (api *sessionApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errHttpBadRequest
	}

	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return api.respondWithToken(ctx, http.StatusCreated, usr)
}

func (api *sessionApi) refreshToken(ctx echo.Context) error {
	token, err := api.tokens.refresh(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	usr, err := getContextUser(ctx, api.svc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

// logout only acknowledges: tokens are stateless and expire on their own.
func (api *sessionApi) logout(ctx echo.Context) error {
	if _, err := getContextUser(ctx, api.svc); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "You have been successfully logged out"})
}

func (api *sessionApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.svc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *sessionApi) respondWithToken(ctx echo.Context, code int, usr user.User) error {
	token, err := api.tokens.tokenFor(usr)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(code, LoginResponse{Token: token, User: usr.Redacted()})
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required"`
	}

	LoginResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

// Validate only checks presence; a wrong role is reported as invalid credentials.
// Credentials are matched as sent, without cleaning.
func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(lr)
}
