package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errObjectNotFoundInCtx = errors.New("object not found in echo.Context")

// objectMiddleware loads the record named by the `:id` path param into the "object" context key.
// Unknown ids end the request with 404.
func objectMiddleware(get func(ctx echo.Context, id string) (interface{}, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			obj, err := get(ctx, ctx.Param("id"))
			if err != nil {
				if isNotFound(err) {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding object by ID")
			}
			ctx.Set("object", obj)
			return next(ctx)
		}
	}
}

// nonNil keeps empty lists from being encoded as null.
func nonNil[T any](objs []T) []T {
	if objs == nil {
		return []T{}
	}
	return objs
}
