package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Fish-Fur/optionoids"
	"github.com/Fish-Fur/optionoids/middleware"
)

// CheckQuery runs fn over the URL query parameters, stores the options in the
// request context on success, or returns 400 with the failures.
func CheckQuery(fn middleware.CheckFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return check(c, next, middleware.QueryOptions(c.Request()), fn)
		}
	}
}

// CheckForm runs fn over the parsed form (body and query) parameters.
func CheckForm(fn middleware.CheckFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			o, err := middleware.FormOptions(c.Request())
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
			}
			return check(c, next, o, fn)
		}
	}
}

func check(c echo.Context, next echo.HandlerFunc, o optionoids.Options, fn middleware.CheckFunc) error {
	if errs := middleware.Check(o, fn); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(errs))
	}
	ctx := middleware.ContextWithOptions(c.Request().Context(), o)
	c.SetRequest(c.Request().WithContext(ctx))
	return next(c)
}

// GetOptions fetches the checked options from echo.Context.
func GetOptions(c echo.Context) (optionoids.Options, bool) {
	return middleware.OptionsFromContext(c.Request().Context())
}
