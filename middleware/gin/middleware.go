package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fish-Fur/optionoids"
	"github.com/Fish-Fur/optionoids/middleware"
)

// CheckQuery runs fn over the URL query parameters. On failure it answers 400
// with the failures payload; otherwise it stores the options in the request
// context and continues.
func CheckQuery(fn middleware.CheckFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		check(c, middleware.QueryOptions(c.Request), fn)
	}
}

// CheckForm runs fn over the parsed form (body and query) parameters.
func CheckForm(fn middleware.CheckFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := middleware.FormOptions(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		check(c, o, fn)
	}
}

func check(c *gin.Context, o optionoids.Options, fn middleware.CheckFunc) {
	if errs := middleware.Check(o, fn); len(errs) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(errs))
		return
	}
	c.Request = c.Request.WithContext(middleware.ContextWithOptions(c.Request.Context(), o))
	c.Next()
}

// GetOptions fetches the checked options from gin.Context.
func GetOptions(c *gin.Context) (optionoids.Options, bool) {
	return middleware.OptionsFromContext(c.Request.Context())
}
