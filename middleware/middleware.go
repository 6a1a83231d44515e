// Package middleware holds the framework-neutral pieces shared by the gin and
// echo adapters: request-context storage of checked options and the error
// payload shape.
package middleware

import (
	"context"
	"net/http"

	"github.com/Fish-Fur/optionoids"
	"github.com/Fish-Fur/optionoids/source"
)

// ctxKeyOptions is a typed context key for storing checked options.
type ctxKeyOptions struct{}

// ContextWithOptions attaches checked options to the context.
func ContextWithOptions(ctx context.Context, o optionoids.Options) context.Context {
	return context.WithValue(ctx, ctxKeyOptions{}, o)
}

// OptionsFromContext retrieves checked options from context.
func OptionsFromContext(ctx context.Context) (optionoids.Options, bool) {
	o, ok := ctx.Value(ctxKeyOptions{}).(optionoids.Options)
	return o, ok
}

// CheckFunc declares the expectations for a request's parameters.
type CheckFunc func(c *optionoids.Checker)

// Check runs fn over o with a soft Checker and returns the collected failures.
func Check(o optionoids.Options, fn CheckFunc) optionoids.Errors {
	c := optionoids.Checking(o)
	if fn != nil {
		fn(c)
	}
	return c.Errors()
}

// QueryOptions returns the request's URL query parameters as options.
func QueryOptions(r *http.Request) optionoids.Options {
	return source.Values(r.URL.Query())
}

// FormOptions parses the request form (body and query) and returns it as options.
func FormOptions(r *http.Request) (optionoids.Options, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return source.Values(r.Form), nil
}

// ErrorPayload shapes failures for JSON responses.
func ErrorPayload(errs optionoids.Errors) map[string]any {
	return map[string]any{"errors": errs}
}
