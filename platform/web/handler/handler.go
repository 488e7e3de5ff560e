package handler

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// Result is what a handler wants written back to the client
type Result struct {
	Status int
	Body   any
}

// Error is the body of every non 2xx response
type Error struct {
	Message string `json:"message" example:"Note not found"`
	Field   string `json:"field,omitempty" example:"title"`
}

// Func is a gin handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func into a gin.HandlerFunc, writing the result as json
func Wrapper(h Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// BadRequest builds a 400 result out of a binding error, one Error per invalid field
func BadRequest(err error) Result {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Result{
			Status: http.StatusBadRequest,
			Body:   []Error{{Message: "invalid request body"}},
		}
	}

	errs := make([]Error, 0, len(ve))
	for _, fe := range ve {
		field := jsonName(fe)
		errs = append(errs, Error{
			Message: fmt.Sprintf("%s is %s", field, fe.Tag()),
			Field:   field,
		})
	}
	return Result{
		Status: http.StatusBadRequest,
		Body:   errs,
	}
}

// jsonName lower cases the first letter of the struct field, matching the json tags used by the api
func jsonName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}
