package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWrapperWritesJSON(t *testing.T) {
	r := gin.New()
	r.GET("/ok", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusTeapot, Body: Error{Message: "short and stout"}}
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"message":"short and stout"}`, w.Body.String())
}

func TestWrapperWithoutBody(t *testing.T) {
	r := gin.New()
	r.GET("/empty", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusNoContent}
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/empty", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

type sample struct {
	Title   *string `binding:"required"`
	Content *string `binding:"required"`
}

func TestBadRequestValidationErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(sample{})
	require.Error(t, err)

	res := BadRequest(err)
	assert.Equal(t, http.StatusBadRequest, res.Status)

	errs, ok := res.Body.([]Error)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t, Error{Message: "title is required", Field: "title"}, errs[0])
	assert.Equal(t, Error{Message: "content is required", Field: "content"}, errs[1])
}

func TestBadRequestOtherErrors(t *testing.T) {
	err := json.Unmarshal([]byte("{"), &struct{}{})
	require.Error(t, err)

	res := BadRequest(err)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, []Error{{Message: "invalid request body"}}, res.Body)
}
