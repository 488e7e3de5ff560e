package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.POST("/notes", handler.Wrapper(notes.Create))
	r.GET("/notes", handler.Wrapper(notes.List))
	r.GET("/notes/:id", handler.Wrapper(notes.Get))
	r.PUT("/notes/:id", handler.Wrapper(notes.Update))
	r.DELETE("/notes/:id", handler.Wrapper(notes.Delete))
}
