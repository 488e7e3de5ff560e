package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List every note
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /notes [get]
func List(ctx *gin.Context) handler.Result {
	all, err := note.List(ctx)
	if err != nil {
		return failure(ctx, "list notes", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   all,
	}
}
