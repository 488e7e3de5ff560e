package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {array} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	found, err := note.Find(ctx, id)
	if err != nil {
		return failure(ctx, "find note", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
