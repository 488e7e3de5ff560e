package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note for good, responding with it as it was
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {array} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	deleted, err := note.Delete(ctx, id)
	if err != nil {
		return failure(ctx, "delete note", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   deleted,
	}
}
