package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"net/http"
)

// Update godoc
// @Summary Update a note
// @Description Change some fields of a note, absent and null fields are left as they are
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param note body note.UpdateNote true "Fields to change"
// @Success 200 {object} note.Note
// @Failure 400 {array} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	var req note.UpdateNote
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.BadRequest(err)
	}

	updated, err := note.Update(ctx, id, req)
	if err != nil {
		return failure(ctx, "update note", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
