package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"net/http"
)

type createRequest struct {
	Title   *string `json:"title" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

// Create godoc
// @Summary Create a note
// @Description Create an unpinned note out of a title and a content
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 400 {array} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes [post]
func Create(ctx *gin.Context) handler.Result {
	var req createRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.BadRequest(err)
	}

	created, err := note.Create(ctx, note.NewNote{Title: *req.Title, Content: *req.Content})
	if err != nil {
		return failure(ctx, "create note", err)
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
