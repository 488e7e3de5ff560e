package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"github.com/ribgsilva/notes-service/sys"
	"net/http"
	"strconv"
)

// parseID accepts positive ids that fit a signed 64 bit column
func parseID(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

var invalidID = handler.Result{
	Status: http.StatusBadRequest,
	Body:   []handler.Error{{Message: "invalid id", Field: "id"}},
}

// failure maps a business error into its response, only unexpected ones are logged
func failure(ctx *gin.Context, op string, err error) handler.Result {
	if errors.Is(err, note.ErrNotFound) {
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: note.NotFoundMessage},
		}
	}
	sys.R.Log.Errorw(op, "path", ctx.Request.URL.Path, "ERROR", err)
	return handler.Result{
		Status: http.StatusInternalServerError,
		Body:   handler.Error{Message: err.Error()},
	}
}
