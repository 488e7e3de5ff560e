package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"github.com/ribgsilva/notes-service/sys"
	"net/http"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the service can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} healthcheck.Status
// @Router /healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	pingCtx, cancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer cancel()

	if err := sys.R.Database.PingContext(pingCtx); err != nil {
		sys.R.Log.Errorw("healthcheck", "ERROR", err)
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   Status{Status: "database unavailable"},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
