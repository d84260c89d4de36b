package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(rg *gin.RouterGroup, state portssvc.StateSyncSvc) {
	admin := rg.Group("/admin")
	admin.GET("/state", stateStatus(state))
	admin.POST("/sync", syncState(state))
}

// stateStatus godoc
// @Summary List stores pending a re-save
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StateStatusResponse
// @Security BearerAuth
// @Router /admin/state [get]
func stateStatus(state portssvc.StateSyncSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		dirty := state.Dirty()
		if dirty == nil {
			dirty = []string{}
		}
		c.JSON(http.StatusOK, dto.StateStatusResponse{Dirty: dirty})
	}
}

// syncState godoc
// @Summary Re-save in-memory state to the state store
// @Description Without force only stores whose last save failed are written
// @Tags admin
// @Produce json
// @Param force query bool false "Re-save every store"
// @Success 200 {object} dto.SyncResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/sync [post]
func syncState(state portssvc.StateSyncSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		force, _ := strconv.ParseBool(c.Query("force"))

		synced, err := state.Sync(c.Request.Context(), force)
		if err != nil {
			respondWithError(c, err, "Failed to sync state")
			return
		}

		middleware.GetLoggerFromCtx(c.Request.Context()).Info("State synced",
			slog.Bool("force", force), slog.Any("stores", synced))
		if synced == nil {
			synced = []string{}
		}
		c.JSON(http.StatusOK, dto.SyncResponse{Synced: synced})
	}
}
