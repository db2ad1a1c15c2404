package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"tripplanner/internal/infra"
	"tripplanner/pkg/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := infra.PingPostgresql(ctx, h.db); err != nil {
		utils.RespondErrorWithData(c, http.StatusServiceUnavailable, "Database unavailable", gin.H{"database": "down"})
		return
	}

	utils.RespondSuccess(c, gin.H{"database": "up"}, "OK")
}
