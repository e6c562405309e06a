package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hodamousavipour/banking-dashboard-front/internal/middleware"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	user, _ := middleware.GetUserIDFromContext(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": "Finance tracker API v1", "user": user})
}

// registerHomeRoutes registers the root status route.
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
