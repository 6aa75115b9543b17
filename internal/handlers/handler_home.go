package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "BizBooks Backend API v1"})
}

// registerHomeRoutes registers the API root route
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
