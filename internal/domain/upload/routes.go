package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public upload routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/upload", h.Upload)
	r.GET("/uploads/:filename", h.ServeFile)
}
