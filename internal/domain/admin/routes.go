package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the moderation routes. There is no auth layer
// anywhere in this deployment; the admin surface is expected to sit behind
// a private network. Known gap, replicated deliberately.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	adm := r.Group("/admin")
	{
		adm.GET("/uploads", h.ListUploads)
		adm.GET("/contacts", h.ListContacts)
		adm.POST("/uploads/:id/approve", h.ApproveUpload)
	}
}
