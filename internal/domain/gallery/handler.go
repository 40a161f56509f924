package gallery

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary Public gallery of approved images
// @Tags Gallery
// @Produce json
// @Success 200 {array} gallery.Entry
// @Failure 500 {object} map[string]interface{}
// @Router /gallery [get]
func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("gallery error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
