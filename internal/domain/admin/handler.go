package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weddingwall/internal/domain/upload"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListUploads godoc
// @Summary List all uploads
// @Tags Admin
// @Produce json
// @Success 200 {array} upload.Upload
// @Failure 500 {object} map[string]interface{}
// @Router /admin/uploads [get]
func (h *Handler) ListUploads(c *gin.Context) {
	uploads, err := h.service.ListUploads(c.Request.Context())
	if err != nil {
		log.Printf("admin uploads error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load uploads"})
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// ListContacts godoc
// @Summary List all contact messages
// @Tags Admin
// @Produce json
// @Success 200 {array} contact.Contact
// @Failure 500 {object} map[string]interface{}
// @Router /admin/contacts [get]
func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.service.ListContacts(c.Request.Context())
	if err != nil {
		log.Printf("admin contacts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// ApproveUpload godoc
// @Summary Approve an upload for the public gallery
// @Tags Admin
// @Produce json
// @Param id path int true "Upload ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404,500 {object} map[string]interface{}
// @Router /admin/uploads/{id}/approve [post]
func (h *Handler) ApproveUpload(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": upload.ErrUploadNotFound.Error()})
		return
	}

	if err := h.service.ApproveUpload(c.Request.Context(), id); err != nil {
		if errors.Is(err, upload.ErrUploadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("approve upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred during approval"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "upload approved"})
}
