package upload

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles the public upload surface: multipart intake and raw file
// retrieval. No authentication — the deployment is an open guest wall.
type Handler struct {
	service *Service
	store   *Store
}

func NewHandler(service *Service, store *Store) *Handler {
	return &Handler{service: service, store: store}
}

// Upload godoc
// @Summary Upload media files
// @Description Accepts one or more image/video files with the uploader's name and an optional message.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Param uploaderName formData string true "Name of the uploader"
// @Param message formData string false "Optional message"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrNoFiles.Error()})
		return
	}

	files := form.File["files"]
	uploaderName := c.PostForm("uploaderName")
	message := c.PostForm("message")

	results, err := h.service.UploadBatch(c.Request.Context(), uploaderName, message, files)
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred during upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "files uploaded successfully",
		"files":   results,
	})
}

// ServeFile godoc
// @Summary Download a stored file
// @Tags Uploads
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /uploads/{filename} [get]
func (h *Handler) ServeFile(c *gin.Context) {
	path, err := h.store.Resolve(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrFileNotFound.Error()})
		return
	}
	c.File(path)
}

func isValidationErr(err error) bool {
	return errors.Is(err, ErrUploaderNameRequired) ||
		errors.Is(err, ErrNoFiles) ||
		errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrFileTooLarge)
}
