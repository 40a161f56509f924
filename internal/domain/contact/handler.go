package contact

import (
	"errors"
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

// Submit godoc
// @Summary Submit a contact message
// @Tags Contact
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Sender name"
// @Param email formData string true "Sender email"
// @Param message formData string true "Message body"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /contact [post]
func (h *Handler) Submit(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if err := h.service.Submit(c.Request.Context(), name, email, message); err != nil {
		if errors.Is(err, ErrFieldsRequired) || errors.Is(err, ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("contact form error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred while sending the message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "your message has been sent"})
}
