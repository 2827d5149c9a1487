package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-quest/backend/internal/service"
)

const imageFormField = "image"

// UploadHandler accepts meal photos.
type UploadHandler struct {
	imageService service.IImageService
}

func NewUploadHandler(imageService service.IImageService) *UploadHandler {
	return &UploadHandler{imageService: imageService}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/uploads/meal-image", h.UploadMealImage)
}

// UploadMealImage stores the multipart "image" field and returns its URL.
func (h *UploadHandler) UploadMealImage(c *gin.Context) {
	if !h.imageService.Enabled() {
		respondError(c, service.ErrStorageDisabled)
		return
	}

	// Leave room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxImageBytes+1<<20)
	file, _, err := c.Request.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image is too large"})
			return
		}
		badRequest(c, "multipart field \"image\" is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageBytes+1))
	if err != nil {
		badRequest(c, "failed to read image")
		return
	}

	img, err := h.imageService.UploadMealImage(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}
