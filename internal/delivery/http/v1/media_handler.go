package v1

import (
	"io"
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/pkg/apperror"
	"glint-backend/pkg/imaging"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps raw upload size before compression.
const maxUploadBytes = 10 << 20

type MediaHandler struct{}

func NewMediaHandler(r *gin.RouterGroup) {
	handler := &MediaHandler{}

	r.POST("/media/upload", handler.Upload)
}

// Upload godoc
// @Summary      Upload an image
// @Description  Downscales to 800px max edge, re-encodes as JPEG and returns an inline data URL
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /media/upload [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file form field is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(apperror.BadRequest("File exceeds the 10MB upload limit"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	compressed, err := imaging.Compress(raw, imaging.MaxDimension, imaging.JPEGQuality)
	if err != nil {
		c.Error(apperror.BadRequest("Unsupported or corrupt image file"))
		return
	}

	response.Success(c, http.StatusOK, "File uploaded", gin.H{
		"url": imaging.DataURL(compressed),
	})
}
