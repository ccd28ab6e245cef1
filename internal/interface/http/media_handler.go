package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/application"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/internal/metrics"
	"github.com/oksasatya/unibase/pkg/response"
)

// multipartSlack covers boundaries and part headers on top of the file itself.
const multipartSlack = 64 << 10

type MediaHandler struct {
	Svc    *application.MediaService
	Logger *logrus.Logger
}

func NewMediaHandler(svc *application.MediaService, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{Svc: svc, Logger: logger}
}

// Upload expects a multipart form with the image in field "file".
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.Svc.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Svc.MaxBytes+multipartSlack)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		metrics.MediaUploads.WithLabelValues("rejected").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Abort(c, http.StatusRequestEntityTooLarge, "file too large", nil)
			return
		}
		response.Abort(c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.Upload(c.Request.Context(), middleware.CurrentUser(c), fh.Size, f)
	if err != nil {
		metrics.MediaUploads.WithLabelValues("failed").Inc()
		fail(c, h.Logger, err)
		return
	}
	metrics.MediaUploads.WithLabelValues("stored").Inc()
	response.OK(c, http.StatusCreated, gin.H{"url": url}, "media uploaded", nil)
}
