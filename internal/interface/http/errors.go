package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/pkg/response"
	"github.com/oksasatya/unibase/pkg/validation"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail maps a service error to its status. Anything unclassified is logged and
// reported as a bare 500 so storage details never reach the client.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusOf(err)
	entry := logger.WithError(err).WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"route":      c.FullPath(),
	})
	switch status {
	case http.StatusInternalServerError:
		entry.Error("request failed")
		response.Abort(c, status, "internal server error", nil)
		return
	case http.StatusServiceUnavailable:
		entry.Warn("dependency unavailable")
	case http.StatusUnauthorized:
		c.Header("WWW-Authenticate", `Bearer realm="unibase"`)
	}
	response.Abort(c, status, apperror.Message(err, http.StatusText(status)), nil)
}

func badPayload(c *gin.Context, err error) {
	response.Abort(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
