package application

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
)

// ObjectUploader is satisfied by helpers.GCSUploader.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// sniffLen matches the amount mimetype inspects by default.
const sniffLen = 3072

var allowedImages = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var errMediaDisabled = apperror.Unavailable("media storage is not configured")

type MediaService struct {
	Uploader ObjectUploader
	MaxBytes int64
	Logger   *logrus.Logger
}

func NewMediaService(uploader ObjectUploader, maxBytes int64, logger *logrus.Logger) *MediaService {
	return &MediaService{Uploader: uploader, MaxBytes: maxBytes, Logger: logger}
}

// Upload stores an image and returns the URL to put into photo fields. The
// content type comes from the bytes, never from the client.
func (s *MediaService) Upload(ctx context.Context, actor *entity.User, size int64, r io.Reader) (string, error) {
	if err := requireStaff(actor); err != nil {
		return "", err
	}
	if s.Uploader == nil {
		return "", errMediaDisabled
	}
	if size <= 0 {
		return "", apperror.Invalid("file is empty")
	}
	if s.MaxBytes > 0 && size > s.MaxBytes {
		return "", apperror.Invalid(fmt.Sprintf("file exceeds %d bytes", s.MaxBytes))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", apperror.Wrap(apperror.ErrInvalid, "could not read file", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	ext, ok := allowedImages[mt.String()]
	if !ok {
		return "", apperror.Invalid("unsupported media type " + mt.String())
	}

	object := fmt.Sprintf("media/%s/%s%s", actor.ID, uuid.NewString(), ext)
	url, err := s.Uploader.Upload(ctx, object, mt.String(), io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		s.Logger.WithError(err).WithField("object", object).Error("media upload failed")
		return "", apperror.Wrap(apperror.ErrUnavailable, "media storage unavailable", err)
	}
	s.Logger.WithFields(logrus.Fields{"object": object, "user_id": actor.ID, "size": size}).Info("media uploaded")
	return url, nil
}
