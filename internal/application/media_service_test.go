package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
)

type fakeUploader struct {
	path        string
	contentType string
	body        []byte
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.path, f.contentType, f.body = objectPath, contentType, b
	return "https://storage.example/" + objectPath, nil
}

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestMediaUpload(t *testing.T) {
	up := &fakeUploader{}
	svc := NewMediaService(up, 1<<20, quietLogger())
	staff := &entity.User{ID: "u1", IsStaff: true}

	url, err := svc.Upload(context.Background(), staff, int64(len(pngPixel)), bytes.NewReader(pngPixel))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if up.contentType != "image/png" {
		t.Fatalf("expected image/png, got %s", up.contentType)
	}
	if !strings.HasPrefix(up.path, "media/u1/") || !strings.HasSuffix(up.path, ".png") {
		t.Fatalf("unexpected object path %s", up.path)
	}
	if !bytes.Equal(up.body, pngPixel) {
		t.Fatalf("uploaded bytes differ from input")
	}
	if url != "https://storage.example/"+up.path {
		t.Fatalf("unexpected url %s", url)
	}
}

func TestMediaUploadRejections(t *testing.T) {
	ctx := context.Background()
	staff := &entity.User{ID: "u1", IsStaff: true}
	body := []byte("plain text, not an image")

	svc := NewMediaService(&fakeUploader{}, 16, quietLogger())
	_, err := svc.Upload(ctx, staff, int64(len(body)), bytes.NewReader(body))
	wantKind(t, err, apperror.ErrInvalid)

	svc.MaxBytes = 1 << 20
	_, err = svc.Upload(ctx, staff, int64(len(body)), bytes.NewReader(body))
	wantKind(t, err, apperror.ErrInvalid)

	_, err = svc.Upload(ctx, &entity.User{ID: "u2"}, int64(len(pngPixel)), bytes.NewReader(pngPixel))
	wantKind(t, err, apperror.ErrForbidden)

	disabled := NewMediaService(nil, 1<<20, quietLogger())
	_, err = disabled.Upload(ctx, staff, int64(len(pngPixel)), bytes.NewReader(pngPixel))
	wantKind(t, err, apperror.ErrUnavailable)

	broken := NewMediaService(&fakeUploader{err: errors.New("bucket gone")}, 1<<20, quietLogger())
	_, err = broken.Upload(ctx, staff, int64(len(pngPixel)), bytes.NewReader(pngPixel))
	wantKind(t, err, apperror.ErrUnavailable)
}
