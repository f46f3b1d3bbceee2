package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/giovannicg/INMEDT/internal/entity"
)

const MaxImageSize = 10 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds 10 MB")
	ErrNotAnImage    = errors.New("file is not an image")
)

// sniffLen is how much of the body mimetype needs.
const sniffLen = 3072

// ImageManager checks uploads before they leave the process.
type ImageManager struct {
	api ImageAPI
}

func NewImageManager(api ImageAPI) *ImageManager {
	return &ImageManager{api: api}
}

// CheckImage rejects oversize or non-image files and returns an upload whose
// body still starts at byte zero.
func CheckImage(u Upload) (Upload, string, error) {
	if u.Size > MaxImageSize {
		return u, "", ErrImageTooLarge
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(u.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return u, "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return u, mt.String(), ErrNotAnImage
	}
	u.Body = io.MultiReader(bytes.NewReader(head), u.Body)
	return u, mt.String(), nil
}

func imageRejection(err error) Result {
	switch {
	case errors.Is(err, ErrImageTooLarge):
		return rejected("The image must be 10 MB or smaller")
	case errors.Is(err, ErrNotAnImage):
		return rejected("Only image files are allowed")
	}
	return rejected("Could not read the file")
}

func (m *ImageManager) UploadMain(ctx context.Context, productID int64, u Upload) (entity.ProductImages, Result) {
	u, _, err := CheckImage(u)
	if err != nil {
		return entity.ProductImages{}, imageRejection(err)
	}
	imgs, err := m.api.UploadMain(ctx, productID, u)
	if err != nil {
		return entity.ProductImages{}, failed(err, "Could not upload the image")
	}
	return imgs, ok("Main image updated")
}

func (m *ImageManager) DeleteMain(ctx context.Context, productID int64) Result {
	if err := m.api.DeleteMain(ctx, productID); err != nil {
		return failed(err, "Could not delete the image")
	}
	return ok("Image deleted")
}

func (m *ImageManager) UploadGallery(ctx context.Context, productID int64, u Upload) (entity.ProductImages, Result) {
	u, _, err := CheckImage(u)
	if err != nil {
		return entity.ProductImages{}, imageRejection(err)
	}
	imgs, err := m.api.UploadGallery(ctx, productID, u)
	if err != nil {
		return entity.ProductImages{}, failed(err, "Could not upload the image")
	}
	return imgs, ok("Image added to gallery")
}

func (m *ImageManager) DeleteGallery(ctx context.Context, productID int64, filename string) (entity.ProductImages, Result) {
	if strings.TrimSpace(filename) == "" {
		return entity.ProductImages{}, rejected("filename is required")
	}
	imgs, err := m.api.DeleteGallery(ctx, productID, filename)
	if err != nil {
		return entity.ProductImages{}, failed(err, "Could not delete the image")
	}
	return imgs, ok("Image deleted")
}
