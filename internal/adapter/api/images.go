package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

const imageField = "imagen"

type Images struct{ c *Client }

func (a *Images) UploadMain(ctx context.Context, productID int64, file usecase.Upload) (entity.ProductImages, error) {
	return a.upload(ctx, "admin.images.main_upload", fmt.Sprintf("/admin/productos/%d/imagen-principal", productID), file)
}

func (a *Images) DeleteMain(ctx context.Context, productID int64) error {
	return a.c.do(ctx, call{op: "admin.images.main_delete", method: http.MethodDelete, path: fmt.Sprintf("/admin/productos/%d/imagen-principal", productID)}, nil)
}

func (a *Images) UploadGallery(ctx context.Context, productID int64, file usecase.Upload) (entity.ProductImages, error) {
	return a.upload(ctx, "admin.images.gallery_upload", fmt.Sprintf("/admin/productos/%d/imagenes-galeria", productID), file)
}

func (a *Images) DeleteGallery(ctx context.Context, productID int64, filename string) (entity.ProductImages, error) {
	return send[entity.ProductImages](ctx, a.c, call{
		op:     "admin.images.gallery_delete",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/admin/productos/%d/imagenes-galeria", productID),
		query:  url.Values{"filename": []string{filename}},
	})
}

// upload streams the file as a multipart form without buffering it.
func (a *Images) upload(ctx context.Context, op, path string, file usecase.Upload) (entity.ProductImages, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile(imageField, file.Filename)
		if err == nil {
			_, err = io.Copy(part, file.Body)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()
	out, err := send[entity.ProductImages](ctx, a.c, call{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		raw:         pr,
		contentType: mw.FormDataContentType(),
	})
	// unblocks the writer if the request never drained the pipe
	pr.Close()
	return out, err
}

var _ usecase.ImageAPI = (*Images)(nil)
