package controller

import (
	"io"
	"mime/multipart"

	"plant-hub-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

func parseIdParam(ctx *fiber.Ctx, name string) (int64, error) {
	v, err := ctx.ParamsInt(name)
	if err != nil || v <= 0 {
		return 0, apperror.Validation(name + " must be a positive integer")
	}
	return int64(v), nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, apperror.Internal("failed to read upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.Internal("failed to read upload", err)
	}
	return data, nil
}
