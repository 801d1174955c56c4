package controller

import (
	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/pkg/serverutils"
	"plant-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPhotoHistoryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	FetchImage(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type photoHistoryController struct {
	photoService service.IPhotoHistoryService
}

func NewPhotoHistoryController(photoService service.IPhotoHistoryService) IPhotoHistoryController {
	return &photoHistoryController{
		photoService: photoService,
	}
}

func (c *photoHistoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plants/:plantId/photo-histories")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":photoId", c.FetchImage)
	h.Delete(":photoId", c.Delete)
}

func (c *photoHistoryController) Create(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}

	fh, err := ctx.FormFile("image")
	if err != nil {
		return apperror.Validation("no image file provided")
	}
	data, err := readUpload(fh)
	if err != nil {
		return err
	}

	req := dto.CreatePhotoHistoryRequest{
		PlantId:    plantId,
		FileName:   fh.Filename,
		Data:       data,
		ClientDate: ctx.FormValue("date"),
	}

	res, err := c.photoService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create photo history", res))
}

func (c *photoHistoryController) List(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}

	res, err := c.photoService.ListByPlant(ctx.Context(), plantId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list photo histories", res))
}

// FetchImage streams the stored file back with its inferred MIME type.
func (c *photoHistoryController) FetchImage(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}
	photoId, err := parseIdParam(ctx, "photoId")
	if err != nil {
		return err
	}

	res, err := c.photoService.FetchImage(ctx.Context(), plantId, photoId)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.MimeType)
	return ctx.Send(res.Data)
}

func (c *photoHistoryController) Delete(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}
	photoId, err := parseIdParam(ctx, "photoId")
	if err != nil {
		return err
	}

	if err := c.photoService.Delete(ctx.Context(), plantId, photoId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete photo history", nil))
}
