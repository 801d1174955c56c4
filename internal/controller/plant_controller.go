package controller

import (
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/pkg/serverutils"
	"plant-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlantController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type plantController struct {
	plantService service.IPlantService
}

func NewPlantController(plantService service.IPlantService) IPlantController {
	return &plantController{
		plantService: plantService,
	}
}

func (c *plantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plants")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":plantId", c.Show)
	h.Delete(":plantId", c.Delete)
}

func (c *plantController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePlantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.plantService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create plant", res))
}

func (c *plantController) List(ctx *fiber.Ctx) error {
	res, err := c.plantService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list plants", res))
}

func (c *plantController) Show(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}

	res, err := c.plantService.Show(ctx.Context(), plantId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show plant", res))
}

func (c *plantController) Delete(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}

	if err := c.plantService.Delete(ctx.Context(), plantId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete plant", nil))
}
