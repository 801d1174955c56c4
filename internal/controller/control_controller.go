package controller

import (
	"plant-hub-be/internal/pkg/serverutils"
	"plant-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IControlController interface {
	RegisterRoutes(r fiber.Router)
	ActivatePump(ctx *fiber.Ctx) error
}

type controlController struct {
	pumpService service.IPumpService
}

func NewControlController(pumpService service.IPumpService) IControlController {
	return &controlController{
		pumpService: pumpService,
	}
}

func (c *controlController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pumps")
	h.Post("", c.ActivatePump)
}

func (c *controlController) ActivatePump(ctx *fiber.Ctx) error {
	msg, err := c.pumpService.Activate(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any](msg, nil))
}
