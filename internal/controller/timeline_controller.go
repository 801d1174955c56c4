package controller

import (
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/pkg/serverutils"
	"plant-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITimelineController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type timelineController struct {
	timelineService service.ITimelineService
}

func NewTimelineController(timelineService service.ITimelineService) ITimelineController {
	return &timelineController{
		timelineService: timelineService,
	}
}

func (c *timelineController) RegisterRoutes(r fiber.Router) {
	r.Get("/plants/:plantId/timeline", c.Show)
}

func (c *timelineController) Show(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}

	res, err := c.timelineService.GetTimeline(ctx.Context(), &dto.TimelineQuery{
		PlantId:     plantId,
		CreatedFrom: ctx.Query("created_from"),
		CreatedTo:   ctx.Query("created_to"),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show timeline", res))
}
