package controller

import (
	"strconv"
	"strings"

	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/pkg/serverutils"
	"plant-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	r.Get("/notes", c.ListAll)

	h := r.Group("/plants/:plantId/notes")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Patch(":noteId", c.Update)
	h.Delete(":noteId", c.Delete)
}

// Create accepts a JSON body, or a multipart form when the note ships
// with an inline image.
func (c *noteController) Create(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req.Content = ctx.FormValue("content")
		req.DueDate = ctx.FormValue("due_date")
		req.ImageDate = ctx.FormValue("image_date")
		if raw := ctx.FormValue("photo_history_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return apperror.Validation("photo_history_id must be an integer")
			}
			req.PhotoHistoryId = &id
		}
		if fh, err := ctx.FormFile("image"); err == nil && fh != nil {
			data, err := readUpload(fh)
			if err != nil {
				return err
			}
			req.ImageName = fh.Filename
			req.ImageData = data
		}
	} else {
		if err := ctx.BodyParser(&req); err != nil {
			return apperror.Validation("request body required")
		}
	}
	req.PlantId = plantId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}

	res, err := c.noteService.ListByPlant(ctx.Context(), plantId, listNotesQuery(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) ListAll(ctx *fiber.Ctx) error {
	q := listNotesQuery(ctx)
	if raw := ctx.Query("plant_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apperror.Validation("plant_id must be an integer")
		}
		q.PlantId = &id
	}

	res, err := c.noteService.ListAll(ctx.Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}
	noteId, err := parseIdParam(ctx, "noteId")
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("request body required")
	}
	req.PlantId = plantId
	req.NoteId = noteId

	res, err := c.noteService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	plantId, err := parseIdParam(ctx, "plantId")
	if err != nil {
		return err
	}
	noteId, err := parseIdParam(ctx, "noteId")
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), plantId, noteId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func listNotesQuery(ctx *fiber.Ctx) *dto.ListNotesQuery {
	return &dto.ListNotesQuery{
		CreatedFrom: ctx.Query("created_from"),
		CreatedTo:   ctx.Query("created_to"),
		DueFrom:     ctx.Query("due_from"),
		DueTo:       ctx.Query("due_to"),
	}
}
