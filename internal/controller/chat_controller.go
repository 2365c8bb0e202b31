package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/pkg/serverutils"
	"github.com/kilhoshin/aissam/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	h := r.Group("/chat-sessions", authRequired)
	h.Post("/", c.CreateSession)
	h.Get("/", c.GetSessions)
	h.Get("/:id", c.GetSession)
	h.Post("/:id/messages", c.SendMessage)
	h.Get("/:id/messages", c.GetMessages)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// SendMessage accepts a multipart form with an optional message_text field and
// an optional image file. At least one of the two should carry the question.
func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	text := ctx.FormValue("message_text")

	var image *service.ImageUpload
	if fileHeader, err := ctx.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return serverutils.BadRequest("unreadable image upload")
		}
		defer file.Close()
		image = &service.ImageUpload{Reader: file, Filename: fileHeader.Filename}
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, sessionId, text, image)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetMessages(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
