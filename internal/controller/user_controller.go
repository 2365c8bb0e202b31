package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kilhoshin/aissam/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	GetProfile(ctx *fiber.Ctx) error
	GetAnalysis(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/me", authRequired, c.GetProfile)
	r.Get("/users/me/analysis", authRequired, c.GetAnalysis)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *userController) GetAnalysis(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAnalysis(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
