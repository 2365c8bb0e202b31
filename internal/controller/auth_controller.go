package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/pkg/serverutils"
	"github.com/kilhoshin/aissam/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/register", c.Register)
	r.Post("/token", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// Login accepts the OAuth2 password-grant form shape: urlencoded username and
// password fields.
func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
