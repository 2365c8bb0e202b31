package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kilhoshin/aissam/internal/service"
)

type ISubjectController interface {
	RegisterRoutes(r fiber.Router)
	GetSubjects(ctx *fiber.Ctx) error
}

type subjectController struct {
	service service.ISubjectService
}

func NewSubjectController(service service.ISubjectService) ISubjectController {
	return &subjectController{service: service}
}

func (c *subjectController) RegisterRoutes(r fiber.Router) {
	r.Get("/subjects", c.GetSubjects)
}

func (c *subjectController) GetSubjects(ctx *fiber.Ctx) error {
	res, err := c.service.GetSubjects(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
