package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kilhoshin/aissam/internal/pkg/serverutils"
)

// currentUserId reads the authenticated user id placed by the JWT middleware.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, serverutils.Unauthorized("missing authentication")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serverutils.Unauthorized("invalid authentication")
	}
	return userId, nil
}

// sessionIdParam parses the :id path parameter.
func sessionIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("invalid session id")
	}
	return sessionId, nil
}
