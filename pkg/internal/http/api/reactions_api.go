package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func reactToTarget(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		TargetType string `json:"target_type" validate:"required,oneof=post comment"`
		TargetID   uint   `json:"target_id" validate:"required"`
		Symbol     string `json:"symbol" validate:"required,oneof=like haha love"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	positive, reaction, err := services.ReactTo(user, data.TargetType, data.TargetID, data.Symbol)
	if err != nil {
		return err
	}

	if positive {
		return c.Status(fiber.StatusCreated).JSON(reaction)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func getReactionSummary(c *fiber.Ctx) error {
	targetType := c.Query("target_type")
	targetId := c.QueryInt("target_id", 0)
	if len(targetType) == 0 || targetId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "target_type and target_id are required")
	}

	return c.JSON(services.GetReactionSummary(targetType, uint(targetId)))
}
