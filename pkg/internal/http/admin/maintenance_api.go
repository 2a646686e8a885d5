package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func adminTriggerCleanup(c *fiber.Ctx) error {
	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	go services.DoAutoDatabaseCleanup()

	return c.SendStatus(fiber.StatusOK)
}

func adminToggleSuspension(c *fiber.Ctx) error {
	accountId, _ := c.ParamsInt("accountId")

	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	account, err := services.GetAccount(uint(accountId))
	if err != nil {
		return err
	}

	if err := database.C.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Update("suspended", !account.Suspended).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"suspended": !account.Suspended,
	})
}
