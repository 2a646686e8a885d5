package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func listNotifications(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	notifications, count, err := services.ListNotificationDeliveries(user, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  notifications,
	})
}

func createNotification(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Title       string `json:"title" validate:"required,max=255"`
		Content     string `json:"content" validate:"required"`
		RecipientID *uint  `json:"recipient_id"`
		GroupID     *uint  `json:"group_id"`
		EventID     *uint  `json:"event_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	notification, err := services.NewNotification(user, models.Notification{
		Title:       data.Title,
		Content:     data.Content,
		RecipientID: data.RecipientID,
		GroupID:     data.GroupID,
		EventID:     data.EventID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(notification)
}

func markNotificationRead(c *fiber.Ctx) error {
	notificationId, _ := c.ParamsInt("notificationId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	if err := services.MarkNotificationRead(user, uint(notificationId)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
