package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func listEvents(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	events, count, err := services.ListEvent(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  events,
	})
}

func getEvent(c *fiber.Ctx) error {
	eventId, _ := c.ParamsInt("eventId")

	event, err := services.GetEvent(uint(eventId))
	if err != nil {
		return err
	}

	return c.JSON(event)
}

func createEvent(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Title       string    `json:"title" validate:"required,max=255"`
		Description string    `json:"description"`
		StartAt     time.Time `json:"start_at" validate:"required"`
		EndAt       time.Time `json:"end_at" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	event, err := services.NewEvent(user, models.Event{
		Title:       data.Title,
		Description: data.Description,
		StartAt:     data.StartAt,
		EndAt:       data.EndAt,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func attendEvent(c *fiber.Ctx) error {
	eventId, _ := c.ParamsInt("eventId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	event, err := services.GetEvent(uint(eventId))
	if err != nil {
		return err
	}

	attendee, err := services.AttendEvent(user, event)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(attendee)
}

func leaveEvent(c *fiber.Ctx) error {
	eventId, _ := c.ParamsInt("eventId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	event, err := services.GetEvent(uint(eventId))
	if err != nil {
		return err
	}

	if err := services.LeaveEvent(user, event); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
