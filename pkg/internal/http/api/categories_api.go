package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func listCategories(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	categories, err := services.ListCategory(take, offset)
	if err != nil {
		return err
	}

	return c.JSON(categories)
}

func createCategory(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.NewCategory(user, data.Name)
	if err != nil {
		return err
	}

	return c.JSON(category)
}
