package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func listGroups(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	groups, count, err := services.ListGroup(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  groups,
	})
}

func getGroup(c *fiber.Ctx) error {
	groupId, _ := c.ParamsInt("groupId")

	group, err := services.GetGroup(uint(groupId))
	if err != nil {
		return err
	}

	return c.JSON(group)
}

func createGroup(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Name    string `json:"name" validate:"required,max=100"`
		Members []uint `json:"members"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(user, data.Name, data.Members)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func addGroupMember(c *fiber.Ctx) error {
	groupId, _ := c.ParamsInt("groupId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		AccountID uint `json:"account_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.GetGroup(uint(groupId))
	if err != nil {
		return err
	}

	member, err := services.AddGroupMember(user, group, data.AccountID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

func removeGroupMember(c *fiber.Ctx) error {
	groupId, _ := c.ParamsInt("groupId")
	accountId, _ := c.ParamsInt("accountId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	group, err := services.GetGroup(uint(groupId))
	if err != nil {
		return err
	}

	if err := services.RemoveGroupMember(user, group, uint(accountId)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
