package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func listComments(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId")
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if _, err := services.GetPost(universalPostFilter(c, database.C), uint(postId)); err != nil {
		return err
	}

	comments, count, err := services.ListComment(uint(postId), take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  comments,
	})
}

func createComment(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Content string `json:"content" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	post, err := services.GetPost(universalPostFilter(c, database.C), uint(postId))
	if err != nil {
		return err
	}

	comment, err := services.NewComment(user, post, data.Content)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func editComment(c *fiber.Ctx) error {
	commentId, _ := c.ParamsInt("commentId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Content string `json:"content" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.GetComment(uint(commentId))
	if err != nil {
		return err
	}

	if comment, err = services.EditComment(user, comment, data.Content); err != nil {
		return err
	}

	return c.JSON(comment)
}

func deleteComment(c *fiber.Ctx) error {
	commentId, _ := c.ParamsInt("commentId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	comment, err := services.GetComment(uint(commentId))
	if err != nil {
		return err
	}

	if err := services.DeleteComment(user, comment); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
