package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
	"gorm.io/gorm"
)

func universalPostFilter(c *fiber.Ctx, tx *gorm.DB) *gorm.DB {
	if user, authenticated := exts.AuthenticatedUser(c); authenticated {
		tx = services.FilterPostWithUserContext(tx, &user)
	} else {
		tx = services.FilterPostWithUserContext(tx, nil)
	}

	if len(c.Query("category")) > 0 {
		tx = services.FilterPostWithCategory(tx, c.Query("category"))
	}
	if len(c.Query("probe")) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, c.Query("probe"))
	}
	if len(c.Query("author")) > 0 {
		tx = tx.Where("posts.account_id IN (?)", database.C.Model(&models.Account{}).
			Select("id").Where("name = ?", c.Query("author")))
	}

	return tx
}

func getPost(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId")

	tx := universalPostFilter(c, database.C)

	item, err := services.GetPost(tx, uint(postId))
	if err != nil {
		return err
	}

	item.Metric = services.GetPostMetric(item)

	if user, authenticated := exts.AuthenticatedUser(c); authenticated {
		services.AddPostView(item, user.ID)
	}

	return c.JSON(item)
}

func listPosts(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	tx := universalPostFilter(c, database.C)

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if c.QueryBool("truncate", true) {
		items = lo.Map(items, func(item models.Post, _ int) models.Post {
			return services.TruncatePostContent(item)
		})
	}
	for idx, item := range items {
		items[idx].Metric = services.GetPostMetric(item)
	}

	if user, authenticated := exts.AuthenticatedUser(c); authenticated {
		services.AddPostViews(items, user.ID)
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Content         string                     `json:"content" validate:"required"`
		CategoryID      uint                       `json:"category_id" validate:"required"`
		Attachments     []string                   `json:"attachments"`
		Visibility      models.PostVisibilityLevel `json:"visibility"`
		IsCommentLocked bool                       `json:"is_comment_locked"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(user, models.Post{
		Content:         data.Content,
		CategoryID:      data.CategoryID,
		Attachments:     data.Attachments,
		Visibility:      data.Visibility,
		IsCommentLocked: data.IsCommentLocked,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editPost(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Content         string                     `json:"content" validate:"required"`
		Attachments     []string                   `json:"attachments"`
		Visibility      models.PostVisibilityLevel `json:"visibility"`
		IsCommentLocked bool                       `json:"is_comment_locked"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetPost(database.C, uint(postId))
	if err != nil {
		return err
	}

	item.Content = data.Content
	item.Attachments = data.Attachments
	item.Visibility = data.Visibility
	item.IsCommentLocked = data.IsCommentLocked

	if item, err = services.EditPost(user, item); err != nil {
		return err
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	item, err := services.GetPost(database.C, uint(postId))
	if err != nil {
		return err
	}

	if err := services.DeletePost(user, item); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
