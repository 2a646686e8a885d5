package services

import (
	"errors"
	"fmt"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

func GetComment(id uint) (models.Comment, error) {
	var comment models.Comment
	if err := database.C.
		Preload("Account").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return comment, fault.Newf(fault.KindNotFound, "comment #%d was not found", id)
		}
		return comment, fault.Internal("unable to get comment", err)
	}
	return comment, nil
}

func ListComment(postId uint, take int, offset int) ([]models.Comment, int64, error) {
	if take > 100 {
		take = 100
	}

	tx := database.C.Model(&models.Comment{}).
		Where("post_id = ? AND is_deleted = ?", postId, false)

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to count comments: %v", err)
	}

	var comments []models.Comment
	if err := tx.
		Preload("Account").
		Limit(take).Offset(offset).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to list comments: %v", err)
	}

	return comments, count, nil
}

func NewComment(user models.Account, post models.Post, content string) (models.Comment, error) {
	var comment models.Comment
	if post.IsCommentLocked {
		return comment, fault.Closed("comments are locked on this post")
	}
	if len(content) == 0 {
		return comment, fault.Invalid("comment content cannot be empty")
	}

	comment = models.Comment{
		Content:   content,
		PostID:    post.ID,
		AccountID: user.ID,
	}

	if err := database.C.Create(&comment).Error; err != nil {
		return comment, fault.Internal("unable to create comment", err)
	}

	comment.Account = user
	return comment, nil
}

func EditComment(user models.Account, comment models.Comment, content string) (models.Comment, error) {
	if comment.AccountID != user.ID {
		return comment, fault.Unauthorized("you cannot edit others' comments")
	}
	if len(content) == 0 {
		return comment, fault.Invalid("comment content cannot be empty")
	}

	comment.Content = content
	comment.IsEdited = true

	if err := database.C.Omit("Account").Save(&comment).Error; err != nil {
		return comment, fault.Internal("unable to update comment", err)
	}
	return comment, nil
}

// DeleteComment keeps the row and flips the deletion flags so threads stay
// intact; the author and staff can both do it.
func DeleteComment(user models.Account, comment models.Comment) error {
	if !user.IsStaff && comment.AccountID != user.ID {
		return fault.Unauthorized("you cannot delete others' comments")
	}

	return database.C.Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"is_deleted":   true,
			"user_deleted": comment.AccountID == user.ID,
		}).Error
}
