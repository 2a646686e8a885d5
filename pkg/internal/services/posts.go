package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectPostLanguage guesses the language of a post body. The detector is
// built lazily since loading its models takes a noticeable moment.
func DetectPostLanguage(content string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Vietnamese, lingua.Chinese, lingua.Japanese).
			Build()
	})

	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return language.IsoCode639_1().String()
	}
	return "unknown"
}

// FilterPostWithUserContext hides private posts from everyone but their
// author.
func FilterPostWithUserContext(tx *gorm.DB, user *models.Account) *gorm.DB {
	if user == nil {
		return tx.Where("visibility = ?", models.PostVisibilityPublic)
	}
	return tx.Where("visibility = ? OR account_id = ?", models.PostVisibilityPublic, user.ID)
}

func FilterPostWithCategory(tx *gorm.DB, name string) *gorm.DB {
	return tx.Joins("JOIN post_categories ON post_categories.id = posts.category_id").
		Where("post_categories.name = ?", name)
}

func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	return tx.Where("content LIKE ?", "%"+probe+"%")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := tx.
		Preload("Account").
		Preload("Category").
		Where("posts.id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fault.Newf(fault.KindNotFound, "post #%d was not found", id)
		}
		return item, fault.Internal("unable to get post", err)
	}
	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, fmt.Errorf("unable to count posts: %v", err)
	}
	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := tx.
		Preload("Account").
		Preload("Category").
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("unable to list posts: %v", err)
	}

	return items, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	if len(item.Content) == 0 {
		return item, fault.Invalid("post content cannot be empty")
	}

	var category models.PostCategory
	if err := database.C.Where("id = ?", item.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fault.Newf(fault.KindNotFound, "category #%d was not found", item.CategoryID)
		}
		return item, fault.Internal("unable to get category", err)
	}

	item.AccountID = user.ID
	item.Language = DetectPostLanguage(item.Content)

	if err := database.C.Create(&item).Error; err != nil {
		return item, fault.Internal("unable to create post", err)
	}

	log.Debug().Uint("post", item.ID).Str("language", item.Language).Msg("A post has been created.")

	item.Account = user
	item.Category = category
	return item, nil
}

func EditPost(user models.Account, item models.Post) (models.Post, error) {
	if item.AccountID != user.ID {
		return item, fault.Unauthorized("you cannot edit others' posts")
	}
	if len(item.Content) == 0 {
		return item, fault.Invalid("post content cannot be empty")
	}

	item.Language = DetectPostLanguage(item.Content)

	if err := database.C.Omit("Comments", "Account", "Category").Save(&item).Error; err != nil {
		return item, fault.Internal("unable to update post", err)
	}
	return item, nil
}

func DeletePost(user models.Account, item models.Post) error {
	if !user.IsStaff && item.AccountID != user.ID {
		return fault.Unauthorized("you cannot delete others' posts")
	}
	return database.C.Select("Comments").Delete(&item).Error
}

func GetPostMetric(item models.Post) models.PostMetric {
	var metric models.PostMetric
	database.C.Model(&models.Comment{}).
		Where("post_id = ? AND is_deleted = ?", item.ID, false).
		Count(&metric.CommentCount)
	database.C.Model(&models.Reaction{}).
		Where("target_type = ? AND target_id = ?", models.ReactionTargetPost, item.ID).
		Count(&metric.ReactionCount)
	metric.ReactionSummary = GetReactionSummary(models.ReactionTargetPost, item.ID)
	return metric
}

const TruncatePostContentThreshold = 160

func TruncatePostContent(post models.Post) models.Post {
	runes := []rune(post.Content)
	if len(runes) >= TruncatePostContentThreshold {
		post.Content = string(runes[:TruncatePostContentThreshold]) + "..."
	}
	return post
}
