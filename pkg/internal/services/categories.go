package services

import (
	"errors"
	"fmt"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

func ListCategory(take int, offset int) ([]models.PostCategory, error) {
	var categories []models.PostCategory
	err := database.C.Offset(offset).Limit(take).Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("unable to list categories: %v", err)
	}

	return categories, nil
}

func GetCategory(id uint) (models.PostCategory, error) {
	var category models.PostCategory
	if err := database.C.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, fault.Newf(fault.KindNotFound, "category #%d was not found", id)
		}
		return category, fault.Internal("unable to get category", err)
	}
	return category, nil
}

func NewCategory(user models.Account, name string) (models.PostCategory, error) {
	var category models.PostCategory
	if !user.IsStaff {
		return category, fault.Unauthorized("only staff can create categories")
	}
	if len(name) == 0 {
		return category, fault.Invalid("category name cannot be empty")
	}

	category = models.PostCategory{Name: name}
	if err := database.C.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return category, fault.Duplicate("category already exists")
		}
		return category, fault.Internal("unable to create category", err)
	}

	return category, nil
}
