package services

import (
	"errors"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fault.Newf(fault.KindNotFound, "account #%d was not found", id)
		}
		return account, fault.Internal("unable to get account", err)
	}
	return account, nil
}

func GetAccountByName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fault.Newf(fault.KindNotFound, "account %s was not found", name)
		}
		return account, fault.Internal("unable to get account", err)
	}
	return account, nil
}

func NewAccount(account models.Account, password string) (models.Account, error) {
	if len(password) < 8 {
		return account, fault.Invalid("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fault.Internal("unable to hash password", err)
	}
	account.Password = string(hash)
	account.IsStaff = account.Role == models.RoleAdmin || account.Role == models.RoleLecturer

	if err := database.C.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account, fault.Duplicate("name or email already taken")
		}
		return account, fault.Internal("unable to create account", err)
	}

	return account, nil
}

// AuthAccount checks the given credentials and returns the matching account.
func AuthAccount(name string, password string) (models.Account, error) {
	account, err := GetAccountByName(name)
	if err != nil {
		return account, fault.Unauthorized("invalid credentials")
	}
	if account.Suspended {
		return account, fault.Unauthorized("account is suspended")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, fault.Unauthorized("invalid credentials")
	}

	return account, nil
}

func UpdateAccountPassword(account models.Account, password string) error {
	if len(password) < 8 {
		return fault.Invalid("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fault.Internal("unable to hash password", err)
	}

	return database.C.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Update("password", string(hash)).Error
}
