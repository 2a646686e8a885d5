package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"github.com/th41ng/SocialNetwork/pkg/internal/security"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func getUserinfo(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	return c.JSON(user)
}

func createAccount(c *fiber.Ctx) error {
	var data struct {
		Name      string  `json:"name" validate:"required,lowercase,alphanum,min=3,max=32"`
		Nick      string  `json:"nick"`
		Email     string  `json:"email" validate:"required,email"`
		Password  string  `json:"password" validate:"required,min=8"`
		StudentID *string `json:"student_id"`
		Role      string  `json:"role" validate:"omitempty,oneof=alumni lecturer admin"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if len(data.Role) == 0 {
		data.Role = models.RoleAlumni
	}
	if data.Role != models.RoleAlumni {
		// Privileged roles can only be handed out by staff.
		if err := exts.EnsureStaff(c); err != nil {
			return err
		}
	}

	account, err := services.NewAccount(models.Account{
		Name:      data.Name,
		Nick:      data.Nick,
		Email:     data.Email,
		StudentID: data.StudentID,
		Role:      data.Role,
	}, data.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func createToken(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthAccount(data.Name, data.Password)
	if err != nil {
		return err
	}

	token, err := security.NewToken(
		viper.GetString("security.jwt_secret"),
		account.ID,
		24*time.Hour,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}

func updatePassword(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.AuthAccount(user.Name, data.OldPassword); err != nil {
		return err
	}
	if err := services.UpdateAccountPassword(user, data.NewPassword); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
