package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func getMySurveyResponse(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	response, err := services.GetSurveyResponse(uint(surveyId), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

func submitSurveyResponse(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Answers []services.SurveyAnswerInput `json:"answers" validate:"required,dive"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	response, err := services.SubmitSurveyResponse(user, uint(surveyId), data.Answers)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}
