package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/exts"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

func listSurveys(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	var user *models.Account
	if account, authenticated := exts.AuthenticatedUser(c); authenticated {
		user = &account
	}

	items, count, err := services.ListVisibleSurveys(user, take, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getSurvey(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return err
	}

	return c.JSON(survey)
}

func createSurvey(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Title       string                        `json:"title" validate:"required,max=255"`
		Description string                        `json:"description"`
		Questions   []services.SurveyQuestionSpec `json:"questions" validate:"dive"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.NewSurvey(user, data.Title, data.Description, data.Questions)
	if err != nil {
		return err
	}

	return c.JSON(survey)
}

func editSurvey(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	var data struct {
		Title       string `json:"title" validate:"required,max=255"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return err
	}

	survey.Title = data.Title
	survey.Description = data.Description

	if survey, err = services.EditSurvey(user, survey); err != nil {
		return err
	}

	return c.JSON(survey)
}

func closeSurvey(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	survey, err := services.CloseSurvey(user, uint(surveyId))
	if err != nil {
		return err
	}

	return c.JSON(survey)
}

func deleteSurvey(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.AuthenticatedUser(c)

	if err := services.DeleteSurvey(user, uint(surveyId)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}

func getSurveyStatistics(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	stats, err := services.GetSurveyStatistics(uint(surveyId), c.QueryBool("ranked", false))
	if err != nil {
		return err
	}

	if page := c.QueryInt("page", 0); page > 0 {
		for idx := range stats.Questions {
			stats.Questions[idx].TextAnswers = services.PageTextAnswers(stats.Questions[idx].TextAnswers, page)
		}
	}

	return c.JSON(stats)
}
