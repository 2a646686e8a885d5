package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		accounts := api.Group("/accounts")
		{
			accounts.Post("/", createAccount)
			accounts.Post("/token", createToken)
			accounts.Get("/me", getUserinfo)
			accounts.Post("/me/password", updatePassword)
		}

		api.Get("/categories", listCategories)
		api.Post("/categories", createCategory)

		posts := api.Group("/posts")
		{
			posts.Get("/", listPosts)
			posts.Get("/:postId", getPost)
			posts.Post("/", createPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)

			posts.Get("/:postId/comments", listComments)
			posts.Post("/:postId/comments", createComment)
		}

		api.Put("/comments/:commentId", editComment)
		api.Delete("/comments/:commentId", deleteComment)

		api.Post("/reactions", reactToTarget)
		api.Get("/reactions/summary", getReactionSummary)

		groups := api.Group("/groups")
		{
			groups.Get("/", listGroups)
			groups.Get("/:groupId", getGroup)
			groups.Post("/", createGroup)
			groups.Post("/:groupId/members", addGroupMember)
			groups.Delete("/:groupId/members/:accountId", removeGroupMember)
		}

		notifications := api.Group("/notifications")
		{
			notifications.Get("/", listNotifications)
			notifications.Post("/", createNotification)
			notifications.Post("/:notificationId/read", markNotificationRead)
		}

		events := api.Group("/events")
		{
			events.Get("/", listEvents)
			events.Get("/:eventId", getEvent)
			events.Post("/", createEvent)
			events.Post("/:eventId/attend", attendEvent)
			events.Delete("/:eventId/attend", leaveEvent)
		}

		surveys := api.Group("/surveys")
		{
			surveys.Get("/", listSurveys)
			surveys.Get("/:surveyId", getSurvey)
			surveys.Post("/", createSurvey)
			surveys.Put("/:surveyId", editSurvey)
			surveys.Post("/:surveyId/close", closeSurvey)
			surveys.Delete("/:surveyId", deleteSurvey)

			surveys.Post("/:surveyId/responses", submitSurveyResponse)
			surveys.Get("/:surveyId/responses/me", getMySurveyResponse)
			surveys.Get("/:surveyId/statistics", getSurveyStatistics)
		}
	}
}
