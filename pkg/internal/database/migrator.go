package database

import (
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.PostCategory{},
	&models.Post{},
	&models.Comment{},
	&models.Reaction{},
	&models.Group{},
	&models.GroupMember{},
	&models.Notification{},
	&models.NotificationDelivery{},
	&models.Event{},
	&models.EventAttendee{},
	&models.Survey{},
	&models.SurveyQuestion{},
	&models.SurveyOption{},
	&models.SurveyResponse{},
	&models.SurveyAnswer{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.PostView{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
