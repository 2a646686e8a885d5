package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

func GetEvent(id uint) (models.Event, error) {
	var event models.Event
	if err := database.C.
		Preload("Account").
		Preload("Attendees").
		Where("id = ?", id).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event, fault.Newf(fault.KindNotFound, "event #%d was not found", id)
		}
		return event, fault.Internal("unable to get event", err)
	}
	return event, nil
}

func ListEvent(take int, offset int) ([]models.Event, int64, error) {
	if take > 100 {
		take = 100
	}

	var count int64
	if err := database.C.Model(&models.Event{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to count events: %v", err)
	}

	var events []models.Event
	if err := database.C.
		Preload("Account").
		Limit(take).Offset(offset).
		Order("start_at ASC").
		Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to list events: %v", err)
	}

	return events, count, nil
}

func NewEvent(user models.Account, event models.Event) (models.Event, error) {
	if !user.IsStaff {
		return event, fault.Unauthorized("only staff can create events")
	}
	if len(event.Title) == 0 {
		return event, fault.Invalid("event title cannot be empty")
	}
	if !event.EndAt.After(event.StartAt) {
		return event, fault.Invalid("event must end after it starts")
	}

	event.AccountID = user.ID
	if err := database.C.Create(&event).Error; err != nil {
		return event, fault.Internal("unable to create event", err)
	}

	event.Account = user
	return event, nil
}

func AttendEvent(user models.Account, event models.Event) (models.EventAttendee, error) {
	var attendee models.EventAttendee
	if time.Now().After(event.EndAt) {
		return attendee, fault.Closed("event has already ended")
	}

	attendee = models.EventAttendee{
		EventID:   event.ID,
		AccountID: user.ID,
	}
	if err := database.C.Create(&attendee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return attendee, fault.Duplicate("you are already attending this event")
		}
		return attendee, fault.Internal("unable to attend event", err)
	}

	return attendee, nil
}

func LeaveEvent(user models.Account, event models.Event) error {
	return database.C.
		Where("event_id = ? AND account_id = ?", event.ID, user.ID).
		Delete(&models.EventAttendee{}).Error
}
