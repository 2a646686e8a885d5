package models

import "time"

type Event struct {
	BaseModel

	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`

	Attendees []EventAttendee `json:"attendees" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}

type EventAttendee struct {
	BaseModel

	EventID   uint    `json:"event_id" gorm:"uniqueIndex:event_attendee_pair"`
	AccountID uint    `json:"account_id" gorm:"uniqueIndex:event_attendee_pair"`
	Account   Account `json:"account"`
}
