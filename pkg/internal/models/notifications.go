package models

type Notification struct {
	BaseModel

	Title   string `json:"title"`
	Content string `json:"content"`

	RecipientID *uint    `json:"recipient_id"`
	Recipient   *Account `json:"recipient" gorm:"foreignKey:RecipientID"`
	GroupID     *uint    `json:"group_id"`
	Group       *Group   `json:"group"`
	EventID     *uint    `json:"event_id"`
	Event       *Event   `json:"event"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`

	Deliveries []NotificationDelivery `json:"deliveries" gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE"`
}

type NotificationDelivery struct {
	BaseModel

	IsRead bool `json:"is_read"`

	NotificationID uint `json:"notification_id"`
	AccountID      uint `json:"account_id"`
}
