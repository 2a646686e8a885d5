package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
)

// NewNotification records a notification and fans deliveries out to its
// audience: either one direct recipient or every member of the recipient
// group. The fan-out happens off the request path.
func NewNotification(user models.Account, notification models.Notification) (models.Notification, error) {
	if !user.IsStaff {
		return notification, fault.Unauthorized("only staff can send notifications")
	}
	if notification.RecipientID == nil && notification.GroupID == nil {
		return notification, fault.Invalid("notification needs a recipient or a group")
	}

	notification.AccountID = user.ID

	if notification.GroupID != nil {
		if _, err := GetGroup(*notification.GroupID); err != nil {
			return notification, err
		}
	}
	if notification.RecipientID != nil {
		if _, err := GetAccount(*notification.RecipientID); err != nil {
			return notification, err
		}
	}

	if err := database.C.Create(&notification).Error; err != nil {
		return notification, fault.Internal("unable to create notification", err)
	}

	go func() {
		if err := DeliverNotification(notification); err != nil {
			log.Error().Err(err).Uint("notification", notification.ID).
				Msg("An error occurred when delivering notification...")
		}
	}()

	return notification, nil
}

// DeliverNotification materializes one delivery row per audience member.
func DeliverNotification(notification models.Notification) error {
	var audience []uint

	if notification.RecipientID != nil {
		audience = append(audience, *notification.RecipientID)
	} else if notification.GroupID != nil {
		var members []models.GroupMember
		if err := database.C.
			Where("group_id = ?", *notification.GroupID).
			Find(&members).Error; err != nil {
			return fmt.Errorf("unable to list group members: %v", err)
		}
		audience = lo.Map(members, func(item models.GroupMember, _ int) uint {
			return item.AccountID
		})
	}

	if len(audience) == 0 {
		return nil
	}

	deliveries := lo.Map(lo.Uniq(audience), func(id uint, _ int) models.NotificationDelivery {
		return models.NotificationDelivery{
			NotificationID: notification.ID,
			AccountID:      id,
		}
	})

	return database.C.CreateInBatches(deliveries, 1000).Error
}

func ListNotificationDeliveries(user models.Account, take int, offset int) ([]models.Notification, int64, error) {
	if take > 100 {
		take = 100
	}

	tx := database.C.Model(&models.NotificationDelivery{}).
		Where("account_id = ?", user.ID)

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to count deliveries: %v", err)
	}

	var deliveries []models.NotificationDelivery
	if err := tx.
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&deliveries).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to list deliveries: %v", err)
	}

	ids := lo.Map(deliveries, func(item models.NotificationDelivery, _ int) uint {
		return item.NotificationID
	})

	var notifications []models.Notification
	if len(ids) > 0 {
		if err := database.C.
			Preload("Account").
			Preload("Event").
			Where("id IN ?", ids).
			Order("created_at DESC").
			Find(&notifications).Error; err != nil {
			return nil, 0, fmt.Errorf("unable to list notifications: %v", err)
		}
	}

	return notifications, count, nil
}

func MarkNotificationRead(user models.Account, notificationId uint) error {
	return database.C.Model(&models.NotificationDelivery{}).
		Where("notification_id = ? AND account_id = ?", notificationId, user.ID).
		Update("is_read", true).Error
}
