package services

import (
	"errors"
	"fmt"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

func GetGroup(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.
		Preload("Members").
		Preload("Members.Account").
		Where("id = ?", id).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return group, fault.Newf(fault.KindNotFound, "group #%d was not found", id)
		}
		return group, fault.Internal("unable to get group", err)
	}
	return group, nil
}

func ListGroup(take int, offset int) ([]models.Group, int64, error) {
	if take > 100 {
		take = 100
	}

	var count int64
	if err := database.C.Model(&models.Group{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to count groups: %v", err)
	}

	var groups []models.Group
	if err := database.C.
		Preload("Account").
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to list groups: %v", err)
	}

	return groups, count, nil
}

// NewGroup creates a group, its creator joining as an admin member.
func NewGroup(user models.Account, name string, memberIds []uint) (models.Group, error) {
	var group models.Group
	if !user.IsStaff {
		return group, fault.Unauthorized("only staff can create groups")
	}
	if len(name) == 0 {
		return group, fault.Invalid("group name cannot be empty")
	}

	group = models.Group{
		Name:      name,
		AccountID: user.ID,
		Members: []models.GroupMember{
			{AccountID: user.ID, IsAdmin: true},
		},
	}
	for _, id := range memberIds {
		if id == user.ID {
			continue
		}
		group.Members = append(group.Members, models.GroupMember{AccountID: id})
	}

	if err := database.C.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return group, fault.Duplicate("group name already taken")
		}
		return group, fault.Internal("unable to create group", err)
	}

	group.Account = user
	return group, nil
}

func AddGroupMember(user models.Account, group models.Group, accountId uint) (models.GroupMember, error) {
	var member models.GroupMember
	if !canManageGroup(user, group) {
		return member, fault.Unauthorized("only group admins or staff can add members")
	}

	if _, err := GetAccount(accountId); err != nil {
		return member, err
	}

	member = models.GroupMember{
		GroupID:   group.ID,
		AccountID: accountId,
	}
	if err := database.C.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return member, fault.Duplicate("account is already a member of this group")
		}
		return member, fault.Internal("unable to add group member", err)
	}

	return member, nil
}

func RemoveGroupMember(user models.Account, group models.Group, accountId uint) error {
	if !canManageGroup(user, group) && user.ID != accountId {
		return fault.Unauthorized("only group admins or staff can remove members")
	}

	return database.C.
		Where("group_id = ? AND account_id = ?", group.ID, accountId).
		Delete(&models.GroupMember{}).Error
}

func canManageGroup(user models.Account, group models.Group) bool {
	if user.IsStaff || group.AccountID == user.ID {
		return true
	}
	for _, member := range group.Members {
		if member.AccountID == user.ID && member.IsAdmin {
			return true
		}
	}
	return false
}
