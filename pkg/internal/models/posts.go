package models

import (
	"gorm.io/datatypes"
)

type PostVisibilityLevel = int8

const (
	PostVisibilityPublic = PostVisibilityLevel(iota)
	PostVisibilityPrivate
)

type PostCategory struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex"`
	Posts []Post `json:"posts" gorm:"foreignKey:CategoryID"`
}

type Post struct {
	BaseModel

	Content     string                      `json:"content"`
	Language    string                      `json:"language"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`
	Visibility  PostVisibilityLevel         `json:"visibility"`

	IsCommentLocked bool `json:"is_comment_locked"`

	Comments  []Comment  `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Reactions []Reaction `json:"reactions" gorm:"-"`

	TotalViews int64 `json:"total_views"`

	CategoryID uint         `json:"category_id"`
	Category   PostCategory `json:"category"`
	AccountID  uint         `json:"account_id"`
	Account    Account      `json:"account"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

type PostMetric struct {
	CommentCount    int64            `json:"comment_count"`
	ReactionCount   int64            `json:"reaction_count"`
	ReactionSummary map[string]int64 `json:"reaction_summary"`
}

type PostView struct {
	AccountID uint `gorm:"primaryKey" json:"account_id"`
	PostID    uint `gorm:"primaryKey" json:"post_id"`
}
