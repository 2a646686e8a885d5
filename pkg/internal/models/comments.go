package models

type Comment struct {
	BaseModel

	Content   string `json:"content"`
	IsEdited  bool   `json:"is_edited"`
	IsDeleted bool   `json:"is_deleted"`

	// UserDeleted tells whether the author removed the comment themselves
	// rather than a moderator.
	UserDeleted bool `json:"user_deleted"`

	PostID    uint    `json:"post_id"`
	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`

	Reactions []Reaction `json:"reactions" gorm:"-"`
}
