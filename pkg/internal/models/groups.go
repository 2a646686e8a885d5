package models

type Group struct {
	BaseModel

	Name    string        `json:"name" gorm:"uniqueIndex"`
	Members []GroupMember `json:"members" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}

type GroupMember struct {
	BaseModel

	IsAdmin bool `json:"is_admin"`

	GroupID   uint    `json:"group_id" gorm:"uniqueIndex:group_member_pair"`
	AccountID uint    `json:"account_id" gorm:"uniqueIndex:group_member_pair"`
	Account   Account `json:"account"`
}
