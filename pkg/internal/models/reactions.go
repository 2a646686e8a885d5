package models

const (
	ReactionTargetPost    = "post"
	ReactionTargetComment = "comment"
)

const (
	ReactionSymbolLike = "like"
	ReactionSymbolHaha = "haha"
	ReactionSymbolLove = "love"
)

type Reaction struct {
	BaseModel

	TargetType string `json:"target_type" gorm:"index:reaction_target"`
	TargetID   uint   `json:"target_id" gorm:"index:reaction_target"`
	Symbol     string `json:"symbol"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}
