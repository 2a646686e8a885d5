package models

const (
	RoleAlumni   = "alumni"
	RoleLecturer = "lecturer"
	RoleAdmin    = "admin"
)

type Account struct {
	BaseModel

	Name      string  `json:"name" gorm:"uniqueIndex" validate:"required,lowercase,alphanum"`
	Nick      string  `json:"nick"`
	Email     string  `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Avatar    *string `json:"avatar"`
	Banner    *string `json:"banner"`
	StudentID *string `json:"student_id"`
	Role      string  `json:"role"`
	IsStaff   bool    `json:"is_staff"`
	Password  string  `json:"-"`
	Suspended bool    `json:"suspended"`
}
