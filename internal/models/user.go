package models

type Profession string

const (
	ProfessionStudent Profession = "student"
	ProfessionMentor  Profession = "mentor"
)

type User struct {
	BaseModel
	FullName     string     `gorm:"not null" json:"fullName"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Profession   Profession `gorm:"type:varchar(20);not null" json:"profession"`
	// RefreshToken is set at login and cleared at logout. Users are never
	// hard-deleted.
	RefreshToken string `json:"-"`

	// Relations
	Profile      *Profile      `gorm:"foreignKey:UserID" json:"-"`
	Availability *Availability `gorm:"foreignKey:UserID" json:"-"`
}
