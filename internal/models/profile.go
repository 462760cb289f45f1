package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile holds the flattened personal/academic/job attributes of a user.
// It is created lazily on the first update-profile call.
type Profile struct {
	BaseModel
	UserID     string     `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Profession Profession `gorm:"type:varchar(20);not null" json:"profession"`

	// Personal
	FullName        string `json:"fullName,omitempty"`
	Address         string `json:"address,omitempty"`
	Contact         string `json:"contact,omitempty"`
	LinkedInProfile string `json:"linkedInProfile,omitempty"`
	GithubProfile   string `json:"githubProfile,omitempty"`

	// Academic
	UgCollege       string `json:"ugCollege,omitempty"`
	UgYearOfPassing int    `json:"ugYearOfPassing,omitempty"`
	PgCollege       string `json:"pgCollege,omitempty"`
	PgYearOfPassing int    `json:"pgYearOfPassing,omitempty"`

	// Job
	CurrentCompany string         `json:"currentCompany,omitempty"`
	JobRole        string         `json:"jobRole,omitempty"`
	Skills         datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"` // ["go", "sql"]
	ExCompany      string         `json:"exCompany,omitempty"`
	WorkExperience string         `json:"workExperience,omitempty"`

	// Narrative
	ExtraActivities string `json:"extraActivities,omitempty"`
	About           string `json:"about,omitempty"`
	FuturePlans     string `json:"futurePlans,omitempty"`
}

// GetSkills returns the skills column as a slice of strings.
func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills stores the given skills as a jsonb array.
func (p *Profile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}
