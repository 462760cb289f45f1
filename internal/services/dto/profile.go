package dto

import (
	"mentorhub_backend/internal/models"
)

// UpdateProfileRequest carries the sectioned profile payload. Sections and
// the fields inside them are pointers: a nil field is "not supplied" and is
// skipped during the merge, while an empty string overwrites.
type UpdateProfileRequest struct {
	ProfileData *ProfileData `json:"profileData" binding:"required"`
}

type ProfileData struct {
	PersonalInfo    *PersonalInfo `json:"personalInfo"`
	AcademicInfo    *AcademicInfo `json:"academicInfo"`
	JobInfo         *JobInfo      `json:"jobInfo"`
	ExtraActivities *string       `json:"extraActivities"`
	AboutSection    *string       `json:"aboutSection"`
	FuturePlans     *string       `json:"futurePlans"`
}

// Empty reports whether no section was supplied at all.
func (d *ProfileData) Empty() bool {
	return d.PersonalInfo == nil &&
		d.AcademicInfo == nil &&
		d.JobInfo == nil &&
		d.ExtraActivities == nil &&
		d.AboutSection == nil &&
		d.FuturePlans == nil
}

type PersonalInfo struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Contact  *string `json:"contact"`
	Linkedin *string `json:"linkedin"`
	Github   *string `json:"github"`
}

type AcademicInfo struct {
	CollegeUg       *string `json:"collegeUg"`
	YearOfPassingUG *int    `json:"yearOfPassingUG"`
	CollegePg       *string `json:"collegePg"`
	YearOfPassingPG *int    `json:"yearOfPassingPG"`
}

type JobInfo struct {
	CurrentCompany *string `json:"currentCompany"`
	JobRole        *string `json:"jobRole"`
	// Skills arrive as a comma-separated string and are stored as an array.
	Skills         *string `json:"skills"`
	WorkExperience *string `json:"workExperience"`
	ExCompany      *string `json:"exCompany"`
}

// ProfileResponse joins the stored profile with a subset of identity fields.
type ProfileResponse struct {
	Profile    *models.Profile   `json:"profile"`
	FullName   string            `json:"fullName"`
	Email      string            `json:"email"`
	Profession models.Profession `json:"profession"`
}
