package services

import (
	"strings"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type ProfileService interface {
	Update(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
	Fetch(userID string) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Update merges the sectioned payload into the flattened profile record,
// creating it lazily on first update. Nil fields are skipped.
func (s *ProfileServiceImpl) Update(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	data := req.ProfileData
	if data == nil || data.Empty() {
		return nil, apperrors.NewBadRequestError("No fields provided for update")
	}

	fields := flattenProfileData(data)

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		return s.createProfile(userID, data)
	}

	// Sections present but every field nil: nothing to change, return the
	// record as-is instead of issuing an empty UPDATE.
	if len(fields) == 0 {
		return profile, nil
	}

	profile, err = s.profileRepo.UpdateFields(userID, fields)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Fetch returns the profile joined with a subset of identity fields.
func (s *ProfileServiceImpl) Fetch(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		Profile:    profile,
		FullName:   user.FullName,
		Email:      user.Email,
		Profession: user.Profession,
	}, nil
}

func (s *ProfileServiceImpl) createProfile(userID string, data *dto.ProfileData) (*models.Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:     userID,
		Profession: user.Profession,
	}
	applyProfileData(profile, data)

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// flattenProfileData turns the sectioned payload into a column map,
// skipping every field whose source value is nil.
func flattenProfileData(data *dto.ProfileData) map[string]interface{} {
	fields := make(map[string]interface{})

	if p := data.PersonalInfo; p != nil {
		setField(fields, "full_name", p.Name)
		setField(fields, "address", p.Address)
		setField(fields, "contact", p.Contact)
		setField(fields, "linked_in_profile", p.Linkedin)
		setField(fields, "github_profile", p.Github)
	}
	if a := data.AcademicInfo; a != nil {
		setField(fields, "ug_college", a.CollegeUg)
		setIntField(fields, "ug_year_of_passing", a.YearOfPassingUG)
		setField(fields, "pg_college", a.CollegePg)
		setIntField(fields, "pg_year_of_passing", a.YearOfPassingPG)
	}
	if j := data.JobInfo; j != nil {
		setField(fields, "current_company", j.CurrentCompany)
		setField(fields, "job_role", j.JobRole)
		setField(fields, "work_experience", j.WorkExperience)
		setField(fields, "ex_company", j.ExCompany)
		if j.Skills != nil {
			fields["skills"] = skillsJSON(*j.Skills)
		}
	}
	setField(fields, "extra_activities", data.ExtraActivities)
	setField(fields, "about", data.AboutSection)
	setField(fields, "future_plans", data.FuturePlans)

	return fields
}

func applyProfileData(profile *models.Profile, data *dto.ProfileData) {
	if p := data.PersonalInfo; p != nil {
		setString(&profile.FullName, p.Name)
		setString(&profile.Address, p.Address)
		setString(&profile.Contact, p.Contact)
		setString(&profile.LinkedInProfile, p.Linkedin)
		setString(&profile.GithubProfile, p.Github)
	}
	if a := data.AcademicInfo; a != nil {
		setString(&profile.UgCollege, a.CollegeUg)
		setInt(&profile.UgYearOfPassing, a.YearOfPassingUG)
		setString(&profile.PgCollege, a.CollegePg)
		setInt(&profile.PgYearOfPassing, a.YearOfPassingPG)
	}
	if j := data.JobInfo; j != nil {
		setString(&profile.CurrentCompany, j.CurrentCompany)
		setString(&profile.JobRole, j.JobRole)
		setString(&profile.WorkExperience, j.WorkExperience)
		setString(&profile.ExCompany, j.ExCompany)
		if j.Skills != nil {
			profile.SetSkills(splitSkills(*j.Skills))
		}
	}
	setString(&profile.ExtraActivities, data.ExtraActivities)
	setString(&profile.About, data.AboutSection)
	setString(&profile.FuturePlans, data.FuturePlans)
}

func setField(fields map[string]interface{}, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func setIntField(fields map[string]interface{}, column string, value *int) {
	if value != nil {
		fields[column] = *value
	}
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func setInt(dst *int, value *int) {
	if value != nil {
		*dst = *value
	}
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func skillsJSON(raw string) interface{} {
	var p models.Profile
	p.SetSkills(splitSkills(raw))
	return p.Skills
}
