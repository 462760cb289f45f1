package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

// fakeProfileRepo keeps at most one profile per user in memory.
type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Create(profile *models.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) UpdateFields(userID string, fields map[string]interface{}) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	for column, value := range fields {
		switch column {
		case "full_name":
			p.FullName = value.(string)
		case "address":
			p.Address = value.(string)
		case "contact":
			p.Contact = value.(string)
		case "current_company":
			p.CurrentCompany = value.(string)
		case "job_role":
			p.JobRole = value.(string)
		case "about":
			p.About = value.(string)
		case "ug_year_of_passing":
			p.UgYearOfPassing = value.(int)
		}
	}
	return p, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seededProfileService() (ProfileService, *fakeProfileRepo, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()

	user := &models.User{
		FullName:   "Test Mentor",
		Email:      "mentor@test.com",
		Profession: models.ProfessionMentor,
	}
	_ = userRepo.Create(user)

	return NewProfileService(profileRepo, userRepo), profileRepo, userRepo
}

func TestProfileUpdate_CreatesLazilyOnFirstUpdate(t *testing.T) {
	svc, repo, userRepo := seededProfileService()
	var userID string
	for id := range userRepo.users {
		userID = id
	}

	req := &dto.UpdateProfileRequest{
		ProfileData: &dto.ProfileData{
			PersonalInfo: &dto.PersonalInfo{
				Name:    strPtr("Test Mentor"),
				Address: strPtr("Bangalore"),
			},
			JobInfo: &dto.JobInfo{
				Skills: strPtr("go, sql, docker"),
			},
		},
	}

	profile, err := svc.Update(userID, req)
	require.NoError(t, err)

	assert.Equal(t, models.ProfessionMentor, profile.Profession)
	assert.Equal(t, "Bangalore", profile.Address)
	assert.Equal(t, []string{"go", "sql", "docker"}, profile.GetSkills())
	assert.Contains(t, repo.profiles, userID)
}

func TestProfileUpdate_SkipsNilFields(t *testing.T) {
	svc, repo, userRepo := seededProfileService()
	var userID string
	for id := range userRepo.users {
		userID = id
	}

	repo.profiles[userID] = &models.Profile{
		UserID:     userID,
		Profession: models.ProfessionMentor,
		Address:    "Bangalore",
		About:      "original about",
	}

	req := &dto.UpdateProfileRequest{
		ProfileData: &dto.ProfileData{
			PersonalInfo: &dto.PersonalInfo{Contact: strPtr("+91-555")},
		},
	}

	profile, err := svc.Update(userID, req)
	require.NoError(t, err)

	assert.Equal(t, "+91-555", profile.Contact)
	assert.Equal(t, "Bangalore", profile.Address, "untouched fields keep their value")
	assert.Equal(t, "original about", profile.About)
}

func TestProfileUpdate_RejectsEmptyPayload(t *testing.T) {
	svc, _, userRepo := seededProfileService()
	var userID string
	for id := range userRepo.users {
		userID = id
	}

	_, err := svc.Update(userID, &dto.UpdateProfileRequest{ProfileData: &dto.ProfileData{}})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestProfileUpdate_AllNilSectionIsNoOp(t *testing.T) {
	svc, repo, userRepo := seededProfileService()
	var userID string
	for id := range userRepo.users {
		userID = id
	}

	repo.profiles[userID] = &models.Profile{
		UserID:     userID,
		Profession: models.ProfessionMentor,
		Address:    "Bangalore",
	}

	// A section object with no fields set flattens to nothing; the update
	// succeeds and returns the record untouched.
	req := &dto.UpdateProfileRequest{
		ProfileData: &dto.ProfileData{PersonalInfo: &dto.PersonalInfo{}},
	}

	profile, err := svc.Update(userID, req)
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", profile.Address)
}

func TestProfileFetch_JoinsIdentityFields(t *testing.T) {
	svc, repo, userRepo := seededProfileService()
	var userID string
	for id := range userRepo.users {
		userID = id
	}

	repo.profiles[userID] = &models.Profile{
		UserID:     userID,
		Profession: models.ProfessionMentor,
		JobRole:    "Staff Engineer",
	}

	res, err := svc.Fetch(userID)
	require.NoError(t, err)

	assert.Equal(t, "Test Mentor", res.FullName)
	assert.Equal(t, "mentor@test.com", res.Email)
	assert.Equal(t, models.ProfessionMentor, res.Profession)
	assert.Equal(t, "Staff Engineer", res.Profile.JobRole)
}

func TestProfileFetch_MissingProfileIsNotFound(t *testing.T) {
	svc, _, userRepo := seededProfileService()
	var userID string
	for id := range userRepo.users {
		userID = id
	}

	_, err := svc.Fetch(userID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestProfileUpdate_AcademicYears(t *testing.T) {
	svc, repo, userRepo := seededProfileService()
	var userID string
	for id := range userRepo.users {
		userID = id
	}

	repo.profiles[userID] = &models.Profile{UserID: userID, Profession: models.ProfessionStudent}

	req := &dto.UpdateProfileRequest{
		ProfileData: &dto.ProfileData{
			AcademicInfo: &dto.AcademicInfo{YearOfPassingUG: intPtr(2024)},
		},
	}

	profile, err := svc.Update(userID, req)
	require.NoError(t, err)
	assert.Equal(t, 2024, profile.UgYearOfPassing)
}
