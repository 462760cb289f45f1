package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/schedule"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

// fakeAvailabilityRepo keeps records in memory, one per user.
type fakeAvailabilityRepo struct {
	records map[string]*models.Availability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{records: make(map[string]*models.Availability)}
}

func (f *fakeAvailabilityRepo) FindByUserID(userID string) (*models.Availability, error) {
	rec, ok := f.records[userID]
	if !ok {
		return nil, repositories.ErrAvailabilityNotFound
	}
	return rec, nil
}

func (f *fakeAvailabilityRepo) Upsert(availability *models.Availability) error {
	f.records[availability.UserID] = availability
	return nil
}

// mondayService pins "today" to Monday 2026-08-31.
func mondayService(repo repositories.AvailabilityRepository) *AvailabilityServiceImpl {
	svc := NewAvailabilityService(repo).(*AvailabilityServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestAvailabilityCreate_MaterializesWeeklyTemplate(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := mondayService(repo)

	req := &dto.CreateAvailabilityRequest{
		TimeZone:    "Asia/Kolkata",
		Duration:    "1w",
		MeetingMode: models.MeetingModeGoogleMeet,
		Schedule: schedule.Template{
			"Monday": {{From: "10:00", To: "12:00"}},
		},
	}

	rec, err := svc.Create("mentor-1", req)
	require.NoError(t, err)

	stored, err := rec.GetSchedule()
	require.NoError(t, err)

	// One Monday inside a 7-day horizon that starts on a Monday.
	require.Len(t, stored, 1)
	assert.Equal(t, []schedule.Slot{
		{From: "10:00", To: "11:00"},
		{From: "11:00", To: "12:00"},
	}, stored["2026-08-31"])
}

func TestAvailabilityCreate_ReplacesExistingRecord(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := mondayService(repo)

	first := &dto.CreateAvailabilityRequest{
		TimeZone:    "UTC",
		Duration:    "1w",
		MeetingMode: models.MeetingModeZoom,
		Schedule:    schedule.Template{"Monday": {{From: "08:00", To: "09:00"}}},
	}
	second := &dto.CreateAvailabilityRequest{
		TimeZone:    "UTC",
		Duration:    "2w",
		MeetingMode: models.MeetingModeZoom,
		Schedule:    schedule.Template{"Tuesday": {{From: "10:00", To: "11:00"}}},
	}

	_, err := svc.Create("mentor-1", first)
	require.NoError(t, err)
	_, err = svc.Create("mentor-1", second)
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "2w", repo.records["mentor-1"].Duration)
}

func TestAvailabilityCreate_RejectsBadTemplate(t *testing.T) {
	svc := mondayService(newFakeAvailabilityRepo())

	req := &dto.CreateAvailabilityRequest{
		TimeZone:    "UTC",
		Duration:    "1w",
		MeetingMode: models.MeetingModeZoom,
		Schedule:    schedule.Template{"Someday": {{From: "10:00", To: "11:00"}}},
	}

	_, err := svc.Create("mentor-1", req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestAvailabilityNextDays_MissingRecordIsNotFound(t *testing.T) {
	svc := mondayService(newFakeAvailabilityRepo())

	_, err := svc.NextDays("nobody", ReadWindowDays)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestAvailabilityNextDays_AbsentDatesAreEmptyLists(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := mondayService(repo)

	req := &dto.CreateAvailabilityRequest{
		TimeZone:    "UTC",
		Duration:    "1w",
		MeetingMode: models.MeetingModeGoogleMeet,
		Schedule:    schedule.Template{"Monday": {{From: "10:00", To: "12:00"}}},
	}
	_, err := svc.Create("mentor-1", req)
	require.NoError(t, err)

	window, err := svc.NextDays("mentor-1", ReadWindowDays)
	require.NoError(t, err)
	require.Len(t, window.Data, ReadWindowDays)

	// Monday comes back with slots, Tue..Thu are present but empty.
	assert.Len(t, window.Data["2026-08-31"], 2)
	assert.Equal(t, []schedule.Slot{}, window.Data["2026-09-01"])
	assert.Equal(t, []schedule.Slot{}, window.Data["2026-09-02"])
	assert.Equal(t, []schedule.Slot{}, window.Data["2026-09-03"])
}
