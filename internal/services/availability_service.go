package services

import (
	"time"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/schedule"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

// ReadWindowDays is the fixed horizon of the availability read endpoint.
const ReadWindowDays = 4

type AvailabilityService interface {
	Create(userID string, req *dto.CreateAvailabilityRequest) (*models.Availability, error)
	NextDays(userID string, days int) (*dto.AvailabilityWindowResponse, error)
}

type AvailabilityServiceImpl struct {
	availabilityRepo repositories.AvailabilityRepository
	// now is swapped in tests to pin the generation date.
	now func() time.Time
}

func NewAvailabilityService(availabilityRepo repositories.AvailabilityRepository) AvailabilityService {
	return &AvailabilityServiceImpl{
		availabilityRepo: availabilityRepo,
		now:              time.Now,
	}
}

// Create materializes the submitted template over the duration horizon and
// stores it. A repeated create replaces the mentor's previous record.
func (s *AvailabilityServiceImpl) Create(userID string, req *dto.CreateAvailabilityRequest) (*models.Availability, error) {
	days := schedule.DurationDays(req.Duration)

	materialized, err := schedule.Materialize(s.now(), days, req.Schedule)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	availability := &models.Availability{
		UserID:      userID,
		TimeZone:    req.TimeZone,
		Duration:    req.Duration,
		MeetingMode: req.MeetingMode,
	}
	if err := availability.SetSchedule(materialized); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.availabilityRepo.Upsert(availability); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return availability, nil
}

// NextDays returns the stored slots for each of the next `days` dates.
// A missing record is a distinct not-found condition; a stored record that
// lacks an entry for a date yields [] for that date.
func (s *AvailabilityServiceImpl) NextDays(userID string, days int) (*dto.AvailabilityWindowResponse, error) {
	availability, err := s.availabilityRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAvailabilityNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	stored, err := availability.GetSchedule()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	window := make(map[string][]schedule.Slot, days)
	for i := 0; i < days; i++ {
		dateKey := today.AddDate(0, 0, i).Format(schedule.DateLayout)
		slots := stored[dateKey]
		if len(slots) == 0 {
			slots = []schedule.Slot{}
		}
		window[dateKey] = slots
	}

	return &dto.AvailabilityWindowResponse{Data: window}, nil
}
