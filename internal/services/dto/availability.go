package dto

import (
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/schedule"
)

// CreateAvailabilityRequest is the weekly template plus per-date overrides
// submitted by a mentor. Every field is individually required. The duration
// code is not restricted to the known set: unrecognized codes fall back to a
// one-week horizon by documented policy.
type CreateAvailabilityRequest struct {
	TimeZone    string             `json:"timeZone" binding:"required"`
	Duration    string             `json:"duration" binding:"required"`
	MeetingMode models.MeetingMode `json:"meetingMode" binding:"required,oneof=googleMeet zoom"`
	Schedule    schedule.Template  `json:"schedule" binding:"required,min=1"`
}

// AvailabilityWindowResponse is the next-N-days view of a mentor's schedule.
// Every date in the window is present; dates without slots map to [].
type AvailabilityWindowResponse struct {
	Data map[string][]schedule.Slot `json:"data"`
}
