package models

import (
	"encoding/json"

	"gorm.io/datatypes"

	"mentorhub_backend/internal/schedule"
)

type MeetingMode string

const (
	MeetingModeGoogleMeet MeetingMode = "googleMeet"
	MeetingModeZoom       MeetingMode = "zoom"
)

// Availability is a mentor's materialized schedule: a concrete mapping from
// ISO calendar date to ordered hourly slots, covering the generation horizon.
// One record per mentor; creation replaces any previous record.
type Availability struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	TimeZone    string         `gorm:"not null" json:"timeZone"` // informational only, no conversion
	Duration    string         `gorm:"type:varchar(10);not null" json:"duration"`
	MeetingMode MeetingMode    `gorm:"type:varchar(20);not null" json:"meetingMode"`
	Schedule    datatypes.JSON `gorm:"type:jsonb;not null" json:"schedule"` // {"2026-08-29": [{"from":"10:00","to":"11:00"}]}
}

// GetSchedule decodes the stored schedule column.
func (a *Availability) GetSchedule() (map[string][]schedule.Slot, error) {
	out := make(map[string][]schedule.Slot)
	if len(a.Schedule) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(a.Schedule, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetSchedule encodes the materialized schedule into the jsonb column.
func (a *Availability) SetSchedule(s map[string][]schedule.Slot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	a.Schedule = datatypes.JSON(data)
	return nil
}
