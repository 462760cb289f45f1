package repositories

import (
	"errors"

	"gorm.io/gorm"

	"mentorhub_backend/internal/models"
)

var ErrAvailabilityNotFound = errors.New("availability not found")

type AvailabilityRepository interface {
	FindByUserID(userID string) (*models.Availability, error)
	// Upsert replaces any existing record for the same mentor. The user_id
	// column carries a unique index, so a mentor can never hold two records.
	Upsert(availability *models.Availability) error
}

type AvailabilityRepositoryImpl struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &AvailabilityRepositoryImpl{db: db}
}

func (r *AvailabilityRepositoryImpl) FindByUserID(userID string) (*models.Availability, error) {
	var availability models.Availability
	err := r.db.First(&availability, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return &availability, nil
}

func (r *AvailabilityRepositoryImpl) Upsert(availability *models.Availability) error {
	var existing models.Availability
	err := r.db.First(&existing, "user_id = ?", availability.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(availability).Error
		}
		return err
	}

	availability.ID = existing.ID
	availability.CreatedAt = existing.CreatedAt
	return r.db.Save(availability).Error
}
