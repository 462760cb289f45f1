package repositories

import (
	"errors"

	"gorm.io/gorm"

	"mentorhub_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(userID string) (*models.Profile, error)
	Create(profile *models.Profile) error
	// UpdateFields patches the stored profile with the given column map.
	UpdateFields(userID string, fields map[string]interface{}) (*models.Profile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateFields(userID string, fields map[string]interface{}) (*models.Profile, error) {
	res := r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return r.FindByUserID(userID)
}
