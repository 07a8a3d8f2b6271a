// internal/services/profile_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

type ProfileService struct {
	db *gorm.DB
}

// ProfileFields carries only the fields present in an upsert body; nil means
// the caller did not send the field and the stored value must survive.
type ProfileFields struct {
	Name      *string
	Education *string
	Location  *string
	Phone     *string
	LinkedIn  *string
}

func (f *ProfileFields) apply(p *models.Profile) {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.Education != nil {
		p.Education = *f.Education
	}
	if f.Location != nil {
		p.Location = *f.Location
	}
	if f.Phone != nil {
		p.Phone = *f.Phone
	}
	if f.LinkedIn != nil {
		p.LinkedIn = *f.LinkedIn
	}
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// UpsertProfile patches the profile stored for an email, creating the record
// on first write. Absent fields are left untouched.
func (s *ProfileService) UpsertProfile(email string, fields *ProfileFields) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch profile: %w", err)
		}
		profile = models.Profile{Email: email}
		fields.apply(&profile)
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return &profile, nil
	}

	fields.apply(&profile)
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &profile, nil
}
