package service

import (
	"context"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/repository"
)

// PreferenceService defines the interface for student meal preferences.
type PreferenceService interface {
	// SetPreference stores or replaces the rule for a student.
	SetPreference(ctx context.Context, studentID string, rule model.PreferenceRule) (*model.StudentPreference, error)
	// GetPreference returns the stored preference, or nil when the student
	// has never set one.
	GetPreference(ctx context.Context, studentID string) (*model.StudentPreference, error)
}

// PreferenceServiceImpl implements PreferenceService.
type PreferenceServiceImpl struct {
	repo repository.PreferencesRepositoryInterface
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(repo repository.PreferencesRepositoryInterface) PreferenceService {
	return &PreferenceServiceImpl{repo: repo}
}

// SetPreference stores or replaces the rule for a student. Each student
// holds at most one preference.
func (s *PreferenceServiceImpl) SetPreference(ctx context.Context, studentID string, rule model.PreferenceRule) (*model.StudentPreference, error) {
	if err := s.repo.Upsert(ctx, studentID, string(rule)); err != nil {
		return nil, err
	}
	return &model.StudentPreference{
		StudentID: studentID,
		Rule:      rule,
	}, nil
}

// GetPreference returns the stored preference, or nil when absent.
func (s *PreferenceServiceImpl) GetPreference(ctx context.Context, studentID string) (*model.StudentPreference, error) {
	return s.repo.Get(ctx, studentID)
}
