package repository

import (
	"context"

	"crescendai-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordingRepository handles database operations for recordings
type RecordingRepository struct {
	db *gorm.DB
}

// NewRecordingRepository creates a new recording repository
func NewRecordingRepository(db *gorm.DB) *RecordingRepository {
	return &RecordingRepository{db: db}
}

// Create creates a new recording
func (r *RecordingRepository) Create(recording *models.Recording) error {
	return r.db.Create(recording).Error
}

// GetByID retrieves a recording with its organization, creator and result
func (r *RecordingRepository) GetByID(id uuid.UUID) (*models.Recording, error) {
	var recording models.Recording
	err := r.db.Preload("Organization").
		Preload("CreatedByUser").
		Preload("Result").
		First(&recording, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recording, nil
}

// ListByOrganization lists an organization's recordings newest first, with their creator.
// The query is cancelled with ctx.
func (r *RecordingRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Recording, error) {
	var recordings []models.Recording
	err := r.db.WithContext(ctx).Preload("CreatedByUser").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&recordings).Error
	return recordings, err
}

// ListByStateForOrganizations lists recordings in a state across organizations, newest first
func (r *RecordingRepository) ListByStateForOrganizations(state models.RecordingState, orgIDs []uuid.UUID) ([]models.Recording, error) {
	var recordings []models.Recording
	if len(orgIDs) == 0 {
		return recordings, nil
	}
	err := r.db.Preload("Organization").
		Preload("CreatedByUser").
		Where("state = ? AND organization_id IN ?", state, orgIDs).
		Order("created_at DESC").
		Find(&recordings).Error
	return recordings, err
}

// SearchForOrganizations matches recording or organization names case-insensitively
func (r *RecordingRepository) SearchForOrganizations(orgIDs []uuid.UUID, query string, limit int) ([]models.Recording, error) {
	var recordings []models.Recording
	if len(orgIDs) == 0 || query == "" {
		return recordings, nil
	}
	pattern := "%" + query + "%"
	err := r.db.Preload("Organization").
		Preload("CreatedByUser").
		Joins("JOIN organizations ON organizations.id = recordings.organization_id").
		Where("recordings.organization_id IN ?", orgIDs).
		Where("recordings.name ILIKE ? OR organizations.name ILIKE ?", pattern, pattern).
		Order("recordings.created_at DESC").
		Limit(limit).
		Find(&recordings).Error
	return recordings, err
}

// CountByStateForOrganizations counts recordings per state across organizations
func (r *RecordingRepository) CountByStateForOrganizations(orgIDs []uuid.UUID) (map[models.RecordingState]int64, error) {
	counts := make(map[models.RecordingState]int64)
	if len(orgIDs) == 0 {
		return counts, nil
	}

	type row struct {
		State models.RecordingState
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.Recording{}).
		Select("state, COUNT(*) AS count").
		Where("organization_id IN ?", orgIDs).
		Group("state").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		counts[rw.State] = rw.Count
	}
	return counts, nil
}

// RecentForOrganizations returns the newest recordings across organizations
func (r *RecordingRepository) RecentForOrganizations(orgIDs []uuid.UUID, limit int) ([]models.Recording, error) {
	var recordings []models.Recording
	if len(orgIDs) == 0 {
		return recordings, nil
	}
	err := r.db.Preload("Organization").
		Where("organization_id IN ?", orgIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&recordings).Error
	return recordings, err
}

// UpdateState sets the processing state of a recording
func (r *RecordingRepository) UpdateState(id uuid.UUID, state models.RecordingState) error {
	res := r.db.Model(&models.Recording{}).Where("id = ?", id).Update("state", state)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkFailed records why processing could not complete
func (r *RecordingRepository) MarkFailed(id uuid.UUID, reason string) error {
	res := r.db.Model(&models.Recording{}).Where("id = ?", id).Update("failure_reason", reason)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AttachResult stores a processing result and marks the recording processed
func (r *RecordingRepository) AttachResult(id uuid.UUID, payload string) (*models.RecordingResult, error) {
	result := &models.RecordingResult{ID: uuid.New(), Result: payload}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Recording{}).Where("id = ?", id).Updates(map[string]interface{}{
			"result_id":      result.ID,
			"state":          models.RecordingStateProcessed,
			"failure_reason": "",
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete deletes a recording and its result
func (r *RecordingRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var recording models.Recording
		if err := tx.First(&recording, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Recording{}, "id = ?", id).Error; err != nil {
			return err
		}
		if recording.ResultID != nil {
			return tx.Delete(&models.RecordingResult{}, "id = ?", *recording.ResultID).Error
		}
		return nil
	})
}
