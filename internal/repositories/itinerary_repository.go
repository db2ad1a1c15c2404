package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tripplanner/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Itinerary, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (*db_models.Itinerary, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// Insert stores the itinerary together with its weather rows.
func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	for i := range itinerary.Weather {
		itinerary.Weather[i].Position = i
	}
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Weather", orderByPosition).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Weather", orderByPosition).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// DeleteByIDAndUser soft-deletes the itinerary and reports whether a row
// owned by userID existed.
func (r *itineraryRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Itinerary{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
