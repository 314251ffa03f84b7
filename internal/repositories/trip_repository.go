package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tourvisto/internal/models/db_models"
	"tourvisto/pkg/utils"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) (string, error)
	UpdatePaymentLink(ctx context.Context, tripID string, paymentLink string) error
	GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error)
	ListTrips(ctx context.Context, limit, offset int) ([]dbm.Trip, int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) (string, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return "", err
	}
	return trip.ID.String(), nil
}

func (r *tripRepository) UpdatePaymentLink(ctx context.Context, tripID string, paymentLink string) error {
	result := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripID).
		Update("payment_link", paymentLink)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).Where("id = ?", tripID).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTrips(ctx context.Context, limit, offset int) ([]dbm.Trip, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}
