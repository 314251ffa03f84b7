package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "tourvisto/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalUsers(ctx context.Context) (int64, error)
	CountUsersJoinedBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountUsersByStatus(ctx context.Context, status string) (int64, error)
	CountUsersByStatusBetween(ctx context.Context, status string, start, end time.Time) (int64, error)

	CountTotalTrips(ctx context.Context) (int64, error)
	CountTripsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)

	UserGrowthSeries(ctx context.Context, start, end time.Time) ([]DayCount, error)
	ListTripDetails(ctx context.Context) ([]string, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type DayCount struct {
	Day   time.Time `gorm:"column:day"`
	Count int64     `gorm:"column:count"`
}

func (r *dashboardRepository) CountTotalUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.User{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountUsersJoinedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountUsersByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountUsersByStatusBetween(ctx context.Context, status string, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("status = ?", status).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTripsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) UserGrowthSeries(ctx context.Context, start, end time.Time) ([]DayCount, error) {
	var rows []DayCount
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Select("date_trunc('day', to_timestamp(created_at)) AS day, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

// ListTripDetails returns the raw serialized itineraries; aggregation by
// travel style happens in the service because the style lives inside the
// serialized payload, not in a column.
func (r *dashboardRepository) ListTripDetails(ctx context.Context) ([]string, error) {
	var details []string
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Pluck("trip_detail", &details).Error
	return details, err
}
