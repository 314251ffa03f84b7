package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"tourvisto/internal/models/response_models"
	"tourvisto/internal/repositories"
	"tourvisto/pkg/utils"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*response_models.DashboardStats, error)
	GetUserGrowth(ctx context.Context) ([]response_models.GrowthPoint, error)
	GetTripsByTravelStyle(ctx context.Context) ([]response_models.TravelStyleCount, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// CalculateTrend compares a current-month count against the previous month.
// A zero baseline with any current activity reads as a 100% increment; two
// zero months read as no change.
func CalculateTrend(currentMonth, lastMonth int64) response_models.Trend {
	switch {
	case lastMonth == 0 && currentMonth == 0:
		return response_models.Trend{Trend: response_models.TrendNoChange, Percentage: 0}
	case lastMonth == 0:
		return response_models.Trend{Trend: response_models.TrendIncrement, Percentage: 100}
	}

	change := float64(currentMonth-lastMonth) / float64(lastMonth) * 100
	switch {
	case change > 0:
		return response_models.Trend{Trend: response_models.TrendIncrement, Percentage: change}
	case change < 0:
		return response_models.Trend{Trend: response_models.TrendDecrement, Percentage: math.Abs(change)}
	default:
		return response_models.Trend{Trend: response_models.TrendNoChange, Percentage: 0}
	}
}

func monthWindows(now time.Time) (curStart, curEnd, prevStart, prevEnd time.Time) {
	curStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	curEnd = now
	prevStart = curStart.AddDate(0, -1, 0)
	prevEnd = curStart.Add(-time.Second)
	return
}

func (s *dashboardService) GetStats(ctx context.Context) (*response_models.DashboardStats, error) {
	now := time.Now().UTC()
	curStart, curEnd, prevStart, prevEnd := monthWindows(now)

	totalUsers, err := s.repo.CountTotalUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	usersCur, err := s.repo.CountUsersJoinedBetween(ctx, curStart, curEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	usersPrev, err := s.repo.CountUsersJoinedBetween(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	totalTrips, err := s.repo.CountTotalTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	tripsCur, err := s.repo.CountTripsCreatedBetween(ctx, curStart, curEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	tripsPrev, err := s.repo.CountTripsCreatedBetween(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	activeTotal, err := s.repo.CountUsersByStatus(ctx, "user")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	activeCur, err := s.repo.CountUsersByStatusBetween(ctx, "user", curStart, curEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	activePrev, err := s.repo.CountUsersByStatusBetween(ctx, "user", prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.DashboardStats{
		TotalUsers: totalUsers,
		UsersJoined: response_models.MonthlyCount{
			Total:        totalUsers,
			CurrentMonth: usersCur,
			LastMonth:    usersPrev,
			Trend:        CalculateTrend(usersCur, usersPrev),
		},
		TotalTrips: totalTrips,
		TripsCreated: response_models.MonthlyCount{
			Total:        totalTrips,
			CurrentMonth: tripsCur,
			LastMonth:    tripsPrev,
			Trend:        CalculateTrend(tripsCur, tripsPrev),
		},
		ActiveUsers: response_models.MonthlyCount{
			Total:        activeTotal,
			CurrentMonth: activeCur,
			LastMonth:    activePrev,
			Trend:        CalculateTrend(activeCur, activePrev),
		},
	}, nil
}

// GetUserGrowth returns daily signup counts for the last 30 days. Days with
// no signups are omitted, matching how the chart consumes the series.
func (s *dashboardService) GetUserGrowth(ctx context.Context) ([]response_models.GrowthPoint, error) {
	now := time.Now().UTC()
	rows, err := s.repo.UserGrowthSeries(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	points := make([]response_models.GrowthPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, response_models.GrowthPoint{
			Day:   row.Day.Format("Jan 2"),
			Count: row.Count,
		})
	}
	return points, nil
}

// GetTripsByTravelStyle aggregates persisted trips by the travel style stored
// inside each serialized itinerary. Unparseable payloads are skipped.
func (s *dashboardService) GetTripsByTravelStyle(ctx context.Context) ([]response_models.TravelStyleCount, error) {
	details, err := s.repo.ListTripDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	counts := make(map[string]int64)
	for _, raw := range details {
		detail := utils.ParseTripData(raw)
		if detail == nil || detail.TravelStyle == "" {
			continue
		}
		counts[detail.TravelStyle]++
	}

	out := make([]response_models.TravelStyleCount, 0, len(counts))
	for style, count := range counts {
		out = append(out, response_models.TravelStyleCount{TravelStyle: style, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].TravelStyle < out[j].TravelStyle
	})
	return out, nil
}
