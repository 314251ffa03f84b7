package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourvisto/internal/models/db_models"
	"tourvisto/internal/models/request_models"
	"tourvisto/internal/repositories"
	"tourvisto/internal/services"
	"tourvisto/pkg/utils"
)

// Test doubles. Set only the function fields a test needs; anything else
// that gets called will panic and fail the test loudly.

type mockTripRepo struct {
	createTrip        func(ctx context.Context, trip *db_models.Trip) (string, error)
	updatePaymentLink func(ctx context.Context, tripID, paymentLink string) error
	getTripByID       func(ctx context.Context, tripID string) (*db_models.Trip, error)
	listTrips         func(ctx context.Context, limit, offset int) ([]db_models.Trip, int64, error)
}

func (m *mockTripRepo) CreateTrip(ctx context.Context, trip *db_models.Trip) (string, error) {
	return m.createTrip(ctx, trip)
}
func (m *mockTripRepo) UpdatePaymentLink(ctx context.Context, tripID, paymentLink string) error {
	return m.updatePaymentLink(ctx, tripID, paymentLink)
}
func (m *mockTripRepo) GetTripByID(ctx context.Context, tripID string) (*db_models.Trip, error) {
	return m.getTripByID(ctx, tripID)
}
func (m *mockTripRepo) ListTrips(ctx context.Context, limit, offset int) ([]db_models.Trip, int64, error) {
	return m.listTrips(ctx, limit, offset)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

type mockTextClient struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (m *mockTextClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	return m.generate(ctx, prompt)
}

var _ utils.TextClientInterface = (*mockTextClient)(nil)

type mockImageService struct {
	search func(ctx context.Context, query string, limit int) ([]string, error)
}

func (m *mockImageService) SearchImages(ctx context.Context, query string, limit int) ([]string, error) {
	return m.search(ctx, query, limit)
}

var _ services.ImageService = (*mockImageService)(nil)

type mockPaymentService struct {
	createLink func(name, description string, price int, tripID string) (string, error)
}

func (m *mockPaymentService) CreatePaymentLink(name, description string, price int, tripID string) (string, error) {
	return m.createLink(name, description, price, tripID)
}

var _ services.PaymentService = (*mockPaymentService)(nil)

// ---- fixtures --------------------------------------------------------------

const aiResponse = "Sure, here is the plan:\n```json\n" + `{
  "name": "Kyoto Retreat",
  "description": "Five days of temples and tea houses.",
  "estimatedPrice": "$1,250",
  "duration": 5,
  "budget": "Mid-range",
  "travelStyle": "Cultural",
  "country": "Japan",
  "interests": "History",
  "groupType": "Couple",
  "itinerary": [
    {"day": 1, "location": "Kyoto", "activities": [
      {"time": "Morning", "description": "Fushimi Inari hike"}
    ]}
  ]
}` + "\n```"

func validRequest() *request_models.CreateTripRequest {
	return &request_models.CreateTripRequest{
		Country:      "Japan",
		NumberOfDays: 5,
		TravelStyle:  "Cultural",
		Interests:    "History",
		Budget:       "Mid-range",
		GroupType:    "Couple",
		UserID:       "account-123",
	}
}

func TestGenerateTrip_Success(t *testing.T) {
	var storedDetail string
	var linkedTripID, storedLink string
	var priceSeen int

	repo := &mockTripRepo{
		createTrip: func(ctx context.Context, trip *db_models.Trip) (string, error) {
			storedDetail = trip.TripDetail
			assert.Equal(t, "account-123", trip.UserID)
			assert.Len(t, trip.ImageUrls, 2)
			return "trip-1", nil
		},
		updatePaymentLink: func(ctx context.Context, tripID, paymentLink string) error {
			linkedTripID = tripID
			storedLink = paymentLink
			return nil
		},
	}
	svc := services.NewTripService(repo,
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "5-day travel itinerary for Japan")
			return aiResponse, nil
		}},
		&mockImageService{search: func(ctx context.Context, query string, limit int) ([]string, error) {
			assert.Equal(t, "Japan History Cultural", query)
			assert.Equal(t, 3, limit)
			return []string{"https://img/1", "https://img/2"}, nil
		}},
		&mockPaymentService{createLink: func(name, description string, price int, tripID string) (string, error) {
			assert.Equal(t, "Kyoto Retreat", name)
			assert.Equal(t, "Five days of temples and tea houses.", description)
			priceSeen = price
			return "https://pay/checkout", nil
		}},
	)

	resp, err := svc.GenerateTrip(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "trip-1", resp.ID)

	assert.Contains(t, storedDetail, "Kyoto Retreat")
	assert.Equal(t, 1250, priceSeen)
	assert.Equal(t, "trip-1", linkedTripID)
	assert.Equal(t, "https://pay/checkout", storedLink)
}

func TestGenerateTrip_BlankDescriptionFallsBackToName(t *testing.T) {
	response := "```json\n" + `{"name": "Quick Hop", "estimatedPrice": "$300", "duration": 2}` + "\n```"
	var nameSeen, descriptionSeen string

	repo := &mockTripRepo{
		createTrip: func(ctx context.Context, trip *db_models.Trip) (string, error) {
			return "trip-4", nil
		},
		updatePaymentLink: func(ctx context.Context, tripID, paymentLink string) error {
			return nil
		},
	}
	svc := services.NewTripService(repo,
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			return response, nil
		}},
		&mockImageService{search: func(ctx context.Context, query string, limit int) ([]string, error) {
			return nil, nil
		}},
		&mockPaymentService{createLink: func(name, description string, price int, tripID string) (string, error) {
			nameSeen = name
			descriptionSeen = description
			return "https://pay/checkout", nil
		}},
	)

	_, err := svc.GenerateTrip(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Quick Hop", nameSeen)
	assert.Equal(t, "Quick Hop", descriptionSeen)
}

func TestGenerateTrip_MissingFieldRejectedBeforeAnyCall(t *testing.T) {
	req := validRequest()
	req.Budget = ""

	svc := services.NewTripService(
		&mockTripRepo{}, &mockTextClient{}, &mockImageService{}, &mockPaymentService{})

	_, err := svc.GenerateTrip(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateTrip_NilAIClient(t *testing.T) {
	svc := services.NewTripService(
		&mockTripRepo{}, nil, &mockImageService{}, &mockPaymentService{})

	_, err := svc.GenerateTrip(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrAINotConfigured)
}

func TestGenerateTrip_AICallFails(t *testing.T) {
	svc := services.NewTripService(
		&mockTripRepo{},
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("provider timeout")
		}},
		&mockImageService{}, &mockPaymentService{})

	_, err := svc.GenerateTrip(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrAICallFailed)
}

func TestGenerateTrip_NoFencedBlockSkipsPersistence(t *testing.T) {
	created := false
	repo := &mockTripRepo{
		createTrip: func(ctx context.Context, trip *db_models.Trip) (string, error) {
			created = true
			return "trip-1", nil
		},
	}
	svc := services.NewTripService(repo,
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			return "I'm sorry, I cannot produce an itinerary.", nil
		}},
		&mockImageService{}, &mockPaymentService{})

	_, err := svc.GenerateTrip(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrInvalidAIOutput)
	assert.False(t, created)
}

func TestGenerateTrip_NonObjectTopLevel(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{},
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			return "```json\n[1, 2, 3]\n```", nil
		}},
		&mockImageService{}, &mockPaymentService{})

	_, err := svc.GenerateTrip(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrInvalidAIOutput)
}

func TestGenerateTrip_ImageFailureIsSoft(t *testing.T) {
	var storedURLs []string
	repo := &mockTripRepo{
		createTrip: func(ctx context.Context, trip *db_models.Trip) (string, error) {
			storedURLs = trip.ImageUrls
			return "trip-2", nil
		},
		updatePaymentLink: func(ctx context.Context, tripID, paymentLink string) error {
			return nil
		},
	}
	svc := services.NewTripService(repo,
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			return aiResponse, nil
		}},
		&mockImageService{search: func(ctx context.Context, query string, limit int) ([]string, error) {
			return nil, errors.New("unsplash quota exceeded")
		}},
		&mockPaymentService{createLink: func(name, description string, price int, tripID string) (string, error) {
			return "https://pay/checkout", nil
		}},
	)

	resp, err := svc.GenerateTrip(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "trip-2", resp.ID)
	assert.Empty(t, storedURLs)
}

func TestGenerateTrip_PersistenceFailure(t *testing.T) {
	repo := &mockTripRepo{
		createTrip: func(ctx context.Context, trip *db_models.Trip) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	svc := services.NewTripService(repo,
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			return aiResponse, nil
		}},
		&mockImageService{search: func(ctx context.Context, query string, limit int) ([]string, error) {
			return nil, nil
		}},
		&mockPaymentService{})

	_, err := svc.GenerateTrip(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrPersistenceFailed)
}

func TestGenerateTrip_PaymentFailureAfterPersist(t *testing.T) {
	created := false
	repo := &mockTripRepo{
		createTrip: func(ctx context.Context, trip *db_models.Trip) (string, error) {
			created = true
			return "trip-3", nil
		},
	}
	svc := services.NewTripService(repo,
		&mockTextClient{generate: func(ctx context.Context, prompt string) (string, error) {
			return aiResponse, nil
		}},
		&mockImageService{search: func(ctx context.Context, query string, limit int) ([]string, error) {
			return nil, nil
		}},
		&mockPaymentService{createLink: func(name, description string, price int, tripID string) (string, error) {
			return "", errors.New("gateway unavailable")
		}},
	)

	_, err := svc.GenerateTrip(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrPaymentLinkFailed)
	assert.True(t, created, "trip must remain persisted when the payment step fails")
}

func TestListTrips_PageValidation(t *testing.T) {
	svc := services.NewTripService(
		&mockTripRepo{}, nil, &mockImageService{}, &mockPaymentService{})

	_, err := svc.ListTrips(context.Background(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListTrips(context.Background(), 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.ListTrips(context.Background(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestListTrips_MapsRecords(t *testing.T) {
	repo := &mockTripRepo{
		listTrips: func(ctx context.Context, limit, offset int) ([]db_models.Trip, int64, error) {
			assert.Equal(t, 8, limit)
			assert.Equal(t, 8, offset)
			return []db_models.Trip{
				{TripDetail: `{"name": "Kyoto Retreat"}`, UserID: "account-123"},
				{TripDetail: "not json", UserID: "account-456"},
			}, 10, nil
		},
	}
	svc := services.NewTripService(repo, nil, &mockImageService{}, &mockPaymentService{})

	list, err := svc.ListTrips(context.Background(), 2, 8)
	require.NoError(t, err)
	assert.EqualValues(t, 10, list.Total)
	require.Len(t, list.Trips, 2)
	require.NotNil(t, list.Trips[0].Detail)
	assert.Equal(t, "Kyoto Retreat", list.Trips[0].Detail.Name)
	assert.Nil(t, list.Trips[1].Detail, "unparseable payloads surface as nil detail")
}

func TestGetTrip_NotFound(t *testing.T) {
	repo := &mockTripRepo{
		getTripByID: func(ctx context.Context, tripID string) (*db_models.Trip, error) {
			return nil, utils.ErrTripNotFound
		},
	}
	svc := services.NewTripService(repo, nil, &mockImageService{}, &mockPaymentService{})

	_, err := svc.GetTrip(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
