package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourvisto/internal/api/controllers"
	"tourvisto/internal/models/request_models"
	"tourvisto/internal/models/response_models"
	"tourvisto/internal/services"
	"tourvisto/pkg/utils"
)

type mockTripService struct {
	generateTrip func(ctx context.Context, req *request_models.CreateTripRequest) (*response_models.CreateTripResponse, error)
	getTrip      func(ctx context.Context, tripID string) (*response_models.TripResponse, error)
	listTrips    func(ctx context.Context, page, pageSize int) (*response_models.TripListResponse, error)
}

func (m *mockTripService) GenerateTrip(ctx context.Context, req *request_models.CreateTripRequest) (*response_models.CreateTripResponse, error) {
	return m.generateTrip(ctx, req)
}
func (m *mockTripService) GetTrip(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
	return m.getTrip(ctx, tripID)
}
func (m *mockTripService) ListTrips(ctx context.Context, page, pageSize int) (*response_models.TripListResponse, error) {
	return m.listTrips(ctx, page, pageSize)
}

var _ services.TripService = (*mockTripService)(nil)

type mockExportService struct {
	render func(trip *response_models.TripResponse) ([]byte, error)
}

func (m *mockExportService) RenderTripPDF(trip *response_models.TripResponse) ([]byte, error) {
	return m.render(trip)
}

var _ services.ExportService = (*mockExportService)(nil)

func newTripRouter(tripSvc services.TripService, exportSvc services.ExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := controllers.NewTripController(tripSvc, exportSvc)
	r.POST("/api/trips/create-trip", ctrl.CreateTrip)
	r.GET("/api/trips", ctrl.GetAllTrips)
	r.GET("/api/trips/:tripId", ctrl.GetTripById)
	r.GET("/api/trips/:tripId/download", ctrl.DownloadTripPDF)
	return r
}

func TestCreateTrip_Success(t *testing.T) {
	svc := &mockTripService{
		generateTrip: func(ctx context.Context, req *request_models.CreateTripRequest) (*response_models.CreateTripResponse, error) {
			assert.Equal(t, "Japan", req.Country)
			return &response_models.CreateTripResponse{ID: "trip-1"}, nil
		},
	}
	r := newTripRouter(svc, &mockExportService{})

	body, _ := json.Marshal(gin.H{
		"country": "Japan", "numberOfDays": 5, "travelStyle": "Cultural",
		"interests": "History", "budget": "Mid-range", "groupType": "Couple",
		"userId": "acct-1",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/create-trip", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "trip-1", data["id"])
}

func TestCreateTrip_InvalidInputMapsTo400(t *testing.T) {
	svc := &mockTripService{
		generateTrip: func(ctx context.Context, req *request_models.CreateTripRequest) (*response_models.CreateTripResponse, error) {
			return nil, utils.ErrInvalidInput
		},
	}
	r := newTripRouter(svc, &mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/create-trip", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "All fields are required", resp.Message)
}

func TestCreateTrip_AIOutputFailureMapsTo500(t *testing.T) {
	svc := &mockTripService{
		generateTrip: func(ctx context.Context, req *request_models.CreateTripRequest) (*response_models.CreateTripResponse, error) {
			return nil, utils.ErrUnrepairableJSON
		},
	}
	r := newTripRouter(svc, &mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/create-trip", bytes.NewReader([]byte(`{"country":"Japan"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate valid trip data. Please try again.", resp.Message)
}

func TestGetAllTrips_RejectsBadPaging(t *testing.T) {
	r := newTripRouter(&mockTripService{}, &mockExportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips?page=0", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips?pageSize=101", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTripById_NotFound(t *testing.T) {
	svc := &mockTripService{
		getTrip: func(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
			return nil, utils.ErrTripNotFound
		},
	}
	r := newTripRouter(svc, &mockExportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadTripPDF(t *testing.T) {
	svc := &mockTripService{
		getTrip: func(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
			return &response_models.TripResponse{ID: tripID}, nil
		},
	}
	export := &mockExportService{
		render: func(trip *response_models.TripResponse) ([]byte, error) {
			return []byte("%PDF-fake"), nil
		},
	}
	r := newTripRouter(svc, export)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips/trip-1/download", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "trip-trip-1.pdf")
	assert.Equal(t, "%PDF-fake", w.Body.String())
}
