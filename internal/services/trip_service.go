package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tourvisto/internal/models/db_models"
	"tourvisto/internal/models/request_models"
	"tourvisto/internal/models/response_models"
	"tourvisto/internal/repositories"
	"tourvisto/pkg/utils"
)

type TripService interface {
	GenerateTrip(ctx context.Context, req *request_models.CreateTripRequest) (*response_models.CreateTripResponse, error)
	GetTrip(ctx context.Context, tripID string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, page, pageSize int) (*response_models.TripListResponse, error)
}

type tripService struct {
	tripRepo       repositories.TripRepository
	aiClient       utils.TextClientInterface
	imageService   ImageService
	paymentService PaymentService
}

// NewTripService wires the generation pipeline. aiClient may be nil when the
// provider is not configured; generation then fails per request instead of
// preventing startup.
func NewTripService(
	tripRepo repositories.TripRepository,
	aiClient utils.TextClientInterface,
	imageService ImageService,
	paymentService PaymentService,
) TripService {
	return &tripService{
		tripRepo:       tripRepo,
		aiClient:       aiClient,
		imageService:   imageService,
		paymentService: paymentService,
	}
}

// GenerateTrip runs the full creation pipeline: validate, generate with the
// AI provider, extract and repair the itinerary JSON, fetch images (soft),
// persist, then attach a payment link. Steps run strictly in order; a failure
// before persistence leaves no record behind, and a payment failure after
// persistence leaves the trip stored without a link.
func (s *tripService) GenerateTrip(ctx context.Context, req *request_models.CreateTripRequest) (*response_models.CreateTripResponse, error) {
	if req.Country == "" || req.NumberOfDays <= 0 || req.TravelStyle == "" ||
		req.Interests == "" || req.Budget == "" || req.GroupType == "" || req.UserID == "" {
		return nil, utils.ErrInvalidInput
	}

	if s.aiClient == nil {
		return nil, utils.ErrAINotConfigured
	}

	log.Printf("Starting trip generation for: country=%s days=%d style=%s", req.Country, req.NumberOfDays, req.TravelStyle)

	responseText, err := s.aiClient.GenerateItinerary(ctx, buildItineraryPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAICallFailed, err)
	}

	trip, err := utils.ExtractMarkdownJSON(responseText)
	if err != nil {
		return nil, err
	}
	if _, ok := trip.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: top-level value is not an object", utils.ErrInvalidAIOutput)
	}

	detailJSON, err := json.Marshal(trip)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}

	// Images are best effort: a lookup failure is logged and the trip is
	// created without them.
	imageQuery := strings.Join([]string{req.Country, req.Interests, req.TravelStyle}, " ")
	imageUrls, err := s.imageService.SearchImages(ctx, imageQuery, 3)
	if err != nil {
		log.Printf("Failed to fetch images from Unsplash: %v", err)
		imageUrls = []string{}
	}

	record := &db_models.Trip{
		TripDetail: string(detailJSON),
		ImageUrls:  imageUrls,
		UserID:     req.UserID,
	}
	tripID, err := s.tripRepo.CreateTrip(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistenceFailed, err)
	}

	// Re-read the persisted payload rather than the in-memory value so the
	// price reflects exactly what was stored.
	parsed := utils.ParseTripData(record.TripDetail)
	price := 100
	name := "Travel Itinerary"
	description := ""
	if parsed != nil {
		price = utils.ExtractPrice(parsed.EstimatedPrice)
		if parsed.Name != "" {
			name = parsed.Name
		}
		description = parsed.Description
	}
	if description == "" {
		description = name
	}

	paymentLink, err := s.paymentService.CreatePaymentLink(name, description, price, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentLinkFailed, err)
	}

	if err := s.tripRepo.UpdatePaymentLink(ctx, tripID, paymentLink); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistenceFailed, err)
	}

	log.Printf("Trip document created successfully: %s", tripID)
	return &response_models.CreateTripResponse{ID: tripID}, nil
}

func (s *tripService) GetTrip(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	resp := toTripResponse(trip)
	return &resp, nil
}

func (s *tripService) ListTrips(ctx context.Context, page, pageSize int) (*response_models.TripListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, total, err := s.tripRepo.ListTrips(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, toTripResponse(&trips[i]))
	}
	return &response_models.TripListResponse{Trips: out, Total: total}, nil
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Detail:      utils.ParseTripData(trip.TripDetail),
		ImageUrls:   trip.ImageUrls,
		UserID:      trip.UserID,
		PaymentLink: trip.PaymentLink,
		CreatedAt:   trip.CreatedAt,
	}
}

func buildItineraryPrompt(req *request_models.CreateTripRequest) string {
	return fmt.Sprintf(`Generate a %d-day travel itinerary for %s based on the following user information:
        Budget: '%s'
        Interests: '%s'
        TravelStyle: '%s'
        GroupType: '%s'
        Return the itinerary and lowest estimated price in a clean, non-markdown JSON format with the following structure:
        {
        "name": "A descriptive title for the trip",
        "description": "A brief description of the trip and its highlights not exceeding 100 words",
        "estimatedPrice": "Lowest average price for the trip in USD, e.g.$price",
        "duration": %d,
        "budget": "%s",
        "travelStyle": "%s",
        "country": "%s",
        "interests": "%s",
        "groupType": "%s",
        "bestTimeToVisit": [
          '🌸 Season (from month to month): reason to visit',
          '☀️ Season (from month to month): reason to visit',
          '🍁 Season (from month to month): reason to visit',
          '❄️ Season (from month to month): reason to visit'
        ],
        "weatherInfo": [
          '☀️ Season: temperature range in Celsius (temperature range in Fahrenheit)',
          '🌦️ Season: temperature range in Celsius (temperature range in Fahrenheit)',
          '🌧️ Season: temperature range in Celsius (temperature range in Fahrenheit)',
          '❄️ Season: temperature range in Celsius (temperature range in Fahrenheit)'
        ],
        "location": {
          "city": "name of the city or region",
          "coordinates": [latitude, longitude],
          "openStreetMap": "link to open street map"
        },
        "itinerary": [
        {
          "day": 1,
          "location": "City/Region Name",
          "activities": [
            {"time": "Morning", "description": "🏰 Visit the local historic castle and enjoy a scenic walk"},
            {"time": "Afternoon", "description": "🖼️ Explore a famous art museum with a guided tour"},
            {"time": "Evening", "description": "🍷 Dine at a rooftop restaurant with local wine"}
          ]
        },
        ...
        ]
    }`,
		req.NumberOfDays, req.Country,
		req.Budget, req.Interests, req.TravelStyle, req.GroupType,
		req.NumberOfDays, req.Budget, req.TravelStyle, req.Country, req.Interests, req.GroupType)
}
