package response_models

// CreateTripResponse is the action endpoint's success payload: the persisted
// document id only.
type CreateTripResponse struct {
	ID string `json:"id"`
}

// TripResponse is a listed/fetched trip with its parsed detail. Detail is nil
// when the stored payload cannot be parsed; PaymentLink is optional until the
// post-creation update lands.
type TripResponse struct {
	ID          string      `json:"id"`
	Detail      *TripDetail `json:"tripDetail"`
	ImageUrls   []string    `json:"imageUrls"`
	UserID      string      `json:"userId"`
	PaymentLink *string     `json:"payment_link"`
	CreatedAt   int64       `json:"createdAt"`
}

type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int64          `json:"total"`
}
