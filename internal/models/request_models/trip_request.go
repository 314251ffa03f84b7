package request_models

// CreateTripRequest is the structured trip request submitted by the client.
// NumberOfDays is validated to 1-10 by the UI; the pipeline only requires it
// to be present and positive.
type CreateTripRequest struct {
	Country      string `json:"country"`
	NumberOfDays int    `json:"numberOfDays"`
	TravelStyle  string `json:"travelStyle"`
	Interests    string `json:"interests"`
	Budget       string `json:"budget"`
	GroupType    string `json:"groupType"`
	UserID       string `json:"userId"`
}

type SyncUserRequest struct {
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
}
