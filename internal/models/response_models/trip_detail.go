package response_models

// TripDetail is the canonical itinerary produced by the AI generation step,
// stored serialized inside a Trip document. Field names match the JSON shape
// the model is instructed to return.
type TripDetail struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	EstimatedPrice  string    `json:"estimatedPrice"`
	Duration        int       `json:"duration"`
	Budget          string    `json:"budget"`
	TravelStyle     string    `json:"travelStyle"`
	Country         string    `json:"country"`
	Interests       string    `json:"interests"`
	GroupType       string    `json:"groupType"`
	BestTimeToVisit []string  `json:"bestTimeToVisit"`
	WeatherInfo     []string  `json:"weatherInfo"`
	Location        Location  `json:"location"`
	Itinerary       []DayPlan `json:"itinerary"`
}

type Location struct {
	City          string    `json:"city"`
	Coordinates   []float64 `json:"coordinates"`
	OpenStreetMap string    `json:"openStreetMap"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Location   string     `json:"location"`
	Activities []Activity `json:"activities"`
}

// Activity's time label is free text, conventionally Morning/Afternoon/
// Evening; the description may lead with an emoji.
type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}
