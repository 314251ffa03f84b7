package response_models

const (
	TrendIncrement = "increment"
	TrendDecrement = "decrement"
	TrendNoChange  = "no change"
)

// Trend is a month-over-month movement: direction plus a non-negative
// percentage.
type Trend struct {
	Trend      string  `json:"trend"`
	Percentage float64 `json:"percentage"`
}

type MonthlyCount struct {
	Total        int64 `json:"total"`
	CurrentMonth int64 `json:"currentMonth"`
	LastMonth    int64 `json:"lastMonth"`
	Trend        Trend `json:"trendDetail"`
}

type DashboardStats struct {
	TotalUsers   int64        `json:"totalUsers"`
	UsersJoined  MonthlyCount `json:"usersJoined"`
	TotalTrips   int64        `json:"totalTrips"`
	TripsCreated MonthlyCount `json:"tripsCreated"`
	ActiveUsers  MonthlyCount `json:"userRole"`
}

type GrowthPoint struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type TravelStyleCount struct {
	TravelStyle string `json:"travelStyle"`
	Count       int64  `json:"count"`
}
