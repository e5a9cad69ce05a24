package models

// Itinerary is the generated day-by-day travel plan artifact.
type Itinerary struct {
	ItineraryID string       `json:"id" bson:"itineraryid"`
	Destination string       `json:"destination" bson:"destination"`
	StartDate   string       `json:"startDate" bson:"startDate"`
	EndDate     string       `json:"endDate" bson:"endDate"`
	Flight      FlightOption `json:"flight" bson:"flight"`
	Hotel       HotelOption  `json:"hotel" bson:"hotel"`
	DailyPlans  []DayPlan    `json:"dailyPlans" bson:"dailyPlans"`
	TotalCost   float64      `json:"totalCost" bson:"totalCost"`
	CreatedAt   string       `json:"createdAt" bson:"createdAt"`
	UserID      string       `json:"userId,omitempty" bson:"userId,omitempty"`
	UserEmail   string       `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
}

// DayPlan is one day's ordered list of activities within an Itinerary.
type DayPlan struct {
	Day        int        `json:"day" bson:"day"`
	Title      string     `json:"title" bson:"title"`
	Activities []Activity `json:"activities" bson:"activities"`
}

type Activity struct {
	Time        string `json:"time" bson:"time"`
	Activity    string `json:"activity" bson:"activity"`
	Description string `json:"description" bson:"description"`
	Type        string `json:"type" bson:"type"`
}

// Activity types form a closed set; anything else falls back to the
// default icon rather than erroring.
const (
	ActivityAccommodation = "accommodation"
	ActivityDining        = "dining"
	ActivitySightseeing   = "sightseeing"
	ActivityGeneric       = "activity"
	ActivityTransport     = "transport"
)

var activityIcons = map[string]string{
	ActivityAccommodation: "🏨",
	ActivityDining:        "🍽️",
	ActivitySightseeing:   "🏛️",
	ActivityGeneric:       "🎭",
	ActivityTransport:     "🚗",
}

const defaultActivityIcon = "📍"

// ActivityIcon maps an activity type to its display icon. Unknown types get
// the default pin icon.
func ActivityIcon(activityType string) string {
	if icon, ok := activityIcons[activityType]; ok {
		return icon
	}
	return defaultActivityIcon
}
