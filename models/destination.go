package models

// Destination is a curated entry in the discover catalog.
type Destination struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Category    string   `json:"category" bson:"category"`
	Rating      float64  `json:"rating" bson:"rating"`
	Attractions []string `json:"attractions" bson:"attractions"`
	BestTime    string   `json:"bestTime" bson:"bestTime"`
	AvgCost     string   `json:"avgCost" bson:"avgCost"`
}
