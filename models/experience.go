package models

import "time"

// Experience is a shared trip report. Empty entries in the list fields are
// filtered out before persistence.
type Experience struct {
	ExperienceID string    `json:"id" bson:"experienceid"`
	Destination  string    `json:"destination" bson:"destination"`
	TripDate     string    `json:"tripDate" bson:"tripDate"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Highlights   []string  `json:"highlights" bson:"highlights"`
	Tips         []string  `json:"tips" bson:"tips"`
	Photos       []string  `json:"photos" bson:"photos"`
	Rating       int       `json:"rating" bson:"rating"` // 1-5
	UserID       string    `json:"userId" bson:"userId"`
	UserName     string    `json:"userName" bson:"userName"`
	UserEmail    string    `json:"userEmail" bson:"userEmail"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
