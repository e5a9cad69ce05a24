package models

import "time"

// Guide is a community travel guide. Rating, views and likes start at zero
// when a guide is created.
type Guide struct {
	GuideID     string    `json:"id" bson:"guideid"`
	Title       string    `json:"title" bson:"title"`
	Destination string    `json:"destination" bson:"destination"`
	Description string    `json:"description" bson:"description"`
	Duration    string    `json:"duration" bson:"duration"`
	Budget      string    `json:"budget" bson:"budget"`
	Attractions []string  `json:"attractions" bson:"attractions"`
	Tips        []string  `json:"tips" bson:"tips"`
	Author      string    `json:"author" bson:"author"`
	AuthorEmail string    `json:"authorEmail" bson:"authorEmail"`
	UserID      string    `json:"userId" bson:"userId"`
	Rating      float64   `json:"rating" bson:"rating"`
	Views       int64     `json:"views" bson:"views"`
	Likes       int64     `json:"likes" bson:"likes"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
