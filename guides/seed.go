package guides

import (
	"time"

	"voyago/models"
)

// seedGuides is the starter content shown while the community collection is
// still empty.
func seedGuides() []models.Guide {
	now := time.Now()
	return []models.Guide{
		{
			GuideID:     "1",
			Title:       "Paris in 3 Days - A Complete Guide",
			Destination: "Paris, France",
			Author:      "Sarah Johnson",
			AuthorEmail: "sarah@example.com",
			Description: "A comprehensive guide to exploring the City of Light in just three days. Perfect for first-time visitors.",
			Duration:    "3 days",
			Budget:      "$$$",
			Rating:      4.9,
			Views:       1250,
			Likes:       89,
			Attractions: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame", "Seine River Cruise", "Montmartre"},
			Tips: []string{
				"Buy a Paris Pass for skip-the-line access",
				"Walk along the Seine at sunset",
				"Try local patisseries for authentic pastries",
			},
			Category:  "European",
			CreatedAt: now.AddDate(0, 0, -5),
		},
		{
			GuideID:     "2",
			Title:       "Tokyo Adventure: Culture & Technology",
			Destination: "Tokyo, Japan",
			Author:      "Mike Chen",
			AuthorEmail: "mike@example.com",
			Description: "Experience the perfect blend of traditional culture and modern innovation in Japan's capital.",
			Duration:    "5 days",
			Budget:      "$$$",
			Rating:      4.8,
			Views:       980,
			Likes:       72,
			Attractions: []string{"Shibuya Crossing", "Senso-ji Temple", "Tsukiji Outer Market", "TeamLab Borderless"},
			Tips: []string{
				"Get a JR Pass for unlimited train travel",
				"Try sushi at a local conveyor belt restaurant",
				"Visit temples early to avoid crowds",
			},
			Category:  "Asian",
			CreatedAt: now.AddDate(0, 0, -8),
		},
		{
			GuideID:     "3",
			Title:       "Bali on a Budget",
			Destination: "Bali, Indonesia",
			Author:      "Emma Wilson",
			AuthorEmail: "emma@example.com",
			Description: "Discover the beauty of Bali without breaking the bank. Affordable luxury and authentic experiences.",
			Duration:    "7 days",
			Budget:      "$",
			Rating:      4.7,
			Views:       1560,
			Likes:       124,
			Attractions: []string{"Tanah Lot", "Ubud Monkey Forest", "Tegallalang Rice Terrace", "Seminyak Beach"},
			Tips: []string{
				"Rent a scooter for easy transportation",
				"Eat at local warungs for authentic food",
				"Visit rice terraces early morning for best photos",
			},
			Category:  "Southeast Asian",
			CreatedAt: now.AddDate(0, 0, -12),
		},
		{
			GuideID:     "4",
			Title:       "New York City Highlights",
			Destination: "New York, USA",
			Author:      "David Kim",
			AuthorEmail: "david@example.com",
			Description: "The essential first-timer's tour of the five boroughs, from iconic skyline views to neighborhood food runs.",
			Duration:    "4 days",
			Budget:      "$$$$",
			Rating:      4.6,
			Views:       875,
			Likes:       61,
			Attractions: []string{"Statue of Liberty", "Central Park", "Times Square", "Brooklyn Bridge"},
			Tips: []string{
				"Use the subway instead of taxis during rush hour",
				"Book observation deck tickets online",
				"Grab a bagel from a corner deli for breakfast",
			},
			Category:  "North American",
			CreatedAt: now.AddDate(0, 0, -15),
		},
	}
}
