// Package destinations serves the curated discover catalog.
package destinations

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"voyago/models"
	"voyago/utils"
)

var popularDestinations = []models.Destination{
	{ID: "1", Name: "Paris, France", Description: "The City of Light - Romantic architecture, world-class museums, and exquisite cuisine", Category: "European", Rating: 4.8, Attractions: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame", "Seine River"}, BestTime: "April - October", AvgCost: "$$$"},
	{ID: "2", Name: "Tokyo, Japan", Description: "Where tradition meets innovation - Ancient temples alongside futuristic technology", Category: "Asian", Rating: 4.9, Attractions: []string{"Shibuya Crossing", "Tokyo Skytree", "Senso-ji Temple", "Tsukiji Market"}, BestTime: "March - May, September - November", AvgCost: "$$$"},
	{ID: "3", Name: "New York, USA", Description: "The city that never sleeps - Iconic landmarks and endless entertainment", Category: "North American", Rating: 4.7, Attractions: []string{"Statue of Liberty", "Central Park", "Times Square", "Brooklyn Bridge"}, BestTime: "April - June, September - November", AvgCost: "$$$$"},
	{ID: "4", Name: "Bali, Indonesia", Description: "Tropical paradise - Beautiful beaches, ancient temples, and lush rice terraces", Category: "Southeast Asian", Rating: 4.8, Attractions: []string{"Tanah Lot Temple", "Ubud Monkey Forest", "Tegallalang Rice Terrace", "Seminyak Beach"}, BestTime: "April - October", AvgCost: "$"},
	{ID: "5", Name: "Santorini, Greece", Description: "Stunning sunsets and white-washed buildings overlooking the Aegean Sea", Category: "European", Rating: 4.9, Attractions: []string{"Oia Village", "Red Beach", "Ancient Thera", "Wine Tasting Tours"}, BestTime: "May - September", AvgCost: "$$$"},
	{ID: "6", Name: "Iceland", Description: "Land of fire and ice - Geysers, glaciers, and the Northern Lights", Category: "European", Rating: 4.8, Attractions: []string{"Blue Lagoon", "Golden Circle", "Northern Lights", "Jokulsarlon Glacier"}, BestTime: "June - August, September - March (Northern Lights)", AvgCost: "$$$"},
	{ID: "7", Name: "Dubai, UAE", Description: "Luxury and innovation in the desert - Skyscrapers, shopping, and adventure", Category: "Middle Eastern", Rating: 4.6, Attractions: []string{"Burj Khalifa", "Dubai Mall", "Palm Jumeirah", "Desert Safari"}, BestTime: "November - March", AvgCost: "$$$$"},
}

// GET /api/destinations?q=
func GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")

	results := Filter(popularDestinations, query)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"destinations": results})
}

// Filter returns destinations whose name, description or category contains
// the query, case-insensitively. An empty query returns everything.
func Filter(catalog []models.Destination, query string) []models.Destination {
	if query == "" {
		return catalog
	}
	results := []models.Destination{}
	for _, d := range catalog {
		if utils.ContainsIgnoreCase(d.Name, query) ||
			utils.ContainsIgnoreCase(d.Description, query) ||
			utils.ContainsIgnoreCase(d.Category, query) {
			results = append(results, d)
		}
	}
	return results
}
