package search

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"voyago/models"
	"voyago/utils"
)

var (
	flightProvider FlightSearchProvider = NewMockFlightProvider()
	hotelProvider  HotelSearchProvider  = NewMockHotelProvider()
)

// POST /api/search/flights
func SearchFlights(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var q models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid search payload")
		return
	}

	flights, err := flightProvider.SearchFlights(r.Context(), q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Flight search failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"flights": flights})
}

// POST /api/search/hotels
func SearchHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var q models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid search payload")
		return
	}

	hotels, err := hotelProvider.SearchHotels(r.Context(), q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Hotel search failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"hotels": hotels})
}
