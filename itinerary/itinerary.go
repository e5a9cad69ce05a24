package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voyago/db"
	"voyago/models"
	"voyago/planner"
	"voyago/session"
	"voyago/utils"
)

// POST /api/itineraries/preview
// Builds an itinerary from the selection in the request body, or from the
// caller's session when the body is empty. Nothing is stored.
func PreviewItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var sel models.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		sid := r.Header.Get("X-Session-ID")
		if sid == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "No selection in request or session")
			return
		}
		stored, found, err := session.LoadSelections(sid)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read session selections")
			return
		}
		if !found {
			utils.RespondWithError(w, http.StatusNotFound, "No selections for this session")
			return
		}
		sel = stored
	}

	it, err := planner.Build(sel, time.Now)
	if err != nil {
		if errors.Is(err, planner.ErrMissingFlight) || errors.Is(err, planner.ErrMissingHotel) {
			utils.RespondWithError(w, http.StatusBadRequest, "Select both a flight and a hotel first")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// POST /api/itineraries
// Persists an itinerary with the owner identity attached.
func SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var it models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if it.ItineraryID == "" || len(it.DailyPlans) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Itinerary is incomplete")
		return
	}

	it.UserID = userID
	it.UserEmail = utils.GetEmailFromRequest(r)
	if it.CreatedAt == "" {
		it.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, it); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"id": it.ItineraryID})
}

// GET /api/itineraries
// Lists the caller's saved itineraries, newest first.
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": ps.ByName("id")}).Decode(&it)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": ps.ByName("id")}).Decode(&it)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if it.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if _, err := db.ItineraryCollection.DeleteOne(ctx, bson.M{"itineraryid": it.ItineraryID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted"})
}
