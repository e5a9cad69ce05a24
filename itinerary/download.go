package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"voyago/db"
	"voyago/export"
	"voyago/models"
	"voyago/utils"
)

// POST /api/itineraries/export
// Renders the itinerary in the request body to a PDF download. Nothing is
// persisted; a render failure produces no file at all.
func ExportItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var it models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid itinerary payload")
		return
	}
	if len(it.DailyPlans) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Itinerary has no daily plans")
		return
	}

	sendPDF(w, it)
}

// GET /api/itineraries/:id/pdf
func DownloadItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": ps.ByName("id")}).Decode(&it)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	sendPDF(w, it)
}

func sendPDF(w http.ResponseWriter, it models.Itinerary) {
	pdfBytes, err := export.Render(it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename(it.Destination))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
