package guides

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voyago/db"
	"voyago/models"
	"voyago/utils"
)

// GET /api/guides?destination=
// Lists community guides, optionally filtered by destination substring.
// An empty collection falls back to the seeded starter guides.
func GetGuides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	guides, err := utils.FindAndDecode[models.Guide](ctx, db.GuidesCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching guides")
		return
	}
	if len(guides) == 0 {
		guides = seedGuides()
	}

	if destination := r.URL.Query().Get("destination"); destination != "" {
		filtered := []models.Guide{}
		for _, g := range guides {
			if utils.ContainsIgnoreCase(g.Destination, destination) {
				filtered = append(filtered, g)
			}
		}
		guides = filtered
	}

	utils.RespondWithJSON(w, http.StatusOK, guides)
}

// GET /api/guides/:id
// Fetching a guide counts as a view.
func GetGuide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	guideID := ps.ByName("id")

	var guide models.Guide
	err := db.GuidesCollection.FindOneAndUpdate(ctx,
		bson.M{"guideid": guideID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&guide)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Guide not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, guide)
}

// POST /api/guides
func CreateGuide(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var guide models.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if guide.Title == "" || guide.Destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and destination are required")
		return
	}

	guide.GuideID = utils.GetUUID()
	guide.UserID = userID
	guide.Author = utils.GetUsernameFromRequest(r)
	guide.AuthorEmail = utils.GetEmailFromRequest(r)
	guide.Attractions = utils.FilterEmpty(guide.Attractions)
	guide.Tips = utils.FilterEmpty(guide.Tips)
	// New guides start unrated and unseen.
	guide.Rating = 0
	guide.Views = 0
	guide.Likes = 0
	guide.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.GuidesCollection.InsertOne(ctx, guide); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating guide")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, guide)
}
