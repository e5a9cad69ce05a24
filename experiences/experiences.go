package experiences

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

// sanitize prepares a submitted experience for persistence: blank entries in
// the list fields are dropped and the rating is clamped to 1-5.
func sanitize(exp models.Experience) models.Experience {
	exp.Highlights = utils.FilterEmpty(exp.Highlights)
	exp.Tips = utils.FilterEmpty(exp.Tips)
	exp.Photos = utils.FilterEmpty(exp.Photos)
	if exp.Rating < 1 {
		exp.Rating = 1
	}
	if exp.Rating > 5 {
		exp.Rating = 5
	}
	return exp
}

// POST /api/experiences
func CreateExperience(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var exp models.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if exp.Destination == "" || exp.Title == "" || exp.Description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Destination, title and description are required")
		return
	}

	exp = sanitize(exp)
	exp.ExperienceID = utils.GetUUID()
	exp.UserID = userID
	exp.UserName = utils.GetUsernameFromRequest(r)
	if exp.UserName == "" {
		exp.UserName = "Anonymous"
	}
	exp.UserEmail = utils.GetEmailFromRequest(r)
	exp.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ExperiencesCollection.InsertOne(ctx, exp); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error sharing experience")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, exp)
}

// GET /api/experiences?destination=
func GetExperiences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if destination := r.URL.Query().Get("destination"); destination != "" {
		filter["destination"] = bson.M{"$regex": destination, "$options": "i"}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	experiences, err := utils.FindAndDecode[models.Experience](ctx, db.ExperiencesCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching experiences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, experiences)
}

// GET /api/experiences/:id
func GetExperience(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var exp models.Experience
	err := db.ExperiencesCollection.FindOne(ctx, bson.M{"experienceid": ps.ByName("id")}).Decode(&exp)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Experience not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, exp)
}
