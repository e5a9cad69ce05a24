package guides

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"voyago/db"
	"voyago/globals"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"
)

func redisLikeKey(guideID string) string {
	return "like:count:guide:" + guideID
}

// LikeState tracks an optimistic like mutation: the counter is bumped before
// the store write, then either committed or compensated.
type LikeState int

const (
	LikeIdle LikeState = iota
	LikePending
	LikeCommitted
	LikeRolledBack
)

// likeToggle runs one optimistic toggle. apply moves the visible counter
// immediately, commit makes the change durable, compensate undoes apply when
// commit fails.
type likeToggle struct {
	state      LikeState
	apply      func() (int64, error)
	commit     func() error
	compensate func()
}

func (t *likeToggle) run() (int64, error) {
	count, err := t.apply()
	if err != nil {
		return 0, err
	}
	t.state = LikePending

	if err := t.commit(); err != nil {
		t.compensate()
		t.state = LikeRolledBack
		return 0, err
	}
	t.state = LikeCommitted
	return count, nil
}

// ToggleLike handles POST /api/guides/:id/like
func ToggleLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	guideID := ps.ByName("id")
	filter := bson.M{"user_id": userID, "entity_type": "guide", "entity_id": guideID}
	redisKey := redisLikeKey(guideID)

	var existing models.Like
	liked := db.LikesCollection.FindOne(ctx, filter).Decode(&existing) != nil

	delta := int64(1)
	if !liked {
		delta = -1
	}

	toggle := &likeToggle{
		apply: func() (int64, error) {
			return rdx.Conn.IncrBy(globals.Ctx, redisKey, delta).Result()
		},
		commit: func() error {
			if liked {
				like := models.Like{UserID: userID, EntityType: "guide", EntityID: guideID, CreatedAt: time.Now()}
				_, err := db.LikesCollection.InsertOne(ctx, like)
				return err
			}
			_, err := db.LikesCollection.DeleteOne(ctx, filter)
			return err
		},
		compensate: func() {
			rdx.Conn.IncrBy(globals.Ctx, redisKey, -delta)
		},
	}

	count, err := toggle.run()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update like")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"liked": liked, "count": count})
}
