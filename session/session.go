// Package session is the transient scratch space that carries the search
// payload and the flight/hotel selection between the search, results and
// itinerary steps. Payloads are typed, keyed by an explicit session ID and
// expire with the session; nothing here is durable.
package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"voyago/models"
	"voyago/rdx"
	"voyago/utils"
)

const (
	keySearchData = "searchData"
	keySelections = "selections"

	sessionTTL = 30 * time.Minute
)

// Indirection over the redis helpers so the codec is testable without a
// running server.
var (
	kvSet = rdx.Set
	kvGet = rdx.Get
	kvDel = rdx.Del
)

func sessionKey(sid, field string) string {
	return "session:" + sid + ":" + field
}

func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

// PUT /api/session/search
func PutSearchData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := sessionID(r)
	if sid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Session-ID header")
		return
	}

	var q models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid search payload")
		return
	}

	if err := store(sessionKey(sid, keySearchData), q); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store search data")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"stored": true})
}

// GET /api/session/search
func GetSearchData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := sessionID(r)
	if sid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Session-ID header")
		return
	}

	var q models.SearchQuery
	if found, err := load(sessionKey(sid, keySearchData), &q); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read search data")
		return
	} else if !found {
		// Absence means the user navigated here directly; the client
		// redirects to the search step.
		utils.RespondWithError(w, http.StatusNotFound, "No search data for this session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, q)
}

// PUT /api/session/selections
func PutSelections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := sessionID(r)
	if sid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Session-ID header")
		return
	}

	var sel models.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid selections payload")
		return
	}
	if sel.Flight == nil || sel.Hotel == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Both a flight and a hotel must be selected")
		return
	}

	if err := store(sessionKey(sid, keySelections), sel); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store selections")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"stored": true})
}

// GET /api/session/selections
func GetSelections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := sessionID(r)
	if sid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Session-ID header")
		return
	}

	sel, found, err := LoadSelections(sid)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read selections")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "No selections for this session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sel)
}

// DELETE /api/session
// Drops everything stored for the session, the equivalent of ending it.
func ClearSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := sessionID(r)
	if sid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Session-ID header")
		return
	}

	for _, field := range []string{keySearchData, keySelections} {
		if err := kvDel(sessionKey(sid, field)); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear session")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"cleared": true})
}

// LoadSelections fetches the stored selection for a session, reporting
// absence separately from failure.
func LoadSelections(sid string) (models.Selection, bool, error) {
	var sel models.Selection
	found, err := load(sessionKey(sid, keySelections), &sel)
	return sel, found, err
}

func store(key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return kvSet(key, string(data), sessionTTL)
}

func load(key string, dest any) (bool, error) {
	data, err := kvGet(key)
	if rdx.IsNil(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}
