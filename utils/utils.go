package utils

import (
	"context"
	rndm "math/rand"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voyago/globals"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Request Helpers ---

// GetUserIDFromRequest reads the user ID the auth middleware stored on the
// request context; empty when the request is unauthenticated.
func GetUserIDFromRequest(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

func GetEmailFromRequest(r *http.Request) string {
	email, _ := r.Context().Value(globals.EmailKey).(string)
	return email
}

func GetUsernameFromRequest(r *http.Request) string {
	username, _ := r.Context().Value(globals.UsernameKey).(string)
	return username
}

// --- Mongo Helpers ---

// FindAndDecode runs a Find with the given filter and decodes every document
// into a slice, never returning a nil slice.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return DecodeAll[T](ctx, cursor)
}

// DecodeAll drains a cursor into a slice, never returning a nil slice. A
// document that fails to decode fails the whole read; callers never see a
// silently truncated result.
func DecodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	results := []T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, cursor.Err()
}

// --- String Helpers ---

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

// FilterEmpty drops entries that are empty or whitespace-only, preserving
// the order of the rest.
func FilterEmpty(items []string) []string {
	filtered := []string{}
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
