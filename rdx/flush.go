package rdx

import (
	"log"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"voyago/db"
	"voyago/globals"
)

// FlushGuideLikes periodically mirrors optimistic like counters from Redis
// back into the guide documents. Between flushes the Redis counter is the
// authoritative count; last write wins at the store level.
func FlushGuideLikes() {
	ticker := time.NewTicker(30 * time.Second)
	for range ticker.C {
		keys, err := Conn.Keys(globals.Ctx, "like:count:guide:*").Result()
		if err != nil {
			log.Println("Redis scan error:", err)
			continue
		}

		for _, key := range keys {
			parts := strings.Split(key, ":")
			if len(parts) != 4 {
				log.Println("Invalid Redis like key format:", key)
				continue
			}
			guideID := parts[3]

			countStr, err := Conn.Get(globals.Ctx, key).Result()
			if err != nil {
				log.Println("Redis Get error for key", key, ":", err)
				continue
			}

			count, err := strconv.ParseInt(countStr, 10, 64)
			if err != nil {
				log.Println("Failed to parse like count:", countStr)
				continue
			}

			_, err = db.GuidesCollection.UpdateOne(globals.Ctx,
				bson.M{"guideid": guideID},
				bson.M{"$set": bson.M{"likes": count}},
			)
			if err != nil {
				log.Println("MongoDB like flush error for guide", guideID, ":", err)
			}
		}
	}
}
