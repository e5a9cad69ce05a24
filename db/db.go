package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection        *mongo.Collection
	ItineraryCollection   *mongo.Collection
	GuidesCollection      *mongo.Collection
	ExperiencesCollection *mongo.Collection
	LikesCollection       *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("traveldb")
	UserCollection = database.Collection("users")
	ItineraryCollection = database.Collection("itineraries")
	GuidesCollection = database.Collection("guides")
	ExperiencesCollection = database.Collection("experiences")
	LikesCollection = database.Collection("likes")
}
