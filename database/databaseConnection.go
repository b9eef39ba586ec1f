package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client is set by Connect at startup.
var Client *mongo.Client

// Connect dials MongoDB using the MONGO connection string. The server cannot
// run without a database, so any failure here is fatal.
func Connect() *mongo.Client {
	mongoURL := os.Getenv("MONGO")
	if mongoURL == "" {
		log.Fatal("MONGO connection string not set")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected to MongoDB")
	Client = client
	return client
}

func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database("marketplace").Collection(collectionName)
}
