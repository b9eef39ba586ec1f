package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	database "github.com/rahul12st/Manipal-Marketplace-backend/database"
	handlers "github.com/rahul12st/Manipal-Marketplace-backend/internal/handlers"
	repo "github.com/rahul12st/Manipal-Marketplace-backend/internal/repo"
	uploads "github.com/rahul12st/Manipal-Marketplace-backend/internal/uploads"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "https://manipalmarket.vercel.app"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	client := database.Connect()
	handlers.SetProductRepo(repo.NewMongoProductRepository(database.OpenCollection(client, "products")))
	handlers.SetUserRepo(repo.NewMongoUserRepository(database.OpenCollection(client, "users")))

	if bucket := os.Getenv("UPLOADS_S3_BUCKET"); bucket != "" {
		handlers.SetUploadStore(uploads.NewS3Store(bucket))
	} else {
		store, err := uploads.NewDiskStore(uploadDir)
		if err != nil {
			log.Fatal(err)
		}
		handlers.SetUploadStore(store)
		handlers.SetUploadDir(uploadDir)
	}

	r := handlers.NewRouter(frontendOrigin)

	// Start the server
	fmt.Printf("Backend server listening on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
