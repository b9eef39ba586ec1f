package handlers

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the full middleware chain and route table. The frontend
// origin is the single origin allowed by CORS.
func NewRouter(frontendOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello..."))
	})

	// Product routes
	r.Get("/search", Search)
	r.Post("/add-product", AddProduct)
	r.Get("/get-products", GetProducts)
	r.Get("/get-product/{pId}", GetProductByID)
	r.Post("/my-products", MyProducts)

	// User routes
	r.Post("/signup", SignUp)
	r.Post("/login", Login)
	r.Post("/liked-products", LikedProducts)
	r.Get("/my-profile/{userId}", MyProfileByID)
	r.Get("/get-user/{uId}", GetUserByID)
	r.Post("/verify-token", VerifyToken)

	// Uploaded images
	r.Get("/uploads/{image}", ServeUpload)

	return r
}
