package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"
	repo "github.com/rahul12st/Manipal-Marketplace-backend/internal/repo"
	response "github.com/rahul12st/Manipal-Marketplace-backend/internal/utility/http"

	"github.com/go-chi/chi"
)

// imageFields are the two upload slots a product can carry.
var imageFields = []string{"pimage", "pimage2"}

type MyProductsRequest struct {
	UserID string `json:"user_id"`
}

func Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := productRepo.Search(r.Context(), query)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Error searching products", err)
		return
	}

	response.RespondSuccess(w, products)
}

func AddProduct(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	product := models.Product{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Owner_id:    r.FormValue("owner_id"),
		Created_at:  time.Now(),
	}
	if priceValue := r.FormValue("price"); priceValue != "" {
		product.Price, err = strconv.Atoi(priceValue)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "Price must be a number", err)
			return
		}
	}

	// Files are written before validation runs so a rejected product must
	// clean up what it already stored.
	saved := []string{}
	cleanup := func() {
		for _, name := range saved {
			uploadStore.Remove(name)
		}
	}

	for _, field := range imageFields {
		files := r.MultipartForm.File[field]
		if len(files) == 0 {
			continue
		}
		filename, err := uploadStore.Save(files[0], field)
		if err != nil {
			cleanup()
			response.RespondError(w, http.StatusInternalServerError, "Failed to save image", err)
			return
		}
		saved = append(saved, filename)
		if field == "pimage" {
			product.Pimage = filename
		} else {
			product.Pimage2 = filename
		}
	}

	if validationErr := validate.Struct(product); validationErr != nil {
		cleanup()
		response.RespondError(w, http.StatusBadRequest, "Fields not valid", validationErr)
		return
	}

	created, err := productRepo.Create(r.Context(), product)
	if err != nil {
		cleanup()
		response.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	response.RespondCreated(w, created)
}

func GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Error fetching data", err)
		return
	}

	response.RespondSuccess(w, products)
}

func GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "pId")

	product, err := productRepo.GetByID(r.Context(), productID)
	if err != nil {
		if err == repo.ErrProductNotFound {
			response.RespondError(w, http.StatusNotFound, "Product not found", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Error retrieving product", err)
		return
	}

	response.RespondSuccess(w, product)
}

func MyProducts(w http.ResponseWriter, r *http.Request) {
	var req MyProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.UserID == "" {
		response.RespondError(w, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	products, err := productRepo.GetByOwner(r.Context(), req.UserID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Error fetching data", err)
		return
	}

	response.RespondSuccess(w, products)
}
