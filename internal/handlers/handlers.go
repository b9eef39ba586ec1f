package handlers

import (
	repo "github.com/rahul12st/Manipal-Marketplace-backend/internal/repo"
	uploads "github.com/rahul12st/Manipal-Marketplace-backend/internal/uploads"

	"github.com/go-playground/validator"
)

var validate = validator.New()

var (
	productRepo repo.ProductRepository
	userRepo    repo.UserRepository
	uploadStore uploads.Store
	uploadDir   = "uploads"
)

func SetProductRepo(r repo.ProductRepository) { productRepo = r }

func SetUserRepo(r repo.UserRepository) { userRepo = r }

func SetUploadStore(s uploads.Store) { uploadStore = s }

// SetUploadDir points the static /uploads route at the directory DiskStore writes to.
func SetUploadDir(dir string) { uploadDir = dir }
