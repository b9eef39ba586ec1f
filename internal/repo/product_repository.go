package repo

import (
	"context"
	"errors"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, pid string) (models.Product, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}
