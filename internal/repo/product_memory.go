package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID()
	product.P_id = product.ID.Hex()
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := append([]models.Product{}, r.products...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Created_at.After(all[j].Created_at)
	})
	return all, nil
}

func (r *InMemoryProductRepository) GetByID(_ context.Context, pid string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.P_id == pid {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByOwner(_ context.Context, ownerID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := []models.Product{}
	for _, p := range r.products {
		if p.Owner_id == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *InMemoryProductRepository) Search(_ context.Context, query string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	matched := []models.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Clear removes all products. Used by tests.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = r.products[:0]
}
