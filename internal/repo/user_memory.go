package repo

import (
	"context"
	"sync"
	"time"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: []models.User{}}
}

func (r *InMemoryUserRepository) Create(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()
	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.User_id == userID {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CountByEmail(_ context.Context, email string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryUserRepository) SetLikedProducts(_ context.Context, userID string, liked []string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.User_id == userID {
			r.users[i].LikedProducts = liked
			r.users[i].Updated_at = time.Now()
			return r.users[i], nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) UpdateTokens(_ context.Context, userID string, token string, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.User_id == userID {
			r.users[i].Token = &token
			r.users[i].Refresh_token = &refreshToken
			r.users[i].Updated_at = time.Now()
			return nil
		}
	}
	return ErrUserNotFound
}

// Clear removes all users. Used by tests.
func (r *InMemoryUserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = r.users[:0]
}
