package repo

import (
	"context"
	"errors"

	models "github.com/rahul12st/Manipal-Marketplace-backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByID(ctx context.Context, userID string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	SetLikedProducts(ctx context.Context, userID string, liked []string) (models.User, error)
	UpdateTokens(ctx context.Context, userID string, token string, refreshToken string) error
}
