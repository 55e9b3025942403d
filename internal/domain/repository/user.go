package repository

import (
	"context"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// UserRepository describes persistence operations for marketplace accounts.
type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}
