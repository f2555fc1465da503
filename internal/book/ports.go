package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
// A false result with a nil error means the operation did not apply.
type Repository interface {
	ListAll(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, b *Book) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, b *Book) (bool, error)
}
