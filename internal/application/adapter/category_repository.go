package adapter

import "context"

// CategoryRepository defines the interface for custom category persistence.
// Default categories are compiled in and never stored.
type CategoryRepository interface {
	// Create persists a new custom category name.
	Create(ctx context.Context, name string) error

	// FindAll retrieves all custom category names.
	FindAll(ctx context.Context) ([]string, error)

	// Exists reports whether a custom category with this name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// Delete removes a custom category by name. Records referencing the name
	// are left untouched.
	Delete(ctx context.Context, name string) error
}
