// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"sort"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/domain/valueobject"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []valueobject.Category
}

// ListCategoriesUseCase returns the full selectable category set: the fixed
// defaults, the stored custom names, and any category still referenced by an
// existing record even after its custom entry was deleted.
type ListCategoriesUseCase struct {
	categoryRepo     adapter.CategoryRepository
	subscriptionRepo adapter.SubscriptionRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(
	categoryRepo adapter.CategoryRepository,
	subscriptionRepo adapter.SubscriptionRepository,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo:     categoryRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute lists all categories. Defaults come first in their fixed order,
// the rest follow sorted by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	custom, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom categories: %w", err)
	}

	subs, err := uc.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	seen := make(map[string]bool, len(valueobject.DefaultCategories))
	categories := make([]valueobject.Category, 0, len(valueobject.DefaultCategories)+len(custom))
	for _, name := range valueobject.DefaultCategories {
		seen[name] = true
		categories = append(categories, valueobject.Category{Name: name})
	}

	var extras []valueobject.Category
	for _, name := range custom {
		if !seen[name] {
			seen[name] = true
			extras = append(extras, valueobject.Category{Name: name, Custom: true})
		}
	}
	// Orphaned references: records whose custom category was deleted keep
	// their string, and it must stay selectable as a filter.
	for _, sub := range subs {
		if sub.Category != "" && !seen[sub.Category] {
			seen[sub.Category] = true
			extras = append(extras, valueobject.Category{Name: sub.Category, Custom: true})
		}
	}

	sort.Slice(extras, func(i, j int) bool { return extras[i].Name < extras[j].Name })
	return &ListCategoriesOutput{Categories: append(categories, extras...)}, nil
}
