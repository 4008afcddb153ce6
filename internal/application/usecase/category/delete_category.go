package category

import (
	"context"
	"fmt"

	"github.com/subtracker/backend/internal/application/adapter"
	domainerror "github.com/subtracker/backend/internal/domain/error"
	"github.com/subtracker/backend/internal/domain/valueobject"
)

// DeleteCategoryUseCase handles custom category deletion. Records referencing
// the deleted name are never touched or reclassified.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute deletes a custom category by name.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, name string) error {
	if valueobject.IsDefault(name) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryIsDefault,
			"default categories cannot be deleted",
			domainerror.ErrCategoryIsDefault,
		)
	}

	exists, err := uc.categoryRepo.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check category name existence: %w", err)
	}
	if !exists {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			fmt.Sprintf("category %q not found", name),
			domainerror.ErrCategoryNotFound,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
