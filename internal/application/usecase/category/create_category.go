package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/subtracker/backend/internal/application/adapter"
	domainerror "github.com/subtracker/backend/internal/domain/error"
	"github.com/subtracker/backend/internal/domain/valueobject"
)

// CreateCategoryInput represents the input for custom category creation.
type CreateCategoryInput struct {
	Name string
}

// CreateCategoryOutput represents the output of custom category creation.
type CreateCategoryOutput struct {
	Category valueobject.Category
}

// CreateCategoryUseCase handles custom category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute creates a custom category.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	if valueobject.IsDefault(name) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a default category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	exists, err := uc.categoryRepo.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	if err := uc.categoryRepo.Create(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: valueobject.Category{Name: name, Custom: true},
	}, nil
}
