package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/subtracker/backend/internal/application/adapter"
	domainerror "github.com/subtracker/backend/internal/domain/error"
	"github.com/subtracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create stores a new custom category name.
func (r *categoryRepository) Create(ctx context.Context, name string) error {
	categoryModel := model.CategoryModel{Name: name, CreatedAt: time.Now().UTC()}
	result := r.db.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves all custom category names, oldest first.
func (r *categoryRepository) FindAll(ctx context.Context) ([]string, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	names := make([]string, len(categoryModels))
	for i := range categoryModels {
		names[i] = categoryModels[i].Name
	}
	return names, nil
}

// Exists reports whether a custom category with this name is stored.
func (r *categoryRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a custom category by name.
func (r *categoryRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}
