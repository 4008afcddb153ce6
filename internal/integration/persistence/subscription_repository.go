// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
	"github.com/subtracker/backend/internal/integration/persistence/model"
)

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create creates a new subscription in the database.
func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	subModel := model.SubscriptionFromEntity(sub)
	result := r.db.WithContext(ctx).Create(subModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a subscription by its ID.
func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subModel model.SubscriptionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, result.Error
	}
	return subModel.ToEntity(), nil
}

// FindAll retrieves every subscription, newest first.
func (r *subscriptionRepository) FindAll(ctx context.Context) ([]*entity.Subscription, error) {
	var subModels []model.SubscriptionModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&subModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subs := make([]*entity.Subscription, len(subModels))
	for i := range subModels {
		subs[i] = subModels[i].ToEntity()
	}
	return subs, nil
}

// Update updates an existing subscription in the database.
func (r *subscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	subModel := model.SubscriptionFromEntity(sub)
	result := r.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("id = ?", sub.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(subModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubscriptionNotFound
	}
	return nil
}

// Delete permanently removes a subscription from the database.
func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SubscriptionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubscriptionNotFound
	}
	return nil
}
