package dto

import "github.com/subtracker/backend/internal/domain/valueobject"

// CreateCategoryRequest represents the request body for custom category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts category value objects to the list DTO.
func ToCategoryListResponse(categories []valueobject.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryResponse{
			Name:   category.Name,
			Custom: category.Custom,
		}
	}
	return CategoryListResponse{Categories: responses}
}
