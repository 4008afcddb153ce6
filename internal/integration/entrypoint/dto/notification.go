package dto

// PermissionResponse represents the stored notification permission.
type PermissionResponse struct {
	Permission string `json:"permission"`
}

// SetPermissionRequest represents the request body for storing the permission.
type SetPermissionRequest struct {
	Permission string `json:"permission" binding:"required,oneof=granted denied default"`
}

// CheckRemindersResponse represents the result of a manual reminder sweep.
type CheckRemindersResponse struct {
	Due     int `json:"due"`
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
}

// AdviceResponse represents the AI savings-advice payload.
type AdviceResponse struct {
	Advice string `json:"advice"`
}
