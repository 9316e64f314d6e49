package models

// LoginRequest is the credential body posted to /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest asks the upstream to start a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateStatusRequest carries a status change for an order or consultation.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FieldUpdateRequest merges one field into a product draft.
type FieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// DimensionUpdateRequest merges one axis of the dimensions sub-record.
type DimensionUpdateRequest struct {
	Axis  string `json:"axis" binding:"required,oneof=length width height"`
	Value string `json:"value"`
}

// ImageAltRequest replaces the alt text of one media entry.
type ImageAltRequest struct {
	Index int    `json:"index"`
	Alt   string `json:"alt"`
}

// SettingsPatchRequest updates a single key inside a settings section.
type SettingsPatchRequest struct {
	Section string      `json:"section" binding:"required"`
	Key     string      `json:"key" binding:"required"`
	Value   interface{} `json:"value"`
}
