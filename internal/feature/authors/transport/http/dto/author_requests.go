// Package dto defines data transfer objects for the authors feature's
// HTTP transport layer.
package dto

import "blog_backend/internal/api"

// CreateAuthorReq represents the request body for POST /authors.
// Gin's binding tags carry the field-level validation; the username
// character class is checked in the handler.
type CreateAuthorReq struct {
	Username string  `json:"username" binding:"required,min=3,max=15"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=100"`
}

// UpdateAuthorReq represents the request body for PATCH /authors/:id.
// Every field is optional; full_name accepts an explicit null to clear
// the stored value.
type UpdateAuthorReq struct {
	Username *string            `json:"username" binding:"omitempty,min=3,max=15"`
	Email    *string            `json:"email" binding:"omitempty,email"`
	Password *string            `json:"password" binding:"omitempty,min=8"`
	FullName api.OptionalString `json:"full_name"`
}
