package dto

import (
	userDTO "agriformation_backend/internals/features/users/user/dto"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=30"`
}

// LoginData is the payload returned by login: the identity plus the bearer token.
type LoginData struct {
	User  userDTO.UserDTO `json:"user"`
	Token string          `json:"token"`
}

type MeData struct {
	User userDTO.UserDTO `json:"user"`
}
