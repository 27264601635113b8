package models

import "time"

// AdminRole is the only role issued today
const AdminRole = "admin"

// Admin is a dashboard account
type Admin struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=72"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Admin     *Admin    `json:"admin"`
	ExpiresAt time.Time `json:"expiresAt"`
}
