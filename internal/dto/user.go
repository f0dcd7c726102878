package dto

import "time"

// ── 用户管理模块 DTO（仅管理员） ──

// UserResponse 用户信息响应（不含凭证）
type UserResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

// UserListResponse 用户列表响应
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username"  binding:"required,min=3,max=50"`
	Password string `json:"password"  binding:"required,min=6,max=72"`
	FullName string `json:"full_name" binding:"required,max=100"`
	Role     string `json:"role"      binding:"required,oneof=admin standard"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// UpdateUserRequest 更新用户请求（整行替换可变字段）
// Password 例外：仅在提供时重置凭证
type UpdateUserRequest struct {
	FullName string  `json:"full_name" binding:"required,max=100"`
	Role     string  `json:"role"      binding:"required,oneof=admin standard"`
	IsActive *bool   `json:"is_active" binding:"required"`
	Password *string `json:"password"  binding:"omitempty,min=6,max=72"`
}

// CreateUserResponse 创建用户响应
type CreateUserResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// SuccessResponse 通用成功响应 {"success": true}
type SuccessResponse struct {
	Success bool `json:"success"`
}

