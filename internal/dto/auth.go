package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录成功响应
// sessionId 为不透明随机令牌，后续请求经 X-Session-ID 头或 session 查询参数携带
type LoginResponse struct {
	Success   bool     `json:"success"`
	SessionID string   `json:"sessionId"`
	User      AuthUser `json:"user"`
}

// AuthUser 已认证主体（会话解析结果）
type AuthUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// MeResponse 当前用户响应
type MeResponse struct {
	User AuthUser `json:"user"`
}

