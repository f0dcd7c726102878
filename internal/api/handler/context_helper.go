package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ── gin.Context 取值辅助 ──
// 以下取值只在 SessionAuth 之后的路由中调用，键必然存在

// MustGetUserID 从上下文取当前用户 ID
func MustGetUserID(c *gin.Context) uint {
	return c.MustGet("user_id").(uint)
}

// MustGetRole 从上下文取当前用户角色
func MustGetRole(c *gin.Context) string {
	return c.MustGet("role").(string)
}

// parseIDParam 解析路径参数中的数字 ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

