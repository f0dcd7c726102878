package database

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"slimclinic/backend/config"
	"slimclinic/backend/internal/model"
)

// SeedUsers 首次启动时植入初始账号
// 仅在 users 表为空时执行；密码来自配置（auth.seed_*_password）
func SeedUsers(db *gorm.DB, cfg *config.AuthConfig, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("统计用户数失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username string
		password string
		fullName string
		role     string
	}{
		{"admin", cfg.SeedAdminPassword, "مدير النظام", model.RoleAdmin},
		{"doctor", cfg.SeedStaffPassword, "دكتور", model.RoleStandard},
	}

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("生成初始密码哈希失败: %w", err)
		}
		user := &model.User{
			Username:     s.username,
			PasswordHash: string(hash),
			FullName:     s.fullName,
			Role:         s.role,
			IsActive:     true,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("植入初始用户 %s 失败: %w", s.username, err)
		}
		logger.Info("已植入初始用户",
			zap.String("username", s.username),
			zap.String("role", s.role),
		)
	}

	return nil
}

