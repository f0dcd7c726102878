package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"slimclinic/backend/internal/dto"
	"slimclinic/backend/internal/model"
	"slimclinic/backend/internal/repository"
)

func setupTestUserService() (UserService, *repository.Repository) {
	repo := newMockRepository()
	return NewUserService(repo, zap.NewNop()), repo
}

func TestUserCreate_Success(t *testing.T) {
	svc, repo := setupTestUserService()

	id, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "reception",
		Password: "secret123",
		FullName: "موظف الاستقبال",
		Role:     model.RoleStandard,
		IsActive: ptrBool(true),
	})

	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if id == 0 {
		t.Error("应返回新用户 ID")
	}

	stored, err := repo.User.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("新用户应已落库: %v", err)
	}
	if stored.PasswordHash == "secret123" {
		t.Error("密码必须哈希存储，不能存明文")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")); err != nil {
		t.Error("存储的哈希应能校验原始密码")
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	svc, repo := setupTestUserService()
	createTestUser(repo, "reception", "secret123", model.RoleStandard, true)

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "reception",
		Password: "other456",
		FullName: "另一个人",
		Role:     model.RoleStandard,
		IsActive: ptrBool(true),
	})

	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("期望 ErrUsernameExists，实际: %v", err)
	}
}

func TestUserList_ReturnsAll(t *testing.T) {
	svc, repo := setupTestUserService()
	createTestUser(repo, "admin", "admin123", model.RoleAdmin, true)
	createTestUser(repo, "doctor", "doctor123", model.RoleStandard, true)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("期望 2 个用户，实际=%d", len(users))
	}
}

func TestUserUpdate_FullReplace(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "doctor", "doctor123", model.RoleStandard, true)
	oldHash := user.PasswordHash

	err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: "دكتور أحمد",
		Role:     model.RoleAdmin,
		IsActive: ptrBool(false),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	stored, _ := repo.User.GetByID(context.Background(), user.ID)
	if stored.FullName != "دكتور أحمد" {
		t.Errorf("期望 FullName 已更新，实际=%s", stored.FullName)
	}
	if stored.Role != model.RoleAdmin {
		t.Errorf("期望 Role=admin，实际=%s", stored.Role)
	}
	if stored.IsActive {
		t.Error("期望 IsActive=false")
	}
	if stored.PasswordHash != oldHash {
		t.Error("未携带 password 时凭证不应改变")
	}
}

func TestUserUpdate_ResetPassword(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "doctor", "doctor123", model.RoleStandard, true)

	err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: user.FullName,
		Role:     user.Role,
		IsActive: ptrBool(true),
		Password: ptrStr("newpass456"),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	stored, _ := repo.User.GetByID(context.Background(), user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass456")); err != nil {
		t.Error("新密码应能通过校验")
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	err := svc.Update(context.Background(), 99, &dto.UpdateUserRequest{
		FullName: "不存在",
		Role:     model.RoleStandard,
		IsActive: ptrBool(true),
	})

	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestUserDelete_Success(t *testing.T) {
	svc, repo := setupTestUserService()
	admin := createTestUser(repo, "admin", "admin123", model.RoleAdmin, true)
	doctor := createTestUser(repo, "doctor", "doctor123", model.RoleStandard, true)

	if err := svc.Delete(context.Background(), doctor.ID, admin.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	if _, err := repo.User.GetByID(context.Background(), doctor.ID); err == nil {
		t.Error("用户应已删除")
	}
}

func TestUserDelete_Self(t *testing.T) {
	svc, repo := setupTestUserService()
	admin := createTestUser(repo, "admin", "admin123", model.RoleAdmin, true)

	err := svc.Delete(context.Background(), admin.ID, admin.ID)
	if !errors.Is(err, ErrUserSelfDelete) {
		t.Errorf("期望 ErrUserSelfDelete，实际: %v", err)
	}

	if _, err := repo.User.GetByID(context.Background(), admin.ID); err != nil {
		t.Error("自删被拒后账号应仍存在")
	}
}

func TestUserDelete_NotFound(t *testing.T) {
	svc, repo := setupTestUserService()
	admin := createTestUser(repo, "admin", "admin123", model.RoleAdmin, true)

	err := svc.Delete(context.Background(), 99, admin.ID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

