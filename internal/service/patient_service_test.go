package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"slimclinic/backend/internal/dto"
	"slimclinic/backend/internal/repository"
)

func setupTestPatientService() (PatientService, *repository.Repository) {
	repo := newMockRepository()
	return NewPatientService(repo, zap.NewNop()), repo
}

func TestPatientCreate_AssignsCode(t *testing.T) {
	svc, _ := setupTestPatientService()

	first, err := svc.Create(context.Background(), &dto.PatientRequest{Name: "أحمد محمد"}, 1)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if !first.Success {
		t.Error("Success 应为 true")
	}
	if first.PatientCode != "P001" {
		t.Errorf("首个患者期望编号 P001，实际=%s", first.PatientCode)
	}

	second, err := svc.Create(context.Background(), &dto.PatientRequest{Name: "سارة علي"}, 1)
	if err != nil {
		t.Fatalf("第二次 Create 应成功: %v", err)
	}
	if second.PatientCode != "P002" {
		t.Errorf("第二个患者期望编号 P002，实际=%s", second.PatientCode)
	}
}

func TestPatientCreate_RecordsCreator(t *testing.T) {
	svc, repo := setupTestPatientService()

	resp, err := svc.Create(context.Background(), &dto.PatientRequest{
		Name:  "أحمد محمد",
		Age:   ptrInt(35),
		Phone: ptrStr("01012345678"),
	}, 7)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	stored, _ := repo.Patient.GetByID(context.Background(), resp.ID)
	if stored.CreatedBy == nil || *stored.CreatedBy != 7 {
		t.Error("应记录创建者 ID")
	}
	if stored.Age == nil || *stored.Age != 35 {
		t.Error("Age 应落库")
	}
}

func TestPatientGet_Success(t *testing.T) {
	svc, _ := setupTestPatientService()
	created, _ := svc.Create(context.Background(), &dto.PatientRequest{Name: "أحمد محمد"}, 1)

	patient, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if patient.Name != "أحمد محمد" {
		t.Errorf("期望 Name=أحمد محمد，实际=%s", patient.Name)
	}
	if patient.Age != nil {
		t.Error("未填写的 Age 应为 nil（JSON null）")
	}
}

func TestPatientGet_NotFound(t *testing.T) {
	svc, _ := setupTestPatientService()

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("期望 ErrPatientNotFound，实际: %v", err)
	}
}

func TestPatientList_Search(t *testing.T) {
	svc, _ := setupTestPatientService()
	_, _ = svc.Create(context.Background(), &dto.PatientRequest{Name: "أحمد محمد", Phone: ptrStr("01012345678")}, 1)
	_, _ = svc.Create(context.Background(), &dto.PatientRequest{Name: "سارة علي", Phone: ptrStr("01098765432")}, 1)

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("期望 2 个患者，实际=%d", len(all))
	}

	byName, _ := svc.List(context.Background(), "أحمد")
	if len(byName) != 1 {
		t.Errorf("按姓名检索期望 1 条，实际=%d", len(byName))
	}

	byPhone, _ := svc.List(context.Background(), "0109")
	if len(byPhone) != 1 || byPhone[0].Name != "سارة علي" {
		t.Error("按电话检索应命中 سارة علي")
	}

	byCode, _ := svc.List(context.Background(), "p001")
	if len(byCode) != 1 {
		t.Errorf("按编号检索（大小写不敏感）期望 1 条，实际=%d", len(byCode))
	}

	none, _ := svc.List(context.Background(), "不存在的人")
	if len(none) != 0 {
		t.Errorf("无匹配时应返回空列表，实际=%d", len(none))
	}
}

func TestPatientUpdate_FullReplace(t *testing.T) {
	svc, repo := setupTestPatientService()
	created, _ := svc.Create(context.Background(), &dto.PatientRequest{
		Name:  "أحمد محمد",
		Age:   ptrInt(35),
		Phone: ptrStr("01012345678"),
		Notes: ptrStr("ملاحظات"),
	}, 1)

	// 更新只带 Name：其余可选字段整行替换为 NULL
	err := svc.Update(context.Background(), created.ID, &dto.PatientRequest{Name: "أحمد محمود"})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	stored, _ := repo.Patient.GetByID(context.Background(), created.ID)
	if stored.Name != "أحمد محمود" {
		t.Errorf("期望 Name 已更新，实际=%s", stored.Name)
	}
	if stored.Age != nil || stored.Phone != nil || stored.Notes != nil {
		t.Error("未携带的可选字段应清空为 NULL")
	}
	if stored.PatientCode != "P001" {
		t.Errorf("更新不应改变患者编号，实际=%s", stored.PatientCode)
	}
}

func TestPatientUpdate_NotFound(t *testing.T) {
	svc, _ := setupTestPatientService()

	err := svc.Update(context.Background(), 99, &dto.PatientRequest{Name: "不存在"})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("期望 ErrPatientNotFound，实际: %v", err)
	}
}

func TestPatientDelete_Success(t *testing.T) {
	svc, repo := setupTestPatientService()
	created, _ := svc.Create(context.Background(), &dto.PatientRequest{Name: "أحمد محمد"}, 1)

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	if _, err := repo.Patient.GetByID(context.Background(), created.ID); err == nil {
		t.Error("患者应已删除")
	}
}

func TestPatientDelete_NotFound(t *testing.T) {
	svc, _ := setupTestPatientService()

	err := svc.Delete(context.Background(), 99)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("期望 ErrPatientNotFound，实际: %v", err)
	}
}

