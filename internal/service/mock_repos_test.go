package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"slimclinic/backend/internal/model"
	"slimclinic/backend/internal/repository"
	"slimclinic/backend/pkg/redis"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) StampLastLogin(_ context.Context, id uint) error {
	if u, ok := m.users[id]; ok {
		now := time.Now()
		u.LastLogin = &now
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock PatientRepository ──

type mockPatientRepo struct {
	patients map[uint]*model.Patient
	nextID   uint
	nextSeq  int
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uint]*model.Patient), nextID: 1, nextSeq: 1}
}

func (m *mockPatientRepo) Create(_ context.Context, patient *model.Patient) error {
	patient.ID = m.nextID
	m.nextID++
	patient.PatientCode = fmt.Sprintf("P%03d", m.nextSeq)
	m.nextSeq++
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uint) (*model.Patient, error) {
	if p, ok := m.patients[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPatientRepo) List(_ context.Context, search string) ([]model.Patient, error) {
	var result []model.Patient
	for _, p := range m.patients {
		if search != "" && !patientMatches(p, search) {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// patientMatches 模拟 ILIKE 的大小写不敏感子串匹配
func patientMatches(p *model.Patient, search string) bool {
	s := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), s) {
		return true
	}
	if strings.Contains(strings.ToLower(p.PatientCode), s) {
		return true
	}
	if p.Phone != nil && strings.Contains(strings.ToLower(*p.Phone), s) {
		return true
	}
	return false
}

func (m *mockPatientRepo) Update(_ context.Context, patient *model.Patient) error {
	if _, ok := m.patients[patient.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.patients[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.patients, id)
	return nil
}

// ── Mock MeasurementRepository ──

type mockMeasurementRepo struct {
	measurements map[uint]*model.Measurement
	nextID       uint
}

func newMockMeasurementRepo() *mockMeasurementRepo {
	return &mockMeasurementRepo{measurements: make(map[uint]*model.Measurement), nextID: 1}
}

func (m *mockMeasurementRepo) Create(_ context.Context, rec *model.Measurement) error {
	rec.ID = m.nextID
	m.nextID++
	if rec.MeasurementDate.IsZero() {
		rec.MeasurementDate = time.Now()
	}
	rec.CreatedAt = time.Now()
	m.measurements[rec.ID] = rec
	return nil
}

func (m *mockMeasurementRepo) GetByID(_ context.Context, id uint) (*model.Measurement, error) {
	if rec, ok := m.measurements[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeasurementRepo) ListByPatient(_ context.Context, patientID uint) ([]model.Measurement, error) {
	var result []model.Measurement
	for _, rec := range m.measurements {
		if rec.PatientID == patientID {
			result = append(result, *rec)
		}
	}
	// 与真实仓储一致：按测量时间倒序
	sort.Slice(result, func(i, j int) bool {
		return result[i].MeasurementDate.After(result[j].MeasurementDate)
	})
	return result, nil
}

func (m *mockMeasurementRepo) Update(_ context.Context, rec *model.Measurement) error {
	if _, ok := m.measurements[rec.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.measurements[rec.ID] = rec
	return nil
}

func (m *mockMeasurementRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.measurements[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.measurements, id)
	return nil
}

// ── Mock SettingRepository ──

type mockSettingRepo struct {
	settings map[string]*model.Setting
	nextID   uint
}

func newMockSettingRepo() *mockSettingRepo {
	return &mockSettingRepo{settings: make(map[string]*model.Setting), nextID: 1}
}

func (m *mockSettingRepo) put(key, value string) {
	m.settings[key] = &model.Setting{
		ID:           m.nextID,
		SettingKey:   key,
		SettingValue: value,
		UpdatedAt:    time.Now(),
	}
	m.nextID++
}

func (m *mockSettingRepo) List(_ context.Context) ([]model.Setting, error) {
	var result []model.Setting
	for _, s := range m.settings {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SettingKey < result[j].SettingKey })
	return result, nil
}

func (m *mockSettingRepo) UpdateValue(_ context.Context, key, value string) error {
	s, ok := m.settings[key]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.SettingValue = value
	s.UpdatedAt = time.Now()
	return nil
}

// ── Mock FieldSettingRepository ──

type mockFieldSettingRepo struct {
	fields map[uint]*model.FieldSetting
	nextID uint
}

func newMockFieldSettingRepo() *mockFieldSettingRepo {
	return &mockFieldSettingRepo{fields: make(map[uint]*model.FieldSetting), nextID: 1}
}

func (m *mockFieldSettingRepo) put(fs model.FieldSetting) *model.FieldSetting {
	fs.ID = m.nextID
	m.nextID++
	m.fields[fs.ID] = &fs
	return &fs
}

func (m *mockFieldSettingRepo) List(_ context.Context, tableName string) ([]model.FieldSetting, error) {
	var result []model.FieldSetting
	for _, fs := range m.fields {
		if tableName != "" && fs.TableName != tableName {
			continue
		}
		result = append(result, *fs)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FieldOrder < result[j].FieldOrder })
	return result, nil
}

func (m *mockFieldSettingRepo) GetByID(_ context.Context, id uint) (*model.FieldSetting, error) {
	if fs, ok := m.fields[id]; ok {
		return fs, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFieldSettingRepo) Update(_ context.Context, fs *model.FieldSetting) error {
	if _, ok := m.fields[fs.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.fields[fs.ID] = fs
	return nil
}

// ── Mock SessionStore ──

type mockSessionStore struct {
	sessions map[string]uint
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]uint)}
}

func (m *mockSessionStore) CreateSession(_ context.Context, token string, userID uint, _ time.Duration) error {
	m.sessions[token] = userID
	return nil
}

func (m *mockSessionStore) GetSession(_ context.Context, token string) (uint, error) {
	if id, ok := m.sessions[token]; ok {
		return id, nil
	}
	return 0, redis.ErrSessionNotFound
}

func (m *mockSessionStore) DeleteSession(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

// ── 组装辅助 ──

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:         newMockUserRepo(),
		Patient:      newMockPatientRepo(),
		Measurement:  newMockMeasurementRepo(),
		Setting:      newMockSettingRepo(),
		FieldSetting: newMockFieldSettingRepo(),
	}
}

// ── 测试辅助：指针字面量 ──

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrStr(v string) *string     { return &v }
func ptrBool(v bool) *bool        { return &v }

