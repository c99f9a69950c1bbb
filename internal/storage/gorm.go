package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
)

// OpenMySQL connects to MySQL for the durable backend.
func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// GormStore is the durable Store backend, selected with STORAGE_DRIVER=mysql.
// It implements the same contract as MemoryStore so the service layer is
// unaware of which backend is in use.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore migrates the schema and returns a GORM-backed store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&model.User{}, &model.HazardReport{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) CreateHazardReport(ctx context.Context, report *model.HazardReport) error {
	report.ID = uuid.NewString()
	return s.db.WithContext(ctx).Create(report).Error
}

func (s *GormStore) ListHazardReports(ctx context.Context) ([]model.HazardReport, error) {
	var reports []model.HazardReport
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *GormStore) ListHazardReportsByUser(ctx context.Context, userID string) ([]model.HazardReport, error) {
	var reports []model.HazardReport
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
