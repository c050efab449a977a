package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umersanii/CableManagement-sub001/internal/model"
)

type SnapshotRepository interface {
	Create(ctx context.Context, s *model.BalanceSnapshot) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BalanceSnapshot, error)
	// Latest returns the most recent snapshot by as-of date.
	Latest(ctx context.Context) (*model.BalanceSnapshot, error)
	List(ctx context.Context, page, limit int) ([]model.BalanceSnapshot, int64, error)
}

type snapshotRepo struct{ db *gorm.DB }

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepo{db: db}
}

func (r *snapshotRepo) Create(ctx context.Context, s *model.BalanceSnapshot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *snapshotRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.BalanceSnapshot, error) {
	var s model.BalanceSnapshot
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *snapshotRepo) Latest(ctx context.Context) (*model.BalanceSnapshot, error) {
	var s model.BalanceSnapshot
	err := r.db.WithContext(ctx).Order("as_of_date DESC").First(&s).Error
	return &s, err
}

func (r *snapshotRepo) List(ctx context.Context, page, limit int) ([]model.BalanceSnapshot, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.BalanceSnapshot{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var snapshots []model.BalanceSnapshot
	err := r.db.WithContext(ctx).
		Order("as_of_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, total, err
}
