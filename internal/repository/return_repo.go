package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umersanii/CableManagement-sub001/internal/model"
)

type ReturnRepository interface {
	Create(ctx context.Context, ret *model.ReturnInvoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ReturnInvoice, error)
	List(ctx context.Context, page, limit int) ([]model.ReturnInvoice, int64, error)
}

type returnRepo struct{ db *gorm.DB }

func NewReturnRepository(db *gorm.DB) ReturnRepository {
	return &returnRepo{db: db}
}

func (r *returnRepo) Create(ctx context.Context, ret *model.ReturnInvoice) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *returnRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ReturnInvoice, error) {
	var ret model.ReturnInvoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&ret, id).Error
	return &ret, err
}

func (r *returnRepo) List(ctx context.Context, page, limit int) ([]model.ReturnInvoice, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.ReturnInvoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var returns []model.ReturnInvoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("date DESC, document_number DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&returns).Error
	return returns, total, err
}
