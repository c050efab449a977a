package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umersanii/CableManagement-sub001/internal/model"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Invoice, error)
	List(ctx context.Context, page, limit int) ([]model.Invoice, int64, error)
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&inv, id).Error
	return &inv, err
}

// FindByIDs preserves the order of ids in its result so batch printing runs
// in the order the caller requested.
func (r *invoiceRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id IN ?", ids).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]model.Invoice, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
	}
	ordered := make([]model.Invoice, 0, len(ids))
	for _, id := range ids {
		if inv, ok := byID[id]; ok {
			ordered = append(ordered, inv)
		}
	}
	return ordered, nil
}

func (r *invoiceRepo) List(ctx context.Context, page, limit int) ([]model.Invoice, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("date DESC, document_number DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&invoices).Error
	return invoices, total, err
}
