package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) quotationdomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *quotationdomain.QuotationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) ListForUser(ctx context.Context, userID string) ([]quotationdomain.QuotationRecord, error) {
	var records []quotationdomain.QuotationRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) FindByNumber(ctx context.Context, userID, quoteNumber string) (*quotationdomain.QuotationRecord, error) {
	var rec quotationdomain.QuotationRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quote_number = ?", userID, quoteNumber).
		Order("created_at ASC, id ASC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Update(ctx context.Context, rec *quotationdomain.QuotationRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) DeleteByID(ctx context.Context, userID string, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&quotationdomain.QuotationRecord{}).Error
}
