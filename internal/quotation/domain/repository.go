package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, rec *QuotationRecord) error
	ListForUser(ctx context.Context, userID string) ([]QuotationRecord, error)
	FindByNumber(ctx context.Context, userID, quoteNumber string) (*QuotationRecord, error)
	Update(ctx context.Context, rec *QuotationRecord) error
	DeleteByID(ctx context.Context, userID string, id snowflake.ID) error
}
