package domain

import (
	"context"
	"time"
)

// Response is the API-facing view of a stored quotation.
type Response struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Quotation
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Service is the persistence collaborator contract: the rendering and
// template engines only consume its success/failure outcome.
type Service interface {
	Save(ctx context.Context, userID string, q Quotation) (*Response, error)
	ListForUser(ctx context.Context, userID string) ([]Response, error)
	Delete(ctx context.Context, userID string, index int) error
	UpdateByNumber(ctx context.Context, userID string, q Quotation) (*Response, error)
}
