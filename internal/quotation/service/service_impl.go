package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serviceParams struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  quotationdomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  quotationdomain.Repository
}

func NewService(p serviceParams) quotationdomain.Service {
	return &Service{
		log:   p.Log.Named("quotation.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Save(ctx context.Context, userID string, q quotationdomain.Quotation) (*quotationdomain.Response, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, quotationdomain.ErrInvalidUser
	}

	now := time.Now().UTC()
	rec, err := quotationdomain.NewRecord(s.genID.Generate(), userID, q, now)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("quotation saved",
		zap.String("user_id", userID),
		zap.String("quote_number", rec.QuoteNumber),
	)

	return toResponse(rec)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]quotationdomain.Response, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, quotationdomain.ErrInvalidUser
	}

	records, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]quotationdomain.Response, 0, len(records))
	for i := range records {
		item, err := toResponse(&records[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return resp, nil
}

// Delete removes the user's quotation at the given position, counting in
// creation order, matching how the form presents the saved list.
func (s *Service) Delete(ctx context.Context, userID string, index int) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return quotationdomain.ErrInvalidUser
	}

	records, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return quotationdomain.ErrNotFound
	}

	target := records[index]
	if err := s.repo.DeleteByID(ctx, userID, target.ID); err != nil {
		return err
	}

	s.log.Info("quotation deleted",
		zap.String("user_id", userID),
		zap.String("quote_number", target.QuoteNumber),
	)
	return nil
}

func (s *Service) UpdateByNumber(ctx context.Context, userID string, q quotationdomain.Quotation) (*quotationdomain.Response, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, quotationdomain.ErrInvalidUser
	}
	if strings.TrimSpace(q.QuoteNumber) == "" {
		return nil, quotationdomain.ErrInvalidQuoteNumber
	}

	existing, err := s.repo.FindByNumber(ctx, userID, q.QuoteNumber)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, quotationdomain.ErrNotFound
	}

	updated, err := quotationdomain.NewRecord(existing.ID, userID, q, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.log.Info("quotation updated",
		zap.String("user_id", userID),
		zap.String("quote_number", updated.QuoteNumber),
	)

	return toResponse(updated)
}

func toResponse(rec *quotationdomain.QuotationRecord) (*quotationdomain.Response, error) {
	q, err := rec.Quotation()
	if err != nil {
		return nil, err
	}
	return &quotationdomain.Response{
		ID:         rec.ID.String(),
		UserID:     rec.UserID,
		Quotation:  q,
		CreatedAt:  rec.CreatedAt,
		ModifiedAt: rec.ModifiedAt,
	}, nil
}
