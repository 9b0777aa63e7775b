package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
	"github.com/instacotiza/cotiza/internal/quotation/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) quotationdomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&quotationdomain.QuotationRecord{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(serviceParams{
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.NewRepository(db),
	})
}

func testQuotation(number string) quotationdomain.Quotation {
	return quotationdomain.Quotation{
		QuoteNumber: number,
		CompanyName: "Constructora GPD",
		ClientName:  "ACME",
		ClientSite:  "Planta Norte",
		Date:        "2025-06-01",
		Currency:    quotationdomain.CurrencyCLP,
		LineItems: []quotationdomain.LineItem{
			{Name: "Hormigón H25", Description: "Losa", Unit: "m3", Quantity: 10, UnitPrice: 1000},
		},
	}
}

func TestSave_InvalidUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(context.Background(), "  ", testQuotation("001"))
	assert.ErrorIs(t, err, quotationdomain.ErrInvalidUser)
}

func TestSaveAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "user-1", testQuotation("001"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user-1", saved.UserID)
	assert.False(t, saved.CreatedAt.IsZero())

	list, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, "001", got.QuoteNumber)
	assert.Equal(t, "ACME", got.ClientName)
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Hormigón H25", got.LineItems[0].Name)
	assert.Equal(t, float64(1000), got.LineItems[0].UnitPrice)

	// Other users never see it.
	other, err := svc.ListForUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestList_CreationOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, number := range []string{"003", "001", "002"} {
		_, err := svc.Save(ctx, "user-1", testQuotation(number))
		require.NoError(t, err)
	}

	list, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)

	numbers := []string{list[0].QuoteNumber, list[1].QuoteNumber, list[2].QuoteNumber}
	assert.Equal(t, []string{"003", "001", "002"}, numbers)
}

func TestDelete_ByIndex(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, number := range []string{"001", "002", "003"} {
		_, err := svc.Save(ctx, "user-1", testQuotation(number))
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, "user-1", 1))

	list, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "001", list[0].QuoteNumber)
	assert.Equal(t, "003", list[1].QuoteNumber)
}

func TestDelete_OutOfRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, "user-1", testQuotation("001"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "user-1", 1), quotationdomain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "user-1", -1), quotationdomain.ErrNotFound)
}

func TestUpdateByNumber(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "user-1", testQuotation("001"))
	require.NoError(t, err)

	q := testQuotation("001")
	q.ClientName = "ACME Renovado"
	q.LineItems = append(q.LineItems, quotationdomain.LineItem{
		Name: "Moldaje", Unit: "m2", Quantity: 5, UnitPrice: 2000,
	})

	updated, err := svc.UpdateByNumber(ctx, "user-1", q)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "ACME Renovado", updated.ClientName)
	assert.Len(t, updated.LineItems, 2)
	assert.WithinDuration(t, saved.CreatedAt, updated.CreatedAt, time.Second)

	list, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ACME Renovado", list[0].ClientName)
}

func TestUpdateByNumber_Missing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateByNumber(ctx, "user-1", testQuotation("999"))
	assert.ErrorIs(t, err, quotationdomain.ErrNotFound)

	_, err = svc.UpdateByNumber(ctx, "user-1", testQuotation(""))
	assert.ErrorIs(t, err, quotationdomain.ErrInvalidQuoteNumber)
}
