package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/store/bundle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Load(ctx context.Context) (*domain.Bundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bundle), args.Error(1)
}

func testBundle() *domain.Bundle {
	return &domain.Bundle{
		Sellers: []domain.Seller{
			{ID: "s1", FirstName: "Ivan", LastName: "Ivanov"},
			{ID: "s2", FirstName: "Olga", LastName: "Smirnova"},
		},
		Products: []domain.Product{{SKU: "A", PurchasePrice: 10}},
		PurchaseRecords: []domain.PurchaseRecord{
			{SellerID: "s1", Items: []domain.LineItem{{SKU: "A", Quantity: 2, SalePrice: 20}}},
			{SellerID: "s2", Items: []domain.LineItem{{SKU: "A", Quantity: 1, SalePrice: 15.5}, {SKU: "Z", Quantity: 1}}},
			{SellerID: "ghost", Items: []domain.LineItem{{SKU: "A", Quantity: 1, SalePrice: 15}}},
		},
	}
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestService_Generate(t *testing.T) {
	svc := NewService(sales.DefaultRegistry()).(*service)
	svc.now = func() time.Time { return time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC) }

	src := new(mockSource)
	src.On("Load", mock.Anything).Return(testBundle(), nil)

	report, err := svc.Generate(testContext(t), src, Formulas{Revenue: "simple", Bonus: "profit_tiered"})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC), report.GeneratedAt)
	assert.Equal(t, "simple", report.RevenueFormula)
	assert.Equal(t, domain.SalesSummary{
		Sellers:        2,
		TotalRevenue:   55.5,
		TotalProfit:    25.5,
		TotalBonus:     3.55,
		SkippedRecords: 1,
		SkippedItems:   1,
	}, report.Summary)
	require.Len(t, report.Sellers, 2)
	assert.Equal(t, "s1", report.Sellers[0].SellerID)

	src.AssertExpectations(t)
}

func TestService_Generate_UnknownFormula(t *testing.T) {
	svc := NewService(sales.DefaultRegistry())
	src := new(mockSource)

	_, err := svc.Generate(testContext(t), src, Formulas{Revenue: "markup", Bonus: "profit_tiered"})

	var missing *sales.MissingConfigError
	assert.True(t, errors.As(err, &missing))
	src.AssertNotCalled(t, "Load", mock.Anything)
}

func TestService_Generate_SourceError(t *testing.T) {
	svc := NewService(sales.DefaultRegistry())
	src := new(mockSource)
	src.On("Load", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Generate(testContext(t), src, Formulas{Revenue: "simple", Bonus: "profit_tiered"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestService_Generate_InvalidBundle(t *testing.T) {
	svc := NewService(sales.DefaultRegistry())

	_, err := svc.Generate(testContext(t), bundle.Static{Bundle: &domain.Bundle{}}, Formulas{Revenue: "simple", Bonus: "profit_tiered"})

	var invalid *sales.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestService_Formulas(t *testing.T) {
	revenue, bonus := NewService(sales.DefaultRegistry()).Formulas()
	assert.Equal(t, []string{"simple"}, revenue)
	assert.Equal(t, []string{"profit_tiered"}, bonus)
}
