package sales

import (
	"errors"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DefaultFormulas(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{SimpleRevenueFormula}, r.ListRevenue())
	assert.Equal(t, []string{ProfitTieredFormula}, r.ListBonus())

	cfg, err := r.Config(SimpleRevenueFormula, ProfitTieredFormula)
	require.NoError(t, err)

	rows, err := Analyze(singleSellerBundle(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3.0, rows[0].Bonus)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	flat := func(index, total int, seller domain.SellerStats) float64 { return 10 }

	require.NoError(t, r.RegisterBonus("flat", flat))
	require.NoError(t, r.RegisterBonus("another", flat))
	assert.Error(t, r.RegisterBonus("flat", flat))
	assert.Error(t, r.RegisterBonus("", flat))
	assert.Error(t, r.RegisterBonus("nil", nil))
	assert.Error(t, r.RegisterRevenue("", SimpleRevenue))
	assert.Error(t, r.RegisterRevenue("nil", nil))

	assert.Equal(t, []string{"another", "flat"}, r.ListBonus())
	assert.Empty(t, r.ListRevenue())
}

func TestRegistry_ConfigUnknownFormula(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name    string
		revenue string
		bonus   string
	}{
		{name: "unknown revenue", revenue: "markup", bonus: ProfitTieredFormula},
		{name: "unknown bonus", revenue: SimpleRevenueFormula, bonus: "flat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := r.Config(tt.revenue, tt.bonus)
			assert.Nil(t, cfg)

			var missing *MissingConfigError
			assert.True(t, errors.As(err, &missing))
		})
	}
}
