package loyalty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avc/shopvely/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Commission(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name       string
		items      []domain.OrderItem
		wantTk     string
		wantPoints int64
	}{
		{
			name:       "Single line",
			items:      []domain.OrderItem{{Price: decimal.NewFromInt(1000), Quantity: 2}},
			wantTk:     "100",
			wantPoints: 1000,
		},
		{
			name: "Several lines",
			items: []domain.OrderItem{
				{Price: decimal.NewFromInt(1200), Quantity: 1},
				{Price: decimal.NewFromInt(350), Quantity: 3},
			},
			wantTk:     "112.5",
			wantPoints: 1125,
		},
		{
			name:       "Half point rounds up",
			items:      []domain.OrderItem{{Price: decimal.NewFromInt(11), Quantity: 1}},
			wantTk:     "0.55",
			wantPoints: 6,
		},
		{
			name:       "Fraction below half rounds down",
			items:      []domain.OrderItem{{Price: decimal.RequireFromString("10.1"), Quantity: 1}},
			wantTk:     "0.505",
			wantPoints: 5,
		},
		{
			name:       "Tiny order earns nothing",
			items:      []domain.OrderItem{{Price: decimal.RequireFromString("0.5"), Quantity: 1}},
			wantTk:     "0.025",
			wantPoints: 0,
		},
		{
			name:       "No items",
			items:      nil,
			wantTk:     "0",
			wantPoints: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, points := rules.Commission(tt.items)
			assert.True(t, decimal.RequireFromString(tt.wantTk).Equal(tk), "tk: expected %s, got %s", tt.wantTk, tk)
			assert.Equal(t, tt.wantPoints, points)
		})
	}
}

func TestRules_PointsToTaka(t *testing.T) {
	rules := DefaultRules()

	assert.True(t, decimal.NewFromInt(150).Equal(rules.PointsToTaka(1500)))
	assert.True(t, decimal.RequireFromString("100.5").Equal(rules.PointsToTaka(1005)))
}

func TestRules_ShippingFor(t *testing.T) {
	rules := DefaultRules()

	assert.True(t, rules.ShippingFor(decimal.NewFromInt(5000)).IsZero())
	assert.True(t, decimal.NewFromInt(100).Equal(rules.ShippingFor(decimal.NewFromInt(4999))))
}

func TestParseRules(t *testing.T) {
	t.Run("Partial override", func(t *testing.T) {
		rules, err := ParseRules([]byte("commission_rate: 0.1\nmin_withdraw_points: 500\n"))
		require.NoError(t, err)

		assert.True(t, decimal.RequireFromString("0.1").Equal(rules.CommissionRate))
		assert.Equal(t, int64(500), rules.MinWithdrawPoints)
		assert.Equal(t, int64(10), rules.PointsPerTaka)
	})

	t.Run("Invalid exchange rate", func(t *testing.T) {
		_, err := ParseRules([]byte("points_per_taka: 0\n"))
		assert.Error(t, err)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := ParseRules([]byte("commission_rate: [\n"))
		assert.Error(t, err)
	})
}

func TestLoadRules(t *testing.T) {
	t.Run("Empty path uses defaults", func(t *testing.T) {
		rules, err := LoadRules("")
		require.NoError(t, err)
		assert.Equal(t, DefaultRules(), rules)
	})

	t.Run("From file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loyalty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("shipping_fee: 120\nfree_shipping_threshold: 3000\n"), 0o600))

		rules, err := LoadRules(path)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(120).Equal(rules.ShippingFee))
		assert.True(t, decimal.NewFromInt(3000).Equal(rules.FreeShippingThreshold))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
