package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/casamotor/cotizador/internal/domain"
)

func soatBands() []domain.RateBand {
	// deliberately unsorted
	return []domain.RateBand{
		{MinCC: 200, MaxCC: 9999, Premium: decimal.NewFromInt(402000)},
		{MinCC: 0, MaxCC: 99, Premium: decimal.NewFromInt(250000)},
		{MinCC: 100, MaxCC: 199, Premium: decimal.NewFromInt(335000)},
	}
}

func TestResolveSOATPremium(t *testing.T) {
	tests := []struct {
		name         string
		displacement int
		want         int64
	}{
		{"low band", 50, 250000},
		{"lower boundary inclusive", 100, 335000},
		{"upper boundary inclusive", 199, 335000},
		{"high band", 650, 402000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSOATPremium(tt.displacement, soatBands())
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s, want %d", got, tt.want)
		})
	}
}

func TestResolveSOATPremium_EmptyTable(t *testing.T) {
	got := ResolveSOATPremium(125, nil)
	assert.True(t, got.IsZero(), "empty table should resolve to zero, got %s", got)
}

func TestResolveSOATPremium_NoMatchingBand(t *testing.T) {
	bands := []domain.RateBand{
		{MinCC: 100, MaxCC: 199, Premium: decimal.NewFromInt(335000)},
	}
	got := ResolveSOATPremium(50, bands)
	assert.True(t, got.IsZero(), "uncovered displacement should resolve to zero, got %s", got)
}

func TestResolveSOATPremium_DoesNotMutateInput(t *testing.T) {
	bands := soatBands()
	ResolveSOATPremium(125, bands)
	assert.Equal(t, 200, bands[0].MinCC, "input slice order should be preserved")
}
