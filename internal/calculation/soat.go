package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/domain"
)

// ResolveSOATPremium returns the mandatory insurance premium for the given
// displacement. Bands are matched ascending by lower bound and the first
// containing band wins; an empty table or an uncovered displacement resolves
// to zero rather than an error.
func ResolveSOATPremium(displacementCC int, bands []domain.RateBand) decimal.Decimal {
	if len(bands) == 0 {
		return decimal.Zero
	}

	sorted := make([]domain.RateBand, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinCC < sorted[j].MinCC })

	for _, band := range sorted {
		if band.Contains(displacementCC) {
			return band.Premium
		}
	}
	return decimal.Zero
}
