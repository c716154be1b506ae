package calculation

import (
	"fmt"

	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/matthewtax/ngtax/pkg/ngn"
	"github.com/shopspring/decimal"
)

// ApplyBrackets runs a chargeable amount through a progressive bracket
// table and returns the total tax plus one breakdown line per band that
// actually contributed. Bands are half-open [lower, upper): a chargeable
// amount exactly on a boundary is taxed entirely at the lower band's rate.
// Bands wholly above the chargeable amount are omitted from the breakdown.
func ApplyBrackets(brackets []config.BracketRow, chargeable decimal.Decimal) (decimal.Decimal, []domain.BreakdownLine) {
	total := decimal.Zero
	var lines []domain.BreakdownLine

	for _, row := range brackets {
		if chargeable.LessThanOrEqual(row.Lower) {
			break
		}
		top := chargeable
		if !row.Open() {
			top = decimal.Min(chargeable, row.Upper)
		}
		tax := top.Sub(row.Lower).Mul(row.Rate)
		total = total.Add(tax)
		lines = append(lines, domain.BreakdownLine{
			Label:  bracketLabel(row),
			Amount: tax,
		})
	}

	return total, lines
}

// bracketLabel renders a band as a human-readable range with its rate,
// e.g. "₦300,000 - ₦600,000 @ 5%" or "Above ₦3,500,000 @ 21%".
func bracketLabel(row config.BracketRow) string {
	rate := row.Rate.Mul(decimal.NewFromInt(100)).String() + "%"
	if row.Open() {
		return fmt.Sprintf("Above %s @ %s", ngn.Format(row.Lower), rate)
	}
	return fmt.Sprintf("%s - %s @ %s", ngn.Format(row.Lower), ngn.Format(row.Upper), rate)
}
