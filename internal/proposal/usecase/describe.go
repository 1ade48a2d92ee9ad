package usecase

import (
	"fmt"

	"taskbridge/internal/proposal/model"

	"github.com/dustin/go-humanize"
)

// Describe renders the proposal message body, e.g.
// "Proposal: $1,250.00/hr starting Feb 15, 2026".
func Describe(p *model.Proposal, counter bool) string {
	prefix := "Proposal"
	if counter {
		prefix = "Counter-offer"
	}
	amount := "$" + humanize.FormatFloat("#,###.##", float64(p.Rate)/100)

	var rate string
	switch p.RateType {
	case model.RateHourly:
		rate = amount + "/hr"
	default:
		rate = amount + " flat"
	}
	return fmt.Sprintf("%s: %s starting %s", prefix, rate, p.StartTime.UTC().Format("Jan 2, 2006"))
}
