package shipment

import "slices"

// QuoteOutcome distinguishes a quote that produced rates from one that
// produced none. Provider failures are errors, not outcomes.
type QuoteOutcome int

const (
	RatesFound QuoteOutcome = iota + 1
	NoRates
)

func (o QuoteOutcome) String() string {
	switch o {
	case RatesFound:
		return "rates_found"
	case NoRates:
		return "no_rates"
	default:
		return "unknown"
	}
}

// QuoteResult is what the session keeps from one quote cycle.
type QuoteResult struct {
	Outcome  QuoteOutcome
	Rates    []Rate
	Messages []string
}

// NewQuoteResult derives the outcome from the rate count and keeps the
// provider order.
func NewQuoteResult(rates []Rate, messages []string) QuoteResult {
	outcome := RatesFound
	if len(rates) == 0 {
		outcome = NoRates
	}
	return QuoteResult{
		Outcome:  outcome,
		Rates:    slices.Clone(rates),
		Messages: slices.Clone(messages),
	}
}
