package service

import (
	"context"

	"github.com/kylycht/buysell/model"
)

// Rates interface describes
// the provider of exchange rates
type Rates interface {
	// GetRates returns the rates table
	// as published by the provider.
	// Table is nil when the provider
	// has no rates to publish
	GetRates(ctx context.Context) (model.RateTable, error)
}
