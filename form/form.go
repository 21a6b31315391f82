// Package form implements the state of the Buy & Sell exchange form:
// user selections, the entered pay amount and the receive amount
// derived from a rates table captured when the page was rendered.
//
// A Form is not safe for concurrent use; callers serialise events.
package form

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/kylycht/buysell/model"
	"github.com/shopspring/decimal"
)

// MinimumExchangeAmount is the smallest receive amount accepted without
// a warning. It is compared against the receive amount whatever crypto
// is selected and is always labelled in BTC.
const MinimumExchangeAmount = 0.000048

// InvalidAmountMessage is shown to the user when submit is rejected.
const InvalidAmountMessage = "Please enter valid amount in pay amount field"

// receivePrecision is the number of fractional digits kept in the
// receive amount.
const receivePrecision = 10

var (
	// ErrInvalidAmount is returned on submit when no valid pay amount is set.
	ErrInvalidAmount = errors.New("invalid pay amount")
	// ErrRateUnavailable is returned when the rates table has no usable
	// rate for the selected pair.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrUnknownSymbol is returned when a selection is not offered.
	ErrUnknownSymbol = errors.New("unknown selection")
)

// Form holds the exchange selection of one rendered page.
type Form struct {
	rates   model.RateTable
	catalog model.Catalog

	fiat          model.Currency
	crypto        model.Currency
	paymentMethod model.PaymentMethod

	entered       bool // pay amount field was touched at least once
	payAmount     int64
	receiveAmount float64
	belowMinimum  bool
}

// Receipt acknowledges a submitted order. Nothing is executed or stored.
type Receipt struct {
	Message       string  `json:"message"`
	PayAmount     int64   `json:"payAmount"`
	Fiat          string  `json:"fiat"`
	ReceiveAmount float64 `json:"receiveAmount"`
	Crypto        string  `json:"crypto"`
	PaymentMethod string  `json:"paymentMethod"`
}

// New creates a form over the given rates with default selections.
// When a default is not offered by the catalog the first offered entry is used.
func New(rates model.RateTable, catalog model.Catalog) *Form {
	f := &Form{rates: rates, catalog: catalog}

	if c, ok := catalog.Fiat(model.DefaultFiat); ok {
		f.fiat = c
	} else if len(catalog.Fiats) > 0 {
		f.fiat = catalog.Fiats[0]
	}

	if c, ok := catalog.Crypto(model.DefaultCrypto); ok {
		f.crypto = c
	} else if len(catalog.Cryptos) > 0 {
		f.crypto = catalog.Cryptos[0]
	}

	if pm, ok := catalog.PaymentMethod(model.DefaultPaymentMethod); ok {
		f.paymentMethod = pm
	} else if len(catalog.PaymentMethods) > 0 {
		f.paymentMethod = catalog.PaymentMethods[0]
	}

	return f
}

// SetPayAmount applies raw pay amount input. Input that has no leading
// integer, or reads as zero, resets both amounts to zero. Fractions are
// truncated.
func (f *Form) SetPayAmount(raw string) error {
	f.entered = true

	amount, ok := parseAmount(raw)
	if !ok || amount == 0 {
		f.payAmount = 0
		f.receiveAmount = 0
		return nil
	}

	f.payAmount = amount

	return f.Recompute()
}

// SelectFiat changes the fiat currency and recomputes.
func (f *Form) SelectFiat(symbol string) error {
	c, ok := f.catalog.Fiat(symbol)
	if !ok {
		return fmt.Errorf("fiat %q: %w", symbol, ErrUnknownSymbol)
	}

	f.fiat = c

	return f.Recompute()
}

// SelectCrypto changes the cryptocurrency and recomputes.
func (f *Form) SelectCrypto(symbol string) error {
	c, ok := f.catalog.Crypto(symbol)
	if !ok {
		return fmt.Errorf("crypto %q: %w", symbol, ErrUnknownSymbol)
	}

	f.crypto = c

	return f.Recompute()
}

// SelectPaymentMethod changes the payment method. The payment method
// takes no part in the conversion.
func (f *Form) SelectPaymentMethod(value string) error {
	pm, ok := f.catalog.PaymentMethod(value)
	if !ok {
		return fmt.Errorf("payment method %q: %w", value, ErrUnknownSymbol)
	}

	f.paymentMethod = pm

	return nil
}

// Recompute derives the receive amount and the minimum warning from
// the pay amount and the selected pair. It does nothing while the pay
// amount is zero, leaving the previous derived values in place.
// On ErrRateUnavailable the derived values are left unchanged.
func (f *Form) Recompute() error {
	if f.payAmount == 0 {
		return nil
	}

	rate, err := f.rates.Float(f.crypto.Symbol, f.fiat.Symbol)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return fmt.Errorf("%w: rate %v for pair %s/%s", ErrRateUnavailable, rate, f.crypto.Symbol, f.fiat.Symbol)
	}

	f.receiveAmount = Round(float64(f.payAmount) / rate)
	f.belowMinimum = f.receiveAmount < MinimumExchangeAmount

	return nil
}

// Submit acknowledges the order when a pay amount is set.
func (f *Form) Submit() (Receipt, error) {
	if f.payAmount == 0 {
		return Receipt{}, ErrInvalidAmount
	}

	return Receipt{
		Message:       fmt.Sprintf("Success! You bought %s %s", formatAmount(f.receiveAmount), f.crypto.Symbol),
		PayAmount:     f.payAmount,
		Fiat:          f.fiat.Symbol,
		ReceiveAmount: f.receiveAmount,
		Crypto:        f.crypto.Symbol,
		PaymentMethod: f.paymentMethod.Value,
	}, nil
}

func (f *Form) Fiat() model.Currency { return f.fiat }
func (f *Form) Crypto() model.Currency { return f.crypto }
func (f *Form) PaymentMethod() model.PaymentMethod { return f.paymentMethod }
func (f *Form) PayAmount() int64 { return f.payAmount }
func (f *Form) ReceiveAmount() float64 { return f.receiveAmount }
func (f *Form) BelowMinimum() bool { return f.belowMinimum }
func (f *Form) Catalog() model.Catalog { return f.catalog }

// Round fixes the exact binary value of x to ten fractional digits,
// halves rounding away from zero, and parses the result back.
func Round(x float64) float64 {
	exact := new(big.Rat).SetFloat64(x)
	if exact == nil {
		return x
	}

	r, err := decimal.NewFromString(exact.FloatString(receivePrecision))
	if err != nil {
		return x
	}

	f, _ := r.Float64()
	return f
}

func formatAmount(x float64) string {
	return decimal.NewFromFloat(x).String()
}
