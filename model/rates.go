package model

import (
	"fmt"
	"strconv"
)

// RateTable holds exchange rates as returned by the rates provider:
// crypto symbol -> fiat symbol -> units of fiat per unit of crypto.
// Values are kept as the decimal strings the provider sent.
type RateTable map[string]map[string]string

// Rate returns the raw rate string for given pair
func (t RateTable) Rate(crypto, fiat string) (string, bool) {
	fiats, ok := t[crypto]
	if !ok {
		return "", false
	}

	rate, ok := fiats[fiat]

	return rate, ok
}

// Float returns the rate for given pair parsed as float64
func (t RateTable) Float(crypto, fiat string) (float64, error) {
	raw, ok := t.Rate(crypto, fiat)
	if !ok {
		return 0, fmt.Errorf("no rate for pair: %s/%s", crypto, fiat)
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed rate %q for pair %s/%s: %w", raw, crypto, fiat, err)
	}

	return rate, nil
}
