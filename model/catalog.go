package model

// Catalog is the set of currencies and payment
// methods offered on the exchange page
type Catalog struct {
	Fiats          []Currency      `json:"fiats"`
	Cryptos        []Currency      `json:"cryptos"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// DefaultCatalog returns the full static registry
func DefaultCatalog() Catalog {
	return Catalog{
		Fiats:          Fiats(),
		Cryptos:        Cryptos(),
		PaymentMethods: PaymentMethods(),
	}
}

// Fiat returns the offered fiat currency with given symbol
func (c Catalog) Fiat(symbol string) (Currency, bool) {
	return lookup(c.Fiats, symbol)
}

// Crypto returns the offered cryptocurrency with given symbol
func (c Catalog) Crypto(symbol string) (Currency, bool) {
	return lookup(c.Cryptos, symbol)
}

// PaymentMethod returns the offered payment method with given value
func (c Catalog) PaymentMethod(value string) (PaymentMethod, bool) {
	for _, pm := range c.PaymentMethods {
		if pm.Value == value {
			return pm, true
		}
	}

	return PaymentMethod{}, false
}
