package model

// unexported type to disable any new types
type currency string

const (
	Fiat   currency = currency("FIAT")   // Fiat represents physical currency
	Crypto currency = currency("CRYPTO") // Crypto represents crypto currency
)

// Currency holds information
// on the operating currency
type Currency struct {
	Name         string   `json:"name"`            // Display label of the currency
	Symbol       string   `json:"symbol"`          // Ticker symbol, uppercase
	CurrencyType currency `json:"type"`            // Currency type
	Glyph        string   `json:"glyph,omitempty"` // Sign shown next to fiat amounts
	Image        string   `json:"image,omitempty"` // Logo path for cryptos
	Alt          string   `json:"alt,omitempty"`   // Logo alt text
}

// PaymentMethod is a way of paying for the order.
type PaymentMethod struct {
	Value string `json:"value"`
	Title string `json:"title"`
}

// Default selections of a freshly rendered exchange page.
const (
	DefaultFiat          = "EUR"
	DefaultCrypto        = "BTC"
	DefaultPaymentMethod = "bank"
)

var (
	fiats = []Currency{
		{Name: "EUR", Symbol: "EUR", CurrencyType: Fiat, Glyph: "€"},
		{Name: "USD", Symbol: "USD", CurrencyType: Fiat, Glyph: "$"},
		{Name: "GBP", Symbol: "GBP", CurrencyType: Fiat, Glyph: "£"},
	}

	cryptos = []Currency{
		{Name: "BITCOIN", Symbol: "BTC", CurrencyType: Crypto, Image: "/btc.webp", Alt: "Bitcoin Logo"},
		{Name: "LITECOIN", Symbol: "LTC", CurrencyType: Crypto, Image: "/ltc.png", Alt: "Litecoin Logo"},
		{Name: "ETHEREUM", Symbol: "ETH", CurrencyType: Crypto, Image: "/eth.png", Alt: "Ethereum Logo"},
	}

	paymentMethods = []PaymentMethod{
		{Value: "bank", Title: "Easy bank transfer"},
		{Value: "credit", Title: "Credit card"},
		{Value: "debit", Title: "Debit card"},
	}
)

// Fiats returns the registered fiat currencies in display order.
func Fiats() []Currency {
	return append([]Currency(nil), fiats...)
}

// Cryptos returns the registered cryptocurrencies in display order.
func Cryptos() []Currency {
	return append([]Currency(nil), cryptos...)
}

// PaymentMethods returns the registered payment methods in display order.
func PaymentMethods() []PaymentMethod {
	return append([]PaymentMethod(nil), paymentMethods...)
}

// LookupFiat finds a registered fiat currency by symbol.
func LookupFiat(symbol string) (Currency, bool) {
	return lookup(fiats, symbol)
}

// LookupCrypto finds a registered cryptocurrency by symbol.
func LookupCrypto(symbol string) (Currency, bool) {
	return lookup(cryptos, symbol)
}

// LookupPaymentMethod finds a registered payment method by value.
func LookupPaymentMethod(value string) (PaymentMethod, bool) {
	for _, pm := range paymentMethods {
		if pm.Value == value {
			return pm, true
		}
	}

	return PaymentMethod{}, false
}

func lookup(list []Currency, symbol string) (Currency, bool) {
	for _, c := range list {
		if c.Symbol == symbol {
			return c, true
		}
	}

	return Currency{}, false
}
