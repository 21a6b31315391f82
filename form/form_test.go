package form

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/kylycht/buysell/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() model.RateTable {
	return model.RateTable{
		"BTC": {"EUR": "47000.0", "USD": "50000", "GBP": "40000"},
		"LTC": {"EUR": "80.0", "USD": "90"},
		"ETH": {"EUR": "2500", "USD": "0", "GBP": "abc"},
	}
}

func newTestForm() *Form {
	return New(testRates(), model.DefaultCatalog())
}

func TestNew_Defaults(t *testing.T) {
	f := newTestForm()

	assert.Equal(t, "EUR", f.Fiat().Symbol)
	assert.Equal(t, "BTC", f.Crypto().Symbol)
	assert.Equal(t, "bank", f.PaymentMethod().Value)
	assert.Zero(t, f.PayAmount())
	assert.Zero(t, f.ReceiveAmount())
	assert.False(t, f.BelowMinimum())

	v := f.View()
	assert.Empty(t, v.PayAmount)
	assert.Empty(t, v.ReceiveAmount)
	assert.Equal(t, "Buy BTC", v.BuyLabel)
}

func TestNew_DefaultsMissingFromCatalog(t *testing.T) {
	catalog := model.Catalog{
		Fiats:          []model.Currency{{Symbol: "USD", CurrencyType: model.Fiat}},
		Cryptos:        []model.Currency{{Symbol: "ETH", CurrencyType: model.Crypto}},
		PaymentMethods: model.PaymentMethods(),
	}

	f := New(testRates(), catalog)
	assert.Equal(t, "USD", f.Fiat().Symbol)
	assert.Equal(t, "ETH", f.Crypto().Symbol)
}

func TestSetPayAmount_Scenarios(t *testing.T) {
	f := New(model.RateTable{"BTC": {"EUR": "47000.0"}}, model.DefaultCatalog())

	require.NoError(t, f.SetPayAmount("1000"))
	assert.Equal(t, int64(1000), f.PayAmount())
	assert.Equal(t, 0.0212765957, f.ReceiveAmount())
	assert.False(t, f.BelowMinimum())

	require.NoError(t, f.SetPayAmount("1"))
	assert.Equal(t, 0.0000212766, f.ReceiveAmount())
	assert.True(t, f.BelowMinimum())
	assert.Equal(t, "Min amount is 0.000048 BTC", f.View().MinimumNotice)
}

// fixed10 rounds the exact value of a non-negative x to ten fractional
// digits, ties upward: floor(x*1e10 + 1/2) / 1e10.
func fixed10(x float64) float64 {
	scale := big.NewInt(10_000_000_000)

	scaled := new(big.Rat).SetFloat64(x)
	scaled.Mul(scaled, new(big.Rat).SetInt(scale))
	scaled.Add(scaled, big.NewRat(1, 2))

	n := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	f, _ := new(big.Rat).SetFrac(n, scale).Float64()

	return f
}

func TestSetPayAmount_ReceiveIsRoundedQuotient(t *testing.T) {
	rates := testRates()
	for _, amount := range []int64{1, 7, 99, 1000, 85487, 123236, 123456} {
		for _, pair := range [][2]string{{"BTC", "EUR"}, {"BTC", "USD"}, {"LTC", "EUR"}, {"ETH", "EUR"}} {
			f := New(rates, model.DefaultCatalog())
			require.NoError(t, f.SelectCrypto(pair[0]))
			require.NoError(t, f.SelectFiat(pair[1]))
			require.NoError(t, f.SetPayAmount(strconv.FormatInt(amount, 10)))

			rate, err := rates.Float(pair[0], pair[1])
			require.NoError(t, err)

			want := fixed10(float64(amount) / rate)
			assert.Equal(t, want, f.ReceiveAmount(), "%d %s/%s", amount, pair[0], pair[1])
			assert.Equal(t, want < MinimumExchangeAmount, f.BelowMinimum())
		}
	}
}

// The shortest decimal form of these quotients ends in 5 at the eleventh
// digit while the binary value lies just below it.
func TestSetPayAmount_RoundsBinaryValue(t *testing.T) {
	rates := model.RateTable{"BTC": {"EUR": "12345.67"}}

	tests := []struct {
		amount string
		want   float64
	}{
		{"85487", 6.9244520548},
		{"123236", 9.9821232869},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			f := New(rates, model.DefaultCatalog())
			require.NoError(t, f.SetPayAmount(tt.amount))
			assert.Equal(t, tt.want, f.ReceiveAmount())
		})
	}
}

func TestSetPayAmount_Parsing(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"42", 42},
		{"12.9", 12},
		{"  7", 7},
		{"+15", 15},
		{"-5", -5},
		{"1e3", 1},
		{"300abc", 300},
	}

	for _, tc := range cases {
		f := newTestForm()
		require.NoError(t, f.SetPayAmount(tc.raw))
		assert.Equal(t, tc.want, f.PayAmount(), tc.raw)
	}
}

func TestSetPayAmount_InvalidResets(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "0.7", "-", ".5", "99999999999999999999"} {
		f := newTestForm()
		require.NoError(t, f.SetPayAmount("1000"))
		require.NotZero(t, f.ReceiveAmount())

		require.NoError(t, f.SetPayAmount(raw))
		assert.Zero(t, f.PayAmount(), raw)
		assert.Zero(t, f.ReceiveAmount(), raw)

		v := f.View()
		assert.Equal(t, "0", v.PayAmount)
		assert.Equal(t, "0", v.ReceiveAmount)
	}
}

func TestSetPayAmount_NegativeIsBelowMinimum(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetPayAmount("-470"))
	assert.Equal(t, -0.01, f.ReceiveAmount())
	assert.True(t, f.BelowMinimum())
}

func TestSelectCrypto_RecomputesWithoutReentry(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetPayAmount("1000"))
	btc := f.ReceiveAmount()

	require.NoError(t, f.SelectCrypto("LTC"))
	assert.Equal(t, 12.5, f.ReceiveAmount())
	assert.NotEqual(t, btc, f.ReceiveAmount())
	assert.Equal(t, "Buy LTC", f.View().BuyLabel)
}

func TestSelectFiat_Recomputes(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetPayAmount("1000"))

	require.NoError(t, f.SelectFiat("USD"))
	assert.Equal(t, 0.02, f.ReceiveAmount())
	assert.Equal(t, "$", f.View().Fiat.Glyph)
}

func TestMinimumIgnoresSelectedCrypto(t *testing.T) {
	// 1 EUR buys 0.0004 ETH which is above the threshold even though
	// the threshold is expressed in BTC.
	f := newTestForm()
	require.NoError(t, f.SelectCrypto("ETH"))
	require.NoError(t, f.SetPayAmount("1"))
	assert.Equal(t, 0.0004, f.ReceiveAmount())
	assert.False(t, f.BelowMinimum())
}

func TestSelectPaymentMethod_DoesNotRecompute(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetPayAmount("1000"))
	before := f.ReceiveAmount()

	require.NoError(t, f.SelectPaymentMethod("credit"))
	assert.Equal(t, "credit", f.PaymentMethod().Value)
	assert.Equal(t, before, f.ReceiveAmount())
}

func TestSelect_UnknownSymbol(t *testing.T) {
	f := newTestForm()

	assert.ErrorIs(t, f.SelectFiat("JPY"), ErrUnknownSymbol)
	assert.ErrorIs(t, f.SelectCrypto("DOGE"), ErrUnknownSymbol)
	assert.ErrorIs(t, f.SelectPaymentMethod("cash"), ErrUnknownSymbol)
	assert.Equal(t, "EUR", f.Fiat().Symbol)
	assert.Equal(t, "BTC", f.Crypto().Symbol)
	assert.Equal(t, "bank", f.PaymentMethod().Value)
}

func TestRecompute_RateUnavailable(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetPayAmount("1000"))

	// ETH/USD is zero, ETH/GBP is malformed, LTC/GBP is missing
	require.NoError(t, f.SelectFiat("USD"))
	assert.ErrorIs(t, f.SelectCrypto("ETH"), ErrRateUnavailable)
	assert.Equal(t, "ETH", f.Crypto().Symbol)
	assert.Equal(t, 0.02, f.ReceiveAmount())

	assert.ErrorIs(t, f.SelectFiat("GBP"), ErrRateUnavailable)
	assert.ErrorIs(t, f.SelectCrypto("LTC"), ErrRateUnavailable)
	assert.Equal(t, 0.02, f.ReceiveAmount())
}

func TestRecompute_SkippedForZeroAmount(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetPayAmount("1"))
	require.True(t, f.BelowMinimum())

	// resetting the amount clears the receive amount but the warning
	// keeps its last computed value
	require.NoError(t, f.SetPayAmount("abc"))
	assert.Zero(t, f.ReceiveAmount())
	assert.True(t, f.BelowMinimum())

	require.NoError(t, f.SelectCrypto("LTC"))
	assert.Zero(t, f.ReceiveAmount())
}

func TestRecompute_NilRates(t *testing.T) {
	f := New(nil, model.DefaultCatalog())
	assert.ErrorIs(t, f.SetPayAmount("10"), ErrRateUnavailable)
}

func TestSubmit(t *testing.T) {
	f := newTestForm()

	_, err := f.Submit()
	assert.ErrorIs(t, err, ErrInvalidAmount)

	require.NoError(t, f.SetPayAmount("1000"))
	require.NoError(t, f.SelectPaymentMethod("debit"))

	r, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Success! You bought 0.0212765957 BTC", r.Message)
	assert.Equal(t, int64(1000), r.PayAmount)
	assert.Equal(t, "EUR", r.Fiat)
	assert.Equal(t, 0.0212765957, r.ReceiveAmount)
	assert.Equal(t, "BTC", r.Crypto)
	assert.Equal(t, "debit", r.PaymentMethod)

	require.NoError(t, f.SetPayAmount("0"))
	_, err = f.Submit()
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.0004882813, Round(1.0/2048))
	assert.Equal(t, 0.3333333333, Round(1.0/3))
	assert.Equal(t, 2.0, Round(2))
	assert.Equal(t, -0.0004882813, Round(-1.0/2048))
}
