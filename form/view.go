package form

import (
	"fmt"
	"strconv"

	"github.com/kylycht/buysell/model"
)

// View is a display snapshot of the form.
type View struct {
	Fiat          model.Currency      `json:"fiat"`
	Crypto        model.Currency      `json:"crypto"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod"`
	PayAmount     string              `json:"payAmount"`     // empty until the amount field is touched
	ReceiveAmount string              `json:"receiveAmount"` // empty until the amount field is touched
	BelowMinimum  bool                `json:"belowMinimum"`
	MinimumNotice string              `json:"minimumNotice,omitempty"`
	BuyLabel      string              `json:"buyLabel"`
}

// View renders the current state for display.
func (f *Form) View() View {
	v := View{
		Fiat:          f.fiat,
		Crypto:        f.crypto,
		PaymentMethod: f.paymentMethod,
		BelowMinimum:  f.belowMinimum,
		BuyLabel:      "Buy " + f.crypto.Symbol,
	}

	if f.entered {
		v.PayAmount = strconv.FormatInt(f.payAmount, 10)
		v.ReceiveAmount = formatAmount(f.receiveAmount)
	}

	if f.belowMinimum {
		v.MinimumNotice = fmt.Sprintf("Min amount is %s BTC", formatAmount(MinimumExchangeAmount))
	}

	return v
}
