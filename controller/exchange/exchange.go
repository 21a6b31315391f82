package exchange

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kylycht/buysell/form"
	"github.com/kylycht/buysell/metrics"
	"github.com/kylycht/buysell/model"
	"github.com/kylycht/buysell/service"
	"github.com/kylycht/buysell/storage"
	"github.com/rs/zerolog/log"
)

// ValueRequest carries the new value of a form field
type ValueRequest struct {
	Value string `json:"value" example:"1000"`
}

// ErrorResponse is returned by the API on failure
type ErrorResponse struct {
	Error string `json:"error" example:"session not found"`
}

func New(rates service.Rates, catalog model.Catalog, sessions storage.Sessions, m *metrics.ExchangeMetrics, fetchTimeout time.Duration) *Exchange {
	return &Exchange{
		rates:        rates,
		catalog:      catalog,
		sessions:     sessions,
		metrics:      m,
		fetchTimeout: fetchTimeout,
	}
}

type Exchange struct {
	rates        service.Rates            // rates provider queried once per page
	catalog      model.Catalog            // currencies offered on the page
	sessions     storage.Sessions         // forms of rendered pages
	metrics      *metrics.ExchangeMetrics // page metrics
	fetchTimeout time.Duration            // upper bound of a rates fetch
}

// Register mounts page and API routes
func (e *Exchange) Register(app fiber.Router) {
	app.Get("/", e.Home)
	app.Get("/buy-sell", e.Page)

	api := app.Group("/api")
	api.Get("/currencies", e.Currencies)
	api.Get("/exchange/:id", e.State)
	api.Post("/exchange/:id/amount", e.Amount)
	api.Post("/exchange/:id/fiat", e.Fiat)
	api.Post("/exchange/:id/crypto", e.Crypto)
	api.Post("/exchange/:id/payment", e.Payment)
	api.Post("/exchange/:id/submit", e.Submit)
	api.Post("/exchange/:id/close", e.Close)
}

// Page godoc
//
//	@Summary		Buy & Sell page
//	@Description	fetches exchange rates once, they stay fixed for the lifetime of the page session
//	@Tags			pages
//	@Produce		html
//	@Success		200	{string}	string
//	@Failure		502	{string}	string	"Exchange rates are unavailable"
//	@Router			/buy-sell [get]
func (e *Exchange) Page(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if e.fetchTimeout > 0 {
		var cancelFn context.CancelFunc
		ctx, cancelFn = context.WithTimeout(ctx, e.fetchTimeout)
		defer cancelFn()
	}

	start := time.Now()
	rates, err := e.rates.GetRates(ctx)
	e.metrics.RateFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		e.metrics.RateFetchesTotal.WithLabelValues("error").Inc()
		log.Error().Err(err).Msg("unable to fetch exchange rates")

		return renderError(c, fiber.StatusBadGateway, "Exchange rates are unavailable, please try again later.")
	}

	e.metrics.RateFetchesTotal.WithLabelValues("ok").Inc()

	f := form.New(rates, e.catalog)
	id := e.sessions.Create(f)

	log.Debug().Str("session", id).Msg("exchange page rendered")

	return renderPage(c, pageData{
		SessionID: id,
		Catalog:   e.catalog,
		View:      f.View(),
	})
}

// Home godoc
//
//	@Summary	Landing page
//	@Tags		pages
//	@Produce	html
//	@Success	200	{string}	string
//	@Router		/ [get]
func (e *Exchange) Home(c *fiber.Ctx) error {
	return renderHome(c)
}

// Currencies godoc
//
//	@Summary		List offered currencies
//	@Description	fiat currencies, cryptocurrencies and payment methods offered on the page
//	@Tags			exchange
//	@Produce		json
//	@Success		200	{object}	model.Catalog
//	@Router			/api/currencies [get]
func (e *Exchange) Currencies(c *fiber.Ctx) error {
	return c.JSON(e.catalog)
}

// State godoc
//
//	@Summary	Current state of the exchange form
//	@Tags		exchange
//	@Produce	json
//	@Param		id	path		string	true	"Session ID"
//	@Success	200	{object}	form.View
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/exchange/{id} [get]
func (e *Exchange) State(c *fiber.Ctx) error {
	return e.apply(c, "state", func(*form.Form, string) error { return nil })
}

// Amount godoc
//
//	@Summary		Set pay amount
//	@Description	integer part of value is used, invalid or zero input resets amounts
//	@Tags			exchange
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Session ID"
//	@Param			request	body		ValueRequest	true	"Pay amount"
//	@Success		200		{object}	form.View
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/exchange/{id}/amount [post]
func (e *Exchange) Amount(c *fiber.Ctx) error {
	return e.apply(c, "amount", (*form.Form).SetPayAmount)
}

// Fiat godoc
//
//	@Summary	Select fiat currency
//	@Tags		exchange
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Session ID"
//	@Param		request	body		ValueRequest	true	"Fiat symbol" example(USD)
//	@Success	200		{object}	form.View
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/exchange/{id}/fiat [post]
func (e *Exchange) Fiat(c *fiber.Ctx) error {
	return e.apply(c, "fiat", (*form.Form).SelectFiat)
}

// Crypto godoc
//
//	@Summary	Select cryptocurrency
//	@Tags		exchange
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Session ID"
//	@Param		request	body		ValueRequest	true	"Crypto symbol" example(LTC)
//	@Success	200		{object}	form.View
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/exchange/{id}/crypto [post]
func (e *Exchange) Crypto(c *fiber.Ctx) error {
	return e.apply(c, "crypto", (*form.Form).SelectCrypto)
}

// Payment godoc
//
//	@Summary	Select payment method
//	@Tags		exchange
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Session ID"
//	@Param		request	body		ValueRequest	true	"Payment method" example(credit)
//	@Success	200		{object}	form.View
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/exchange/{id}/payment [post]
func (e *Exchange) Payment(c *fiber.Ctx) error {
	return e.apply(c, "payment", (*form.Form).SelectPaymentMethod)
}

// Submit godoc
//
//	@Summary		Submit the order
//	@Description	acknowledges the order, nothing is executed or stored
//	@Tags			exchange
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	form.Receipt
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse	"Please enter valid amount in pay amount field"
//	@Router			/api/exchange/{id}/submit [post]
func (e *Exchange) Submit(c *fiber.Ctx) error {
	var receipt form.Receipt

	err := e.sessions.With(c.Params("id"), func(f *form.Form) error {
		r, err := f.Submit()
		if err != nil {
			e.metrics.SubmissionsTotal.WithLabelValues("rejected", f.Crypto().Symbol).Inc()
			return err
		}

		receipt = r
		return nil
	})
	if err != nil {
		return err
	}

	e.metrics.SubmissionsTotal.WithLabelValues("accepted", receipt.Crypto).Inc()

	log.Info().
		Int64("payAmount", receipt.PayAmount).
		Str("fiat", receipt.Fiat).
		Float64("receiveAmount", receipt.ReceiveAmount).
		Str("crypto", receipt.Crypto).
		Str("paymentMethod", receipt.PaymentMethod).
		Msg("order submitted")

	return c.JSON(receipt)
}

// Close godoc
//
//	@Summary		Close the page session
//	@Description	sent by the page when the user navigates away, unknown sessions are ignored
//	@Tags			exchange
//	@Param			id	path	string	true	"Session ID"
//	@Success		204
//	@Router			/api/exchange/{id}/close [post]
func (e *Exchange) Close(c *fiber.Ctx) error {
	id := c.Params("id")
	e.sessions.Delete(id)
	e.metrics.FormEventsTotal.WithLabelValues("close", "ok").Inc()

	log.Debug().Str("session", id).Msg("exchange page closed")

	return c.SendStatus(fiber.StatusNoContent)
}

func (e *Exchange) apply(c *fiber.Ctx, operation string, op func(*form.Form, string) error) error {
	var req ValueRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			e.metrics.FormEventsTotal.WithLabelValues(operation, "bad_request").Inc()
			return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
		}
	}

	var view form.View

	err := e.sessions.With(c.Params("id"), func(f *form.Form) error {
		err := op(f, req.Value)
		view = f.View()
		return err
	})
	if err != nil {
		e.metrics.FormEventsTotal.WithLabelValues(operation, "error").Inc()
		return err
	}

	e.metrics.FormEventsTotal.WithLabelValues(operation, "ok").Inc()

	return c.JSON(view)
}

// ErrorHandler maps errors of the exchange handlers
// to status codes and a JSON body
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()

	var fe *fiber.Error

	switch {
	case errors.As(err, &fe):
		code = fe.Code
		msg = fe.Message
	case errors.Is(err, storage.ErrSessionNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, form.ErrUnknownSymbol):
		code = fiber.StatusBadRequest
	case errors.Is(err, form.ErrInvalidAmount):
		code = fiber.StatusUnprocessableEntity
		msg = form.InvalidAmountMessage
	case errors.Is(err, form.ErrRateUnavailable):
		code = fiber.StatusBadGateway
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(ErrorResponse{Error: msg})
}
