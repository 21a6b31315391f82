package storage

import (
	"context"
	"errors"

	"github.com/kylycht/buysell/form"
	"github.com/kylycht/buysell/model"
)

// ErrSessionNotFound is returned for unknown
// or already evicted page sessions
var ErrSessionNotFound = errors.New("session not found")

// Storage interface describes methods of
// the currency catalog storage
type Storage interface {
	// Load loads all available currencies
	// from the storage
	// First slice contains all fiat currencies
	// followed by crypto
	Load(ctx context.Context) ([]model.Currency, []model.Currency, error)
}

// Sessions interface describes non-persistent
// storage for the forms of rendered pages
type Sessions interface {
	// Create stores the form and
	// returns the id of its session
	Create(f *form.Form) string

	// With runs fn against the form of given session.
	// Calls for one session never overlap
	With(id string, fn func(f *form.Form) error) error

	// Delete drops the session
	Delete(id string)

	// Len returns number of live sessions
	Len() int
}

// Registry serves the static currency registry
type Registry struct{}

// Load implements storage.Storage.
func (Registry) Load(context.Context) ([]model.Currency, []model.Currency, error) {
	return model.Fiats(), model.Cryptos(), nil
}

// LoadCatalog builds the page catalog from the storage
func LoadCatalog(ctx context.Context, s Storage) (model.Catalog, error) {
	fiats, cryptos, err := s.Load(ctx)
	if err != nil {
		return model.Catalog{}, err
	}

	return model.Catalog{
		Fiats:          fiats,
		Cryptos:        cryptos,
		PaymentMethods: model.PaymentMethods(),
	}, nil
}
