package persistence

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kylycht/buysell/model"
	"github.com/kylycht/buysell/storage"
	"github.com/rs/zerolog/log"
)

type Persistence struct {
	dbConn *sql.DB
}

func New(dbConn *sql.DB) storage.Storage {
	return &Persistence{
		dbConn: dbConn,
	}
}

// Load implements storage.Storage.
// Only currencies present in the static registry are returned,
// in registry order, with the registry's display metadata.
func (p *Persistence) Load(ctx context.Context) ([]model.Currency, []model.Currency, error) {
	loadQuery := `SELECT symbol, currency_type 
				 FROM currency 
				 WHERE is_available=true`

	available := map[string]bool{}

	rows, err := p.dbConn.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var symbol, currencyType string

		if err := rows.Scan(&symbol, &currencyType); err != nil {
			return nil, nil, err
		}

		available[strings.ToUpper(currencyType)+"/"+strings.ToUpper(symbol)] = true
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	fiats := filter(model.Fiats(), available)
	cryptos := filter(model.Cryptos(), available)

	log.Debug().Int("fiats", len(fiats)).Int("cryptos", len(cryptos)).Msg("loaded available currencies")

	return fiats, cryptos, nil
}

func filter(registry []model.Currency, available map[string]bool) []model.Currency {
	var result []model.Currency

	for _, c := range registry {
		if available[string(c.CurrencyType)+"/"+c.Symbol] {
			result = append(result, c)
		}
	}

	return result
}
