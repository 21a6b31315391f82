package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/kylycht/buysell/controller/exchange"
	_ "github.com/kylycht/buysell/docs"
	"github.com/kylycht/buysell/metrics"
	"github.com/kylycht/buysell/model"
	"github.com/kylycht/buysell/service"
	"github.com/kylycht/buysell/service/coingate"
	"github.com/kylycht/buysell/storage"
	"github.com/kylycht/buysell/storage/cache"
	"github.com/kylycht/buysell/storage/persistence"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

//	@title			Buy & Sell
//	@version		1.0
//	@description	Simulated fiat-to-crypto purchase page

// @host		localhost:3000
func main() {
	app := &cli.App{
		Name:  "buysell",
		Usage: "serve the Buy & Sell crypto exchange page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the yaml configuration file",
				EnvVars: []string{"BUYSELL_CONFIG"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := LoadConfig(cCtx.String("config"))
			if err != nil {
				log.Error().Err(err).Msg("unable to read configuration file")
				return err
			}

			setupLogger(cfg)

			return New(cfg)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("unable to initialize application")
		os.Exit(1)
	}
}

func setupLogger(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func New(cfg Config) error {
	a := Application{cfg: cfg}
	return a.init()
}

type Application struct {
	cfg      Config          // application configuration
	fiberApp *fiber.App      // underlying fiber application
	db       storage.Storage // currency catalog provider
	dbConn   *sql.DB         // underlying persistence connection, nil without database
	sessions *cache.MCache   // forms of rendered pages
	rates    service.Rates   // exchange rates provider
	catalog  model.Catalog   // currencies offered on the page
	stopC    chan os.Signal  // handle interrupt for clean up(close connections, etc)
	doneC    chan struct{}   // closed once clean up finished
}

func (a *Application) init() error {
	a.fiberApp = fiber.New(fiber.Config{
		ErrorHandler: exchange.ErrorHandler,
	})
	a.stopC = make(chan os.Signal, 1)
	a.doneC = make(chan struct{})
	signal.Notify(a.stopC, os.Interrupt)

	if err := a.initStorage(); err != nil {
		return err
	}

	ctx, cancelFn := context.WithTimeout(context.Background(), time.Second*10)
	defer cancelFn()

	catalog, err := storage.LoadCatalog(ctx, a.db)
	if err != nil {
		log.Error().Err(err).Msg("unable to load currencies")
		return err
	}

	a.catalog = catalog

	rates, err := coingate.New(coingate.Config{
		URL:         a.cfg.RatesURL,
		Timeout:     a.cfg.RatesTimeout,
		MaxInFlight: a.cfg.RatesMaxInFlight,
	})
	if err != nil {
		log.Error().Err(err).Msg("unable to create rates client")
		return err
	}

	a.rates = rates
	a.sessions = cache.New(a.cfg.SessionTTL)
	a.buildRoutes()
	go a.stop()
	log.Debug().Msg("preparing fiber http server")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
		return err
	}

	<-a.doneC

	return nil
}

func (a *Application) initStorage() error {
	connStr := a.cfg.DSN()
	if connStr == "" {
		log.Debug().Msg("no database configured, using static currency registry")
		a.db = storage.Registry{}
		return nil
	}

	log.Debug().Str("host", a.cfg.DBHost).Msg("initialize db connection")

	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Error().Err(err).Msg("unable to connect to db")
		return err
	}

	a.dbConn = dbConn
	a.db = persistence.New(dbConn)

	return nil
}

func (a *Application) buildRoutes() {
	m := metrics.New(prometheus.DefaultRegisterer, a.sessions.Len)

	a.fiberApp.Use(recover.New())
	a.fiberApp.Use(exchange.RequestLogger())

	a.fiberApp.Get("/swagger/*", swagger.HandlerDefault)
	a.fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	exchange.New(a.rates, a.catalog, a.sessions, m, a.cfg.RatesTimeout).Register(a.fiberApp)
}

func (a *Application) stop() {
	<-a.stopC
	log.Info().Msg("shutting down")

	if err := a.fiberApp.Shutdown(); err != nil {
		log.Error().Err(err).Msg("unable to shutdown http server")
	}

	a.sessions.Close()

	if a.dbConn != nil {
		a.dbConn.Close()
	}

	close(a.doneC)
}
