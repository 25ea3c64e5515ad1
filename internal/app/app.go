package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/checkout"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/identity"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/snapshot"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/adapter/storeapi"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	clientEvent schema.Serde
}

type outbound struct {
	store    storeapi.Client
	identity identity.Client
	snapshot snapshot.Catalog
	checkout checkout.SessionCreator
	sqldb    storage.SQLDB
	sessions storage.SessionsRepository
	events   kafka.ClientEventsProducer
}

type services struct {
	catalog service.CatalogService
	cart    *service.CartService
	auth    service.AuthService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	outbound   outbound
	services   services
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	clientEventSS := app.cfg.Broker.Topics.ClientEvents + "-value"
	clientEventSerde, err := schema.NewSerdeClientEventV1(
		ctx,
		schema.SubjectOpt(clientEventSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.clientEvent = clientEventSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx

	app.outbound.store = storeapi.NewClient(app.cfg.StoreAPI.BaseURL)

	app.outbound.identity = identity.NewClient(
		app.cfg.Identity.BaseURL, app.cfg.Identity.APIKey,
	)

	snapshotCatalog, err := snapshot.Load(app.cfg.Catalog.SnapshotPath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.snapshot = snapshotCatalog

	app.outbound.checkout = checkout.NewSessionCreator(
		app.cfg.Checkout.RedirectURL,
	)

	sqldb, err := storage.NewSQLDB(ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.sqldb = sqldb
	app.outbound.sessions = storage.NewSessionsRepository(sqldb.DB)

	eventsProducer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(
			ctx, app.cfg.Broker.SeedBrokers, app.cfg.Broker.Topics.ClientEvents,
		),
		kafka.ProducerEncoderOpt(app.serdes.clientEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.events = eventsProducer
}

func (app *App) initCoreServices() {
	app.services.catalog = service.NewCatalogService(
		app.outbound.store,
		app.outbound.store,
		app.outbound.snapshot,
		app.outbound.events,
		app.cfg.Catalog.PageSize,
	)

	app.services.cart = service.NewCartService(
		app.outbound.store,
		app.outbound.checkout,
		app.outbound.events,
	)

	app.services.auth = service.NewAuthService(
		app.outbound.identity,
		app.outbound.store,
		app.outbound.store,
		app.outbound.sessions,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.services.catalog, app.services.catalog)
	httphandler.RegisterCart(mux, app.services.cart)
	httphandler.RegisterAuth(mux, app.services.auth)

	handler := httphandler.CORS(httphandler.AllowJSON(mux))
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.outbound.events.Close()
	app.outbound.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
