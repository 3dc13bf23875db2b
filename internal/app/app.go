package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/motorline/partstore/config"
	"github.com/motorline/partstore/internal/adapter/httphandler"
	"github.com/motorline/partstore/internal/adapter/kafka"
	"github.com/motorline/partstore/internal/adapter/storage"
	"github.com/motorline/partstore/internal/core/service"
	"github.com/motorline/partstore/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	inquiry       schema.Serde
	productUpdate schema.Serde
}

type producers struct {
	inquiries      kafka.InquiryProducer
	productUpdates kafka.ProductUpdateProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	producers  producers
	sqldb      storage.SQLDB
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
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

	inquirySubject := app.cfg.Broker.Topics.Inquiries + "-value"
	inquirySerde, err := schema.NewSerdeInquiryV1(
		ctx,
		schema.SubjectOpt(inquirySubject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	updateSubject := app.cfg.Broker.Topics.ProductUpdates + "-value"
	updateSerde, err := schema.NewSerdeProductV1(
		ctx,
		schema.SubjectOpt(updateSubject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.inquiry = inquirySerde
	app.serdes.productUpdate = updateSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers

	inquiryProducer, err := kafka.NewInquiryProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, app.cfg.Broker.Topics.Inquiries),
		kafka.ProducerEncoderOpt(app.serdes.inquiry),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	updateProducer, err := kafka.NewProductUpdateProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, app.cfg.Broker.Topics.ProductUpdates),
		kafka.ProducerEncoderOpt(app.serdes.productUpdate),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	sqldb, err := storage.NewSQLDB(ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producers.inquiries = inquiryProducer
	app.producers.productUpdates = updateProducer
	app.sqldb = sqldb
}

func (app *App) initCoreService() {
	app.service = service.New(
		storage.NewProductsRepository(app.sqldb),
		storage.NewCategoriesRepository(app.sqldb),
		storage.NewStaticCatalog(),
		app.producers.inquiries,
		app.producers.productUpdates,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterAdmin(mux, app.service)
	httphandler.RegisterInquiries(mux, app.service)

	handler := httphandler.LogRequests(httphandler.AllowJSON(mux))
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
	app.producers.inquiries.Close()
	app.producers.productUpdates.Close()
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
