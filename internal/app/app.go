package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/soares-modas/internal/cfg"
	v1Grpc "github.com/DRSN-tech/soares-modas/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/soares-modas/internal/delivery/v1/http"
	"github.com/DRSN-tech/soares-modas/internal/infrastructure/auth"
	"github.com/DRSN-tech/soares-modas/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/soares-modas/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/soares-modas/internal/repository/minio"
	"github.com/DRSN-tech/soares-modas/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/soares-modas/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/soares-modas/internal/repository/redis"
	redisConv "github.com/DRSN-tech/soares-modas/internal/repository/redis/converter"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/clients"
	"github.com/DRSN-tech/soares-modas/pkg/closer"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/DRSN-tech/soares-modas/pkg/postgres"
	"github.com/DRSN-tech/soares-modas/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout      = 10 * time.Second
	shutdownTimeout     = 10 * time.Second
	kafkaTopicTimeout   = 10 * time.Second
	maxImagesPerRequest = 10
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker
	// отменяется при остановке; по нему завершаются фоновые задачи
	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp поднимает зависимости и собирает сервис. Ресурсы, открытые до ошибки, закрываются.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(2 * time.Second),
		ctx:    ctx,
		cancel: cancel,
	}

	if err := a.init(); err != nil {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer closeCancel()
		if cerr := a.closer.Close(closeCtx); cerr != nil {
			logger.Warnf("%v", cerr)
		}
		cancel()
		return nil, err
	}

	return a, nil
}

func (a *App) init() error {
	cfg := a.cfg

	startCtx, startCancel := context.WithTimeout(a.ctx, startupTimeout)
	defer startCancel()

	db, err := initPGDB(startCtx, a.logger, cfg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("postgres", func(context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	a.closer.Add("redis", func(context.Context) error {
		return redisClient.Close()
	})
	if err := redisClient.Ping(startCtx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if err := clients.EnsureBucket(startCtx, minioClient, cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	trManager := tr.NewPgxManager(db.Pool)

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.ProductConv{})
	saleRepo := pgdb.NewSaleRepo(db.Pool, pgdbConv.SaleConv{})
	visitRepo := pgdb.NewVisitRepo(db.Pool, pgdbConv.SiteVisitConv{})
	promotionRepo := pgdb.NewPromotionRepo(db.Pool, pgdbConv.PromotionConv{})
	settingsRepo := pgdb.NewStoreSettingsRepo(db.Pool, pgdbConv.StoreSettingsConv{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConv{})
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.ProductConv{}, cfg.Redis, a.logger)
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, a.logger, a.ctx)
	a.closer.Add("minio cleanup", func(ctx context.Context) error {
		defer a.cancel()
		return imagesInfra.WaitForCleanup(ctx)
	})

	credentials, err := auth.NewBcryptCredentialStore(cfg.Admin)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize admin credentials")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := a.initOutbox(outboxRepo, db.Dsn); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	loc := cfg.Store.Location
	productUC := usecase.NewProductUC(productRepo, outboxRepo, trManager, cacheRepo, imagesInfra, a.logger, time.Now)
	useCases := v1Http.UseCases{
		Product:   productUC,
		Sale:      usecase.NewSaleUC(saleRepo, productRepo, outboxRepo, trManager, loc, time.Now),
		Visit:     usecase.NewVisitUC(visitRepo, time.Now),
		Analytics: usecase.NewAnalyticsUC(saleRepo, visitRepo, productRepo, loc),
		Promotion: usecase.NewPromotionUC(promotionRepo, loc, time.Now),
		Store:     usecase.NewStoreUC(settingsRepo, trManager, cfg.Store.Name, time.Now),
		Auth:      usecase.NewAuthUC(credentials, cfg.Admin.Token, a.logger),
		Cart:      usecase.NewCartUC(productUC, cfg.Store.WhatsAppPhone),
		Image:     usecase.NewImageUC(imagesInfra, maxImagesPerRequest),
	}

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, a.logger)
	a.grpcSrv.RegisterServices(productUC)
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(useCases, cfg.Http.SwaggerURL)
	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.closer.Add("http server", a.httpSrv.Stop)

	return nil
}

// initOutbox запускает публикацию событий в Kafka. Без брокеров события остаются в outbox со статусом pending.
func (a *App) initOutbox(outboxRepo usecase.OutboxRepository, dsn string) error {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Warnf("KAFKA_BROKERS is empty, outbox events will not be published")
		return nil
	}

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize kafka producer")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("kafka producer", func(context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(kafkaTopicTimeout); err != nil {
		a.logger.Errorf(err, "failed to ensure kafka topic %s", a.cfg.Kafka.Topic)
		return e.Wrap(whereami.WhereAmI(), err)
	}

	a.worker = kafka.NewOutboxWorker(outboxRepo, a.logger, producer, dsn)
	a.closer.Add("outbox worker", func(context.Context) error {
		a.worker.Stop()
		return nil
	})
	return nil
}

// Run запускает серверы и блокируется до сигнала остановки или падения сервера.
func (a *App) Run() error {
	if a.worker != nil {
		a.worker.Start(a.ctx)
	}

	errCh := make(chan error, 2)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("grpc server", err)
		}
	}()
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("http server", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("received %s, stopping gracefully...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			a.logger.Warnf("shutdown timeout: %v", err)
		} else {
			a.logger.Errorf(err, "shutdown error")
		}
	}
	a.cancel()

	a.logger.Infof("Application shutdown complete")
	_ = a.logger.Sync()
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		db.Close()
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
