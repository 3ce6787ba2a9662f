package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/config"
	"github.com/Amitjang/XAlISS-SERVER/internal/handlers"
	"github.com/Amitjang/XAlISS-SERVER/internal/jobs"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
	"github.com/Amitjang/XAlISS-SERVER/internal/repo"
	"github.com/Amitjang/XAlISS-SERVER/internal/service"
	"github.com/Amitjang/XAlISS-SERVER/pkg/auth"
	"github.com/Amitjang/XAlISS-SERVER/pkg/clients"
	"github.com/Amitjang/XAlISS-SERVER/pkg/ledger"
	"github.com/Amitjang/XAlISS-SERVER/pkg/logger"
	"github.com/Amitjang/XAlISS-SERVER/pkg/rabbitmq"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *jobs.Scheduler
	pool      *pgxpool.Pool
	publisher rabbitmq.Publisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	ledgerClient := ledger.New(cfg.LedgerAddress, clients.NewHTTPClient(), cfg.LedgerTimeout)

	a.cfg = cfg
	a.pool = pool
	a.publisher = rabbitmq.NewPublisher(cfg.AMQPURL)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, ledgerClient, a.publisher, jwtService)
	a.api = handlers.New(a.srv, jwtService, cfg.InternalAPIKey, cfg.Location())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) error {
	loc := a.cfg.Location()
	workerPool := jobs.NewWorkerPool(a.cfg.Workers)
	a.scheduler = jobs.NewScheduler(loc)

	dueCollections := jobs.NewDueCollectionsJob(a.srv.CollectionService, a.repo.PartyRepo, a.srv.NotifyService, workerPool)
	if err := a.scheduler.Register(a.cfg.DailyJobSchedule, dueCollections); err != nil {
		workerPool.Close()
		return err
	}
	monthEnd := jobs.NewMonthEndJob(a.srv.ReconcileService, loc)
	if err := a.scheduler.Register(a.cfg.MonthlyJobSchedule, monthEnd); err != nil {
		workerPool.Close()
		return err
	}

	a.scheduler.Start()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		a.scheduler.Stop(sCtx)
		workerPool.Close()
		a.publisher.Close()
		a.pool.Close()
		zap.L().Info("scheduler stopped")
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
