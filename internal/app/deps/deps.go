package deps

import (
	"accounts/internal/config"
	"accounts/internal/core/domain/account"
	dl "accounts/internal/core/domain/logging"
	"accounts/internal/db"
	dbaccount "accounts/internal/db/account"
	"accounts/internal/http/metrics"
	emailvalidator "accounts/internal/implementations/email_validator"
	"accounts/internal/implementations/encrypter"
	"accounts/internal/implementations/logging"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB *pgxpool.Pool

	Now func() time.Time

	AccountRepository account.Repository
	Encrypter         account.Encrypter
	EmailValidator    account.EmailValidator

	MetricsRegistry *prometheus.Registry
	HTTPMetrics     *metrics.HTTPMetrics

	zapLogger *logging.ZapLogger
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	flushSentry := deps.initSentry()
	deps.applyMigrations()
	closePgxPool := deps.initPgxPool()
	deps.initMetrics()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.AccountRepository = dbaccount.NewPgxRepository(deps.DB)
	deps.initEncrypter()
	deps.EmailValidator = emailvalidator.NewOzzo()

	return deps, func() {
		closeFuncs := []func(){
			closePgxPool,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.zapLogger = logger
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initEncrypter() {
	bcryptEncrypter, err := encrypter.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create encrypter.", dl.Err(err))
		panic(err)
	}
	deps.Encrypter = bcryptEncrypter
}

func (deps *Deps) applyMigrations() {
	if deps.Config.MigrationsPath == "" {
		deps.Logger.Info(context.Background(), "Migrations path is not set, skipping migrations.")
		return
	}
	err := db.ApplyMigrations(deps.Config.MigrationsPath, deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Err(err))
		panic(err)
	}
	deps.Logger.Info(context.Background(), "DB migrations have been applied.")
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Err(err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initMetrics() {
	deps.MetricsRegistry = prometheus.NewRegistry()
	deps.MetricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.HTTPMetrics = metrics.New(deps.MetricsRegistry)
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.zapLogger.EnableSentry()
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
