package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/htmlscan/analyzer"
	"github.com/Drolfothesgnir/htmlscan/api"
	"github.com/Drolfothesgnir/htmlscan/batch"
	db "github.com/Drolfothesgnir/htmlscan/db/sqlc"
	"github.com/Drolfothesgnir/htmlscan/tmpstore"
	"github.com/Drolfothesgnir/htmlscan/util"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	a, err := newAnalyzer(config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot configure the analyzer")
	}

	log.Info().
		Str("tokenizer", a.Patterns().Name()).
		Int("max_workers", config.MaxWorkers).
		Msg("analyzer configured")

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// Postgres connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}

	store := db.NewStore(conn)

	// running db migrations every time the server starts
	// it's idempotent, so the schema establishes only once if no new versions added
	runDBMigration(config.MigrationURL, config.DBSource)

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, batch.NewDispatcher(a, config.MaxWorkers), store)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// newAnalyzer builds the analyzer from the tokenizer mode, the optional rules file
// and the per-document errors cap.
func newAnalyzer(config util.Config) (*analyzer.Analyzer, error) {
	patterns, err := analyzer.PatternsByMode(config.TokenizerMode)
	if err != nil {
		return nil, err
	}

	rules := analyzer.DefaultRules()
	if config.RulesFile != "" {
		rc, err := util.LoadRules(config.RulesFile)
		if err != nil {
			return nil, err
		}

		rules, err = analyzer.NewRules(rc.SelfClosing, rc.AllowedAttributes)
		if err != nil {
			return nil, err
		}
	}

	return analyzer.New(rules, patterns,
		analyzer.WithErrorsCap(analyzer.ErrOverflowTrunc, config.MaxErrorsPerDocument),
	), nil
}

func runDBMigration(migrationURL string, dbSource string) {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	dispatcher *batch.Dispatcher,
	store db.Store,
) {
	rs := tmpstore.NewStore(&config)

	if err := rs.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis is not reachable, results will be read from the database")
	}

	service, err := api.NewService(config, dispatcher, store, rs)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", service.Addr())

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the db connection pool and the redis client
		store.Shutdown()
		if cerr := rs.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("cannot close redis client")
		}

		log.Info().Msg("HTTP server is stopped")

		return err
	})
}
