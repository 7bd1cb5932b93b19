package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/m4tags/api"
	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/Drolfothesgnir/m4tags/index"
	"github.com/Drolfothesgnir/m4tags/tmpstore"
	"github.com/Drolfothesgnir/m4tags/util"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
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

const usage = `usage:
  m4tags [-o FILE] [-persist] [-config DIR] [-v] PATH...
  m4tags serve [-config DIR]
`

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		os.Exit(serve(os.Args[2:]))
	}

	os.Exit(tag(os.Args[1:]))
}

func setupLogger(config util.Config, verbose bool) {
	if config.Environment == "development" || verbose {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// tag runs the command line tagger and returns the exit status.
func tag(args []string) int {
	flags := flag.NewFlagSet("m4tags", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(flags.Output(), usage) }

	output := flags.String("o", "-", "write tags to `FILE` instead of stdout")
	persist := flags.Bool("persist", false, "store the tags in the database")
	configDir := flags.String("config", ".", "`DIR` holding app.env")
	verbose := flags.Bool("v", false, "log every scanned file")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	// the tagger works without app.env, the environment and defaults apply then
	config, err := util.LoadConfig(*configDir)
	if err != nil && !errors.Is(err, util.ErrConfigNotFound) {
		log.Error().Err(err).Msg("cannot read config file")
		return 1
	}

	setupLogger(config, *verbose)

	if *persist && config.DBSource == "" {
		log.Error().Msg("DB_SOURCE is not set, cannot persist tags")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	runner := &index.Runner{
		Workers:     config.ScanWorkers,
		MaxFileSize: config.MaxFileSize,
		Logger:      log.Logger,
	}

	var w io.Writer = os.Stdout
	if *output != "-" {
		file, err := os.Create(*output)
		if err != nil {
			log.Error().Err(err).Msg("cannot create tags file")
			return 1
		}
		defer file.Close()
		w = file
	}

	results, err := tagFiles(ctx, runner, flags.Args(), w)
	if err != nil {
		log.Error().Err(err).Msg("cannot tag files")
		return 1
	}

	if *persist {
		pool, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Error().Err(err).Msg("cannot connect to the database")
			return 1
		}

		store := db.NewStore(pool)
		defer store.Shutdown()

		if err := runDBMigration(config.MigrationURL, config.DBSource); err != nil {
			log.Error().Err(err).Msg("cannot migrate the database")
			return 1
		}

		scanID, err := persistFiles(ctx, store, results)
		if scanID == uuid.Nil {
			log.Error().Err(err).Msg("cannot persist tags")
			return 1
		}

		log.Info().Str("scan_id", scanID.String()).Int("files", len(results)).Msg("tags stored")

		if err != nil {
			log.Error().Err(err).Msg("some files could not be stored")
			return 1
		}
	}

	if n := failed(results); n > 0 {
		log.Warn().Int("files", n).Msg("some files could not be scanned")
		return 1
	}

	return 0
}

// serve runs the HTTP service until an interrupt signal arrives.
func serve(args []string) int {
	flags := flag.NewFlagSet("m4tags serve", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(flags.Output(), usage) }
	configDir := flags.String("config", ".", "`DIR` holding app.env")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	// reading .env config file
	config, err := util.LoadConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	setupLogger(config, false)

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
	if err := runDBMigration(config.MigrationURL, config.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate the database")
	}

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, store)

	err = waitGroup.Wait()
	if err != nil {
		log.Error().Err(err).Msg("error from wait group")
		return 1
	}

	return 0
}

func runDBMigration(migrationURL string, dbSource string) error {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return fmt.Errorf("cannot create new migrate instance: %w", err)
	}
	defer mig.Close()

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}

	log.Info().Msg("db migrated successfully")
	return nil
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) {
	cache := tmpstore.NewStore(&config)

	service, err := api.NewService(config, store, cache)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		store.Shutdown()
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

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

		// give the server 5 secs to finish its requests
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the db connection pool
		store.Shutdown()

		log.Info().Msg("tag server is stopped")

		return err
	})
}
