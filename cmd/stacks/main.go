package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/hollowbeak/stacks/internal/core"
	"github.com/hollowbeak/stacks/internal/utils"
	"github.com/hollowbeak/stacks/pkg/api"
	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/queue"
)

type optsGeneral struct {
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

type optsDatabase struct {
	DatabaseURL string `long:"database-url" env:"DATABASE_URL" description:"Postgres connection string; empty runs an in-memory store"`
}

type optsQueue struct {
	QueueURL       string `long:"queue-url" env:"QUEUE_URL" description:"Redis connection string; empty runs an in-memory queue"`
	QueueTLSCaCert string `long:"queue-tls-cacert" env:"QUEUE_TLS_CACERT" description:"Path to CA certificate"`
	QueueTLSCert   string `long:"queue-tls-cert" env:"QUEUE_TLS_CERT" description:"Path to TLS certificate"`
	QueueTLSKey    string `long:"queue-tls-key" env:"QUEUE_TLS_KEY" description:"Path to TLS key"`
}

type optsEngine struct {
	MinWorkers   int    `long:"min-workers" env:"MIN_WORKERS" default:"2" description:"Permanent task consumers"`
	MaxWorkers   int    `long:"max-workers" env:"MAX_WORKERS" default:"8" description:"Consumer cap while a backlog exists"`
	ScanSchedule string `long:"scan-schedule" env:"SCAN_SCHEDULE" description:"Cron expression for periodic scans of every library"`
}

func logger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// buildOptions folds the shared flag groups into api options.
func buildOptions(g optsGeneral, d optsDatabase, q optsQueue) (*api.Options, error) {
	if g.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	tlsCfg, err := utils.TLSConfig(q.QueueTLSCaCert, q.QueueTLSCert, q.QueueTLSKey)
	if err != nil {
		return nil, err
	}

	return &api.Options{
		Database: database.Options{URL: d.DatabaseURL},
		Queue:    queue.Options{URL: q.QueueURL, TLSConfig: tlsCfg},
	}, nil
}

func (e optsEngine) apply(opts *api.Options) {
	opts.Engine = core.Options{
		Pool: core.PoolOptions{
			MinWorkers: e.MinWorkers,
			MaxWorkers: e.MaxWorkers,
		},
		ScanSchedule: e.ScanSchedule,
	}
}

func main() {
	parser := flags.NewNamedParser("stacks", flags.Default)
	parser.AddCommand("serve", docServe, docServe, &optsServe{})
	parser.AddCommand("api", docAPI, docAPI, &optsAPI{})
	parser.AddCommand("worker", docWorker, docWorker, &optsWorker{})
	parser.AddCommand("scan", docScan, docScan, &optsScan{})
	parser.AddCommand("migrate", docMigrate, docMigrate, &optsMigrate{})

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
