package app

import (
	"context"
	"fmt"
	"os"

	"github.com/premdata/fpl-warehouse/internal/config"
	"github.com/premdata/fpl-warehouse/internal/observability"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

// Job is one pipeline invocation: it runs to completion or fails outright.
type Job interface {
	Run(ctx context.Context) error
}

type BuildFunc func(cfg config.Config, logger *logging.Logger) (Job, error)

// Run is the shared entry point behind every cmd binary: load config, set
// up logging and optional observability, build the job, run it once.
// Success is silent completion; any failure exits non-zero.
func Run(jobName string, build BuildFunc) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("job", jobName)
	logging.SetDefault(logger)

	fail := func(msg string, err error) {
		logger.Error(msg, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		fail("init uptrace", err)
	}
	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		fail("init pyroscope", err)
	}

	ctx := context.Background()

	job, err := build(cfg, logger)
	if err != nil {
		fail("build job", err)
	}

	runErr := job.Run(ctx)

	_ = stopProfiler()
	_ = shutdownTracing(ctx)

	if runErr != nil {
		fail("job failed", runErr)
	}
	_ = logger.Sync()
}
