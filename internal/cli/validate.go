package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kolah/oasgate/internal/checker"
	"github.com/kolah/oasgate/internal/config"
	"github.com/kolah/oasgate/internal/dispatch"
	"github.com/kolah/oasgate/internal/document"
	"github.com/kolah/oasgate/internal/report"
	"github.com/kolah/oasgate/internal/source"
	"github.com/kolah/oasgate/internal/stats"
	"github.com/kolah/oasgate/internal/validate"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when fail-on-invalid is set and the run
// counted at least one failed definition.
var ErrValidationFailed = errors.New("one or more definitions failed validation")

func runValidate(cmd *cobra.Command, args []string) error {
	var level string
	if len(args) > 1 {
		level = args[1]
	}

	cfg, err := config.Load("", level)
	if err != nil {
		return err
	}
	logLevel, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	rep := report.New(cmd.ErrOrStderr(), cfg.Log.Format, logLevel)
	opts := &checker.Options{AllowRemoteReferences: cfg.AllowRemoteReferences}
	if logLevel <= slog.LevelDebug {
		opts.Logger = rep.Logger().With("source", "libopenapi")
	}
	d := dispatch.New(
		validate.NewSwagger(checker.NewSwagger(opts)),
		validate.NewOpenAPI(checker.NewOpenAPI(opts)),
		&dispatch.Options{Reporter: rep, Timeout: cfg.Timeout},
	)

	var agg stats.Aggregator
	run := func(doc *document.Document) {
		res := d.Validate(cmd.Context(), doc, cfg.ValidationLevel())
		agg.Record(res.Counts)
	}

	if path, ok := source.Location(args[0]); ok {
		source.Walk(path, source.Handler{
			File: func(f source.File) {
				agg.Record(stats.Counts{Total: 1})
				rep.FileStart(f.Path)
				run(document.NewFromFile(f.Path, f.Data))
			},
			Error: rep.LocationError,
		})
	} else {
		run(document.New([]byte(args[0])))
	}

	counts := agg.Snapshot()
	if err := report.WriteSummary(cmd.OutOrStdout(), counts); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if cfg.FailOnInvalid && counts.Failed > 0 {
		return fmt.Errorf("%w: %d failed", ErrValidationFailed, counts.Failed)
	}
	return nil
}
