/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/palmdoc/pkg/charmap"
	"github.com/ssargent/palmdoc/pkg/config"
	"github.com/ssargent/palmdoc/pkg/convert"
)

// warnFunc counts every mapping warning and logs it unless warnings are
// turned off. Non-printable characters dropped from decoded text are always
// logged.
func warnFunc(cfg *config.Config) charmap.WarnFunc {
	logger := container.GetLogger()
	m := container.GetMetrics()

	return func(w charmap.Warning) {
		m.RecordWarning(w)
		if cfg.Warnings || w.Kind == charmap.ControlByte {
			logger.Warn(w.String(), "kind", string(w.Kind), "offset", w.Offset)
		}
	}
}

// progress feeds record events to the metrics and, when verbose, prints a
// line per record
func progress(cmd *cobra.Command, cfg *config.Config) convert.Listener {
	var verbose convert.Listener
	if cfg.Verbose {
		out := cmd.ErrOrStderr()
		verbose = convert.ListenerFunc(func(e convert.RecordEvent) {
			fmt.Fprintf(out, "record %d/%d: %d bytes -> %d (%d%%)\n",
				e.Record, e.Total, e.In, e.Out, percent(int64(e.Out), int64(e.In)))
		})
	}
	return convert.Listeners(container.GetMetrics(), verbose)
}

func percent(part, whole int64) int64 {
	if whole == 0 {
		return 100
	}
	return part * 100 / whole
}

// finish records the outcome of a conversion and exports the metrics
func finish(cmd *cobra.Command, cfg *config.Config, dir convert.Direction, start time.Time, stats *convert.Stats, err error) error {
	logger := container.GetLogger()
	m := container.GetMetrics()

	m.RecordConversion(dir, err == nil, time.Since(start))
	if cfg.MetricsFile != "" {
		if werr := m.WriteTextfile(cfg.MetricsFile); werr != nil {
			logger.Error("Failed to write metrics", "path", cfg.MetricsFile, "error", werr)
		}
	}
	if err != nil {
		return err
	}

	logger.Debug("Conversion complete",
		"direction", string(dir),
		"records", stats.Records,
		"text_bytes", stats.TextBytes,
		"warnings", stats.Warnings,
		"duration", time.Since(start))

	if cfg.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d records: %d bytes -> %d (%d%%)\n",
			stats.Records, stats.InputBytes, stats.OutputBytes, percent(stats.OutputBytes, stats.InputBytes))
	}
	return nil
}
