package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachlab/bfs"
	"github.com/katalvlaran/reachlab/config"
	"github.com/katalvlaran/reachlab/powers"
	"github.com/katalvlaran/reachlab/timing"
)

func (a *app) benchCmd() *cobra.Command {
	var (
		configPath  string
		csvPath     string
		metricsPath string
		repetitions int
		dumpConfig  bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time both engines over graph families",
		Long: `Time the matrix-power and BFS engines over the configured graph families.

Without --config the quick benchmark runs: path, cycle and star graphs at
5…30 nodes and square grids 3×3…6×6. Graph generation is not timed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("log-format") {
					if err = a.setupLogging(cfg.Log.Level, cfg.Log.Format); err != nil {
						return err
					}
				}
			}
			if cmd.Flags().Changed("csv") {
				cfg.Output.CSV = csvPath
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Output.Metrics = metricsPath
			}
			if cmd.Flags().Changed("repetitions") {
				cfg.Repetitions = repetitions
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if dumpConfig {
				out, err := cfg.YAML()
				if err != nil {
					return err
				}
				a.printf("%s", out)
				return nil
			}

			return a.runBench(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML benchmark configuration")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write samples as CSV")
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "write prometheus metrics in text format")
	cmd.Flags().IntVarP(&repetitions, "repetitions", "r", 1, "timed calls averaged per sample")
	cmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "print the effective configuration and exit")

	return cmd
}

func (a *app) runBench(cfg *config.Config) error {
	reg := prometheus.NewRegistry()
	rec, err := timing.NewRecorder(reg)
	if err != nil {
		return err
	}
	h := timing.New(
		timing.WithEngines(powers.Engine{}, bfs.Engine{}),
		timing.WithRepetitions(cfg.Repetitions),
		timing.WithValidation(cfg.CrossCheck),
		timing.WithIsolation(cfg.Isolate),
		timing.WithLogger(a.log),
		timing.WithRecorder(rec),
	)

	var all []timing.Sample
	for _, fc := range cfg.Families {
		fam, err := fc.Family()
		if err != nil {
			return err
		}
		run, err := h.Run(fam, fc.Sizes)
		if err != nil {
			return err
		}
		all = append(all, run.Samples...)

		rows := make([][]string, 0, len(fc.Sizes))
		for _, sp := range timing.Speedups(run.Samples) {
			rows = append(rows, []string{
				strconv.Itoa(sp.N),
				strconv.Itoa(sp.Edges),
				fmt.Sprintf("%.6f", sp.Matrix.Seconds()),
				fmt.Sprintf("%.6f", sp.BFS.Seconds()),
				fmt.Sprintf("%.1fx", sp.Ratio),
			})
		}
		a.printf("%s", title(fmt.Sprintf("%s (run %s)", fam.Name, run.ID)))
		a.printf("%s", grid([]string{"n", "edges", "matrix s", "bfs s", "bfs speedup"}, rows))
	}

	if cfg.Output.CSV != "" {
		if err = writeCSVFile(cfg.Output.CSV, all); err != nil {
			return err
		}
		a.log.Info("samples written", "path", cfg.Output.CSV, "samples", len(all))
	}
	if cfg.Output.Metrics != "" {
		if err = prometheus.WriteToTextfile(cfg.Output.Metrics, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Info("metrics written", "path", cfg.Output.Metrics)
	}

	return nil
}

func writeCSVFile(path string, samples []timing.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = timing.WriteCSV(f, samples); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
