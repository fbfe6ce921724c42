package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/graphio"
	"github.com/katalvlaran/reachlab/internal/logging"
)

// app carries what every subcommand shares.
type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel  string
	logFormat string
	log       *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: logging.Discard()}

	root := &cobra.Command{
		Use:           "reachlab",
		Short:         "All-pairs reachability by matrix powers and BFS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setupLogging(a.logLevel, a.logFormat)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text, json")

	root.AddCommand(
		a.reachCmd(),
		a.powersCmd(),
		a.validateCmd(),
		a.componentsCmd(),
		a.benchCmd(),
		a.generateCmd(),
	)

	return root
}

func (a *app) setupLogging(level, format string) error {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	f, err := logging.ParseFormat(format)
	if err != nil {
		return err
	}
	a.log = logging.New(logging.Config{Level: lvl, Format: f, Output: a.errOut})

	return nil
}

// loadGraph reads a graph document and converts it.
func (a *app) loadGraph(path string) (*graphio.Document, *core.Graph, error) {
	doc, err := graphio.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug("graph loaded", "path", path, "name", doc.Name, "n", g.Order(), "edges", g.Size())

	return doc, g, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
