// Command markupfmt parses a document and prints its diagnostics and,
// optionally, a re-rendered form of it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/LaudateCorpus1/lexor-parser-default/codesink"
	"github.com/LaudateCorpus1/lexor-parser-default/markup"
	"github.com/LaudateCorpus1/lexor-parser-default/style"
	"github.com/LaudateCorpus1/lexor-parser-default/writer"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "markupfmt: could not start logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := &cli.App{
		Name:  "markupfmt",
		Usage: "parse and re-render a document",
		Commands: []*cli.Command{
			parseCommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("markupfmt failed", zap.Error(err))
		os.Exit(1)
	}
}

func parseCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a file and print its diagnostics and rendered output",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "markup", Usage: "output format: markup|html"},
			&cli.BoolFlag{Name: "quiet", Usage: "suppress rendered output; print only diagnostics"},
			&cli.BoolFlag{Name: "check-go", Usage: "validate fenced go/eval blocks against the Go parser"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("markupfmt parse: exactly one file argument required", 2)
			}
			runID := uuid.NewString()
			path := c.Args().First()
			log := logger.With(zap.String("run_id", runID), zap.String("path", path))

			data, err := os.ReadFile(path)
			if err != nil {
				log.Error("could not read file", zap.Error(err))
				return cli.Exit(fmt.Sprintf("markupfmt: %s", err), 1)
			}

			cfg := style.Default()
			cfg.URI = path
			if c.Bool("check-go") {
				cfg.CodeSink = codesink.GoSink{}
			}

			log.Info("parsing", zap.Int("bytes", len(data)))
			doc, err := markup.Parse(string(data), cfg)
			if err != nil {
				log.Error("mapping rejected", zap.Error(err))
				return cli.Exit(fmt.Sprintf("markupfmt: %s", err), 1)
			}
			log.Info("parsed", zap.Int("diagnostics", len(doc.Diagnostics)))

			for _, d := range doc.Diagnostics {
				fmt.Fprintln(os.Stderr, formatDiagnostic(d))
			}

			if c.Bool("quiet") {
				return nil
			}

			var w writer.Writer
			switch strings.ToLower(c.String("format")) {
			case "html":
				w = writer.NewHTMLWriter()
			case "markup":
				w = writer.NewMarkupWriter()
			default:
				return cli.Exit(fmt.Sprintf("markupfmt: unknown --format %q", c.String("format")), 2)
			}
			fmt.Fprint(os.Stdout, writer.Write(doc, w))
			return nil
		},
	}
}

func formatDiagnostic(d markup.Diagnostic) string {
	var args strings.Builder
	for i, a := range d.Args {
		if i > 0 {
			args.WriteString(" ")
		}
		fmt.Fprintf(&args, "%v", a)
	}
	if args.Len() == 0 {
		return fmt.Sprintf("%s:%s %s", d.Module, d.Code, d.Pos)
	}
	return fmt.Sprintf("%s:%s %s %s", d.Module, d.Code, d.Pos, args.String())
}
