package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/tmthrgd/go-hex"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/uptrace/ratio"
	"github.com/uptrace/ratio/internal/calc"
	"github.com/uptrace/ratio/registry"
)

// runner holds the state built by the Before hook and shared by commands.
type runner struct {
	logger zerolog.Logger
	reg    *registry.Registry
	eval   *calc.Evaluator
}

func newApp() *cli.App {
	r := new(runner)

	return &cli.App{
		Name:  "ratio",
		Usage: "scale integers and floats by exact ratios",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with named ratios",
				EnvVars: []string{"RATIO_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{"RATIO_LOG_LEVEL"},
			},
		},
		Before: r.setup,
		Commands: cli.Commands{
			// ratio eval mul 3/4 10
			// ratio repl
			// ratio encode 3/4 --format msgpack
			// ratio list
			&cli.Command{
				Name:      "eval",
				Usage:     "evaluate a single expression",
				ArgsUsage: "<command> <args...>",
				Description: "Commands:\n   " + strings.Join(calc.Usage(), "\n   ") +
					"\n\nR is a ratio literal such as 3/4 or a registered name.",
				Action: r.evalCmd,
			},
			&cli.Command{
				Name:   "repl",
				Usage:  "evaluate expressions interactively",
				Action: r.replCmd,
			},
			&cli.Command{
				Name:      "encode",
				Usage:     "print the encoded form of a ratio",
				ArgsUsage: "<ratio>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "text, json, yaml or msgpack (hex)",
					},
				},
				Action: r.encodeCmd,
			},
			&cli.Command{
				Name:   "list",
				Usage:  "list registered ratios",
				Action: r.listCmd,
			},
		},
	}
}

func (r *runner) setup(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	r.logger = zerolog.New(logWriter(c)).Level(level).With().Timestamp().Logger()

	r.reg = registry.New(registry.WithLogger(&r.logger))
	r.eval = calc.New(r.reg)

	if path := c.String("config"); path != "" {
		ctx := r.logger.WithContext(c.Context)
		n, err := r.reg.LoadFile(ctx, path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		r.logger.Debug().Str("config", path).Int("count", n).Msg("loaded ratios")
	}
	return nil
}

// logWriter writes human readable logs to a terminal and JSON elsewhere.
func logWriter(c *cli.Context) io.Writer {
	w := c.App.ErrWriter
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return zerolog.ConsoleWriter{Out: f}
	}
	return w
}

func (r *runner) evalCmd(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("eval: missing expression", 2)
	}
	out, err := r.eval.Eval(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		r.logger.Debug().Err(err).Msg("eval failed")
		return cli.Exit(err.Error(), 1)
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func (r *runner) encodeCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("encode: expected exactly one ratio", 2)
	}
	v, err := r.reg.Resolve(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := encode(v, c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func encode(v ratio.Ratio, format string) (string, error) {
	switch format {
	case "text":
		return v.String(), nil
	case "json":
		b, err := json.Marshal(v)
		return string(b), err
	case "yaml":
		b, err := yaml.Marshal(v)
		return strings.TrimSuffix(string(b), "\n"), err
	case "msgpack":
		b, err := msgpack.Marshal(v)
		return hex.EncodeToString(b), err
	default:
		return "", fmt.Errorf("encode: unknown format %q", format)
	}
}

func (r *runner) listCmd(c *cli.Context) error {
	names := r.reg.Names()
	for _, name := range names {
		v, _ := r.reg.Get(name)
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", name, v, formatFloat(v))
	}

	noun := "ratio"
	if len(names) != 1 {
		noun = inflection.Plural(noun)
	}
	_, err := fmt.Fprintf(c.App.Writer, "%d %s\n", len(names), noun)
	return err
}

func formatFloat(v ratio.Ratio) string {
	if v.Div == 0 {
		return "-"
	}
	return fmt.Sprintf("%.6g", v.Float64())
}

func main() {
	app := newApp()
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintln(app.ErrWriter, "ratio:", err)
		os.Exit(1)
	}
}
