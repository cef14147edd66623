package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"github.com/uptrace/ratio/internal/calc"
)

const prompt = "ratio> "

// replCmd reads expressions with line editing when stdin is a terminal and
// line by line otherwise.
func (r *runner) replCmd(c *cli.Context) error {
	if f, ok := c.App.Reader.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return r.interactive(c)
	}

	scanner := bufio.NewScanner(c.App.Reader)
	for scanner.Scan() {
		r.evalLine(c.App.Writer, scanner.Text())
	}
	return scanner.Err()
}

func (r *runner) interactive(c *cli.Context) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(r.complete)

	for {
		text, err := line.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			fmt.Fprintln(c.App.Writer)
			return nil
		default:
			return err
		}

		if strings.TrimSpace(text) == "" {
			continue
		}
		line.AppendHistory(text)
		r.evalLine(c.App.Writer, text)
	}
}

func (r *runner) evalLine(w io.Writer, text string) {
	if strings.TrimSpace(text) == "help" {
		for _, usage := range calc.Usage() {
			fmt.Fprintln(w, usage)
		}
		return
	}

	out, err := r.eval.Eval(text)
	if err != nil {
		r.logger.Debug().Err(err).Str("line", text).Msg("eval failed")
		fmt.Fprintln(w, "error:", err)
		return
	}
	if out != "" {
		fmt.Fprintln(w, out)
	}
}

// complete completes the command name, then registered ratio names.
func (r *runner) complete(line string) []string {
	var out []string

	head, word := "", line
	if i := strings.LastIndexByte(line, ' '); i >= 0 {
		head, word = line[:i+1], line[i+1:]
	}

	if head == "" {
		for _, usage := range calc.Usage() {
			name, _, _ := strings.Cut(usage, " ")
			if strings.HasPrefix(name, word) {
				out = append(out, name+" ")
			}
		}
		return out
	}

	for _, name := range r.reg.Names() {
		if strings.HasPrefix(name, word) {
			out = append(out, head+name)
		}
	}
	return out
}
