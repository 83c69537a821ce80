// Package main is the entry point of cronkit.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/favonia/cronkit/internal/action"
	"github.com/favonia/cronkit/internal/batch"
	"github.com/favonia/cronkit/internal/config"
	"github.com/favonia/cronkit/internal/cron"
	"github.com/favonia/cronkit/internal/output"
	"github.com/favonia/cronkit/internal/pp"
)

// Version is the version of cronkit that will be shown in the usage.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

const batchCommand = "batch"

func formatName() string {
	if Version == "" {
		return "cronkit"
	}
	return fmt.Sprintf("cronkit (%s)", Version)
}

// defaultFormat is text for terminals and JSON for everything else.
func defaultFormat(w io.Writer) output.Format {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return output.Text
	}
	return output.JSON
}

type options struct {
	output       string
	count        int
	now          string
	showSettings bool
}

func newFlagSet(stderr io.Writer, opts *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("cronkit", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.output, "output", "o", "", "output format: text, json, or yaml")
	flags.IntVarP(&opts.count, "count", "n", cron.DefaultCount,
		fmt.Sprintf("number of occurrences for next (1 to %d)", cron.MaxCount))
	flags.StringVar(&opts.now, "now", "", "reference time for next, in RFC 3339 (default: the current time)")
	flags.BoolVar(&opts.showSettings, "show-settings", false, "print the effective settings before running")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s: parse, validate, predict, and generate cron expressions\n\n", formatName())
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  cronkit [flags] parse|validate|next EXPRESSION\n")
		fmt.Fprintf(stderr, "  cronkit [flags] generate DESCRIPTION\n")
		fmt.Fprintf(stderr, "  cronkit [flags] batch FILE   (a JSON array of requests; - reads stdin)\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		flags.PrintDefaults()
	}
	return flags
}

// readConfig applies the environment and then the flags on top of the defaults.
func readConfig(ppfmt pp.PP, flags *pflag.FlagSet, opts *options, now time.Time, stdout io.Writer) (*config.Config, bool) {
	c := config.Default(now, defaultFormat(stdout))
	if !c.ReadEnv(ppfmt) {
		return nil, false
	}

	if flags.Changed("output") {
		f, err := output.ParseFormat(opts.output)
		if err != nil {
			ppfmt.Errorf(pp.EmojiUserError, "--output (%q) is not a supported output format: %v", opts.output, err)
			return nil, false
		}
		c.Format = f
	}

	if flags.Changed("now") {
		t, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			ppfmt.Errorf(pp.EmojiUserError, "--now (%q) is not an RFC 3339 timestamp: %v", opts.now, err)
			return nil, false
		}
		c.Now = t
	}

	return c, true
}

func readBatch(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}

func runBatch(ppfmt, resultPP pp.PP, c *config.Config, args []string, stdin io.Reader, stdout io.Writer) int {
	if len(args) != 1 {
		ppfmt.Errorf(pp.EmojiUserError, "%s expects exactly one file, got %d arguments", batchCommand, len(args))
		return 1
	}

	data, err := readBatch(stdin, args[0])
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%v", err)
		return 1
	}

	reqs, err := batch.Load(data)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%v", err)
		return 1
	}

	results := batch.Run(ppfmt, reqs, c.Now)
	if err := output.WriteAll(stdout, resultPP, c.Format, c.Now, results); err != nil {
		ppfmt.Errorf(pp.EmojiError, "%v", err)
		return 1
	}

	for _, r := range results {
		if !r.OK() {
			return 1
		}
	}
	return 0
}

func runAction(ppfmt, resultPP pp.PP, c *config.Config, tag string, args []string, count *int, stdout io.Writer) int {
	input := strings.Join(args, " ")
	if len(args) > 1 {
		ppfmt.Hintf(pp.HintQuoteExpression,
			"Joined %d arguments into %q; quote the whole input so that the shell leaves \"*\" alone",
			len(args), input)
	}

	r := action.Dispatch(action.Request{
		Action:      tag,
		Expression:  input,
		Description: input,
		Count:       count,
	}, c.Now)

	if a, err := action.Lookup(tag); err == nil && a == action.Generate && !r.OK() {
		ppfmt.Hintf(pp.HintGeneratePhrases,
			`Try phrases such as "every 5 minutes", "weekdays at 9am", or "every monday at 6:30pm"`)
	}

	if err := output.Write(stdout, resultPP, c.Format, c.Now, r); err != nil {
		ppfmt.Errorf(pp.EmojiError, "%v", err)
		return 1
	}

	if !r.OK() {
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, time.Now()))
}

func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer, now time.Time) int {
	ppfmt, ok := config.SetupPP(stderr)
	if !ok {
		return 1
	}

	var opts options
	flags := newFlagSet(stderr, &opts)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	c, ok := readConfig(ppfmt, flags, &opts, now, stdout)
	if !ok {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	if opts.showSettings {
		c.Print(ppfmt)
	}

	// Text results share the settings of the diagnostics but go to stdout.
	resultPP, ok := config.SetupPP(stdout)
	if !ok {
		return 1
	}

	rest := flags.Args()
	if len(rest) == 0 {
		ppfmt.Errorf(pp.EmojiUserError, "Missing command; expected one of %s, or %s",
			pp.JoinMap(action.Action.String, action.All()), batchCommand)
		flags.Usage()
		return 1
	}

	if strings.EqualFold(strings.TrimSpace(rest[0]), batchCommand) {
		return runBatch(ppfmt, resultPP, c, rest[1:], stdin, stdout)
	}

	var count *int
	if flags.Changed("count") {
		if a, err := action.Lookup(rest[0]); err == nil && a != action.Next {
			ppfmt.Warningf(pp.EmojiUserWarning, "--count is ignored by %s", a)
		}
		count = &opts.count
	}
	return runAction(ppfmt, resultPP, c, rest[0], rest[1:], count, stdout)
}
