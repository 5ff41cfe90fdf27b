package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mcrawford/flatenv"
	"github.com/mcrawford/flatenv/internal/config"
	"github.com/mcrawford/flatenv/internal/errors"
	"github.com/mcrawford/flatenv/internal/logging"
	"github.com/mcrawford/flatenv/internal/models"
)

// CLI defines the command-line interface
var CLI struct {
	Input  string `help:"Path to input appsettings.json file. If not specified, reads from stdin." short:"i" type:"path"`
	Output string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Format string `help:"Output format." short:"f" default:"compose" enum:"compose,env-file,plain-text"`

	Prefix       string `help:"Prefix prepended to every variable name." short:"p"`
	Naming       string `help:"Naming convention for variable names." default:"preserve" enum:"preserve,uppercase,lowercase,snake,screaming-snake"`
	Separator    string `help:"Separator joining nested keys." default:"__"`
	NullHandling string `help:"How null values are emitted." default:"empty" enum:"empty,omit,null"`
	JoinArrays   bool   `help:"Collapse arrays to comma-joined values instead of indexed variables."`
	TypeHints    bool   `help:"Emit type hint comments in env-file output."`

	Style         string `help:"Compose environment block style." default:"array" enum:"array,map"`
	Indent        int    `help:"Compose indent width." default:"2"`
	Comments      bool   `help:"Emit header and section comments in env-file output."`
	Quote         bool   `help:"Always double-quote env-file values."`
	PlainSep      string `help:"Key/value separator for plain-text output." default:"="`
	Export        bool   `help:"Prepend 'export ' to plain-text lines."`
	Config        string `help:"Path to a .flatenv.yml config file." type:"path"`
	Stats         bool   `help:"Print complexity statistics to stderr." short:"s"`
	Quiet         bool   `help:"Suppress warnings." short:"q"`
	Debug         bool   `help:"Enable debug logging." short:"d"`
	Version       bool   `help:"Show version information." short:"v"`
	Interactive   bool   `help:"Run in interactive mode, allowing pasted JSON with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("flatenv"),
		kong.Description("Convert appsettings.json into environment variables for Docker Compose, .env files or shell scripts"),
		kong.UsageOnError(),
	)

	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("flatenv version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: flatenv --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logging.NewLogger(logging.Config{Debug: CLI.Debug || cfg.Dev.Debug})
	defer log.Sync() //nolint:errcheck

	raw, err := readInput()
	if err != nil {
		return err
	}
	log.Debugw("input read", "bytes", len(raw))

	format, convOpts, fmtOpts := effectiveOptions(cfg)
	log.Debugw("options resolved", "format", format, "separator", convOpts.KeySeparator, "naming", convOpts.NamingConvention)

	result, err := flatenv.Convert(raw, format, convOpts, fmtOpts)
	if err != nil {
		return err
	}
	log.Debugw("conversion done", "records", len(result.Records), "warnings", len(result.Warnings))

	if !CLI.Quiet {
		printWarnings(result.Warnings)
	}
	if CLI.Stats {
		printStats(result.Stats)
	}

	return writeOutput(result.Output)
}

// loadConfig resolves the optional file config: an explicit --config path
// wins, otherwise the nearest .flatenv.yml up the directory tree.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return config.NewConfig(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to load config '%s'", path), err)
	}
	return cfg, nil
}

// effectiveOptions merges the file config with CLI flags. A flag set to
// something other than its documented default overrides the file value.
func effectiveOptions(cfg *config.Config) (models.Format, models.ConversionOptions, models.FormatOptions) {
	convOpts := cfg.ConversionOptions()
	fmtOpts := cfg.FormatOptions()
	format := models.Format(cfg.Format)

	if CLI.Format != "compose" || cfg.Format == "" {
		format = models.Format(CLI.Format)
	}
	if CLI.Prefix != "" {
		convOpts.Prefix = CLI.Prefix
	}
	if CLI.Naming != "preserve" {
		convOpts.NamingConvention = models.NamingConvention(CLI.Naming)
	}
	if CLI.Separator != "__" {
		convOpts.KeySeparator = CLI.Separator
	}
	if CLI.NullHandling != "empty" {
		convOpts.NullHandling = models.NullHandling(CLI.NullHandling)
	}
	if CLI.JoinArrays {
		convOpts.JoinArrays = true
	}
	if CLI.TypeHints {
		convOpts.IncludeTypeHints = true
	}

	if CLI.Style != "array" {
		fmtOpts.Compose.Style = models.ComposeStyle(CLI.Style)
	}
	if CLI.Indent != 2 {
		fmtOpts.Compose.Indent = CLI.Indent
	}
	if CLI.Comments {
		fmtOpts.EnvFile.IncludeComments = true
	}
	if CLI.Quote {
		fmtOpts.EnvFile.AlwaysQuote = true
	}
	if CLI.PlainSep != "=" {
		fmtOpts.Plain.Separator = CLI.PlainSep
	}
	if CLI.Export {
		fmtOpts.Plain.ExportPrefix = true
	}

	return format, convOpts, fmtOpts
}

// readInput reads raw JSON from file, stdin or the interactive prompt.
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return "", errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", CLI.Input),
				err,
			)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(jsonData), nil
}

// readInteractiveInput lets users paste JSON and signal completion with
// Ctrl+D (EOF).
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "flatenv interactive mode")
	fmt.Fprintln(os.Stderr, "Paste your appsettings.json below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder
	for {
		line, err := reader.ReadString('\n')
		builder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	raw := builder.String()
	if len(raw) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return raw, nil
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	yellow := color.New(color.FgYellow)
	for _, warning := range warnings {
		yellow.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
}

func printStats(stats models.ComplexityStats) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(os.Stderr, "keys: %d, max depth: %d, arrays: %d\n", stats.TotalKeys, stats.MaxDepth, stats.ArrayCount)
	for _, rec := range stats.Recommendations {
		cyan.Fprintf(os.Stderr, "note: %s\n", rec)
	}
}

// writeOutput writes the rendered text to file or stdout
func writeOutput(output string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(output), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSuffix(output, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
