package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	apischema "github.com/apischema/apischema"
	"github.com/apischema/apischema/report"
	"github.com/apischema/apischema/schema"
	"github.com/apischema/apischema/source"
)

// Exit code contract: 0 = instance is valid, 1 = instance is invalid,
// 2 = malformed schema or instance input (precondition failure, not a
// validation verdict).
const (
	exitValid      = 0
	exitInvalid    = 1
	exitUsageError = 2
)

var (
	flagDataType   string
	flagSchemaType string
	flagLogLevel   string
	flagFormat     string
	flagColor      string
	flagProfile    string
	flagMaxDepth   int
	flagMaxSteps   int
)

var rootCmd = &cobra.Command{
	Use:   "apischema <data_file> <schema_file>",
	Short: "Validate API request/response data against a schema definition",
	Long: `apischema validates structured data (JSON or YAML) against an
OpenAPI / JSON-Schema style schema document and reports every violation
with a precise location.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

func main() {
	rootCmd.Flags().StringVar(&flagDataType, "data_type", "", "data file type (json|yaml); inferred from extension if omitted")
	rootCmd.Flags().StringVar(&flagSchemaType, "schema_type", "", "schema file type (json|yaml); inferred from extension if omitted")
	rootCmd.Flags().StringVar(&flagLogLevel, "log_level", "info", "logging level (debug|info|warn|error); never affects the verdict")
	rootCmd.Flags().StringVar(&flagFormat, "format", "text", "report format (text|json)")
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "colorize text output (auto|on|off)")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "jsonschema", "keyword interpretation profile (jsonschema|openapi)")
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", apischema.DefaultMaxDepth, "maximum reference recursion depth")
	rootCmd.Flags().IntVar(&flagMaxSteps, "max-steps", apischema.DefaultMaxSteps, "maximum evaluation steps per instance")

	if err := rootCmd.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitUsageError)
	}
}

// exitErr carries an exit code through cobra without printing twice.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func fail(code int, format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return &exitErr{code: code, msg: msg}
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := newLogger(flagLogLevel)
	dataFile, schemaFile := args[0], args[1]

	data, err := source.LoadFile(dataFile, flagDataType)
	if err != nil {
		return fail(exitUsageError, "loading data: %v", err)
	}
	log.Debug("data loaded", "file", dataFile)

	rawSchema, err := source.LoadFile(schemaFile, flagSchemaType)
	if err != nil {
		return fail(exitUsageError, "loading schema: %v", err)
	}
	log.Debug("schema loaded", "file", schemaFile)

	opts := apischema.Options{
		MaxDepth: flagMaxDepth,
		MaxSteps: flagMaxSteps,
	}
	if opts.Profile, err = parseProfile(flagProfile); err != nil {
		return fail(exitUsageError, "%v", err)
	}

	v, err := apischema.Compile(rawSchema, opts)
	if err != nil {
		return fail(exitUsageError, "compiling schema: %v", err)
	}

	res, err := v.Validate(cmd.Context(), data)
	if err != nil {
		return fail(exitUsageError, "validation aborted: %v", err)
	}

	if err := render(res); err != nil {
		return fail(exitUsageError, "rendering report: %v", err)
	}
	if !res.Valid {
		log.Info("validation failed", "violations", len(res.Violations))
		return &exitErr{code: exitInvalid, msg: "instance is invalid"}
	}
	log.Info("validation successful")
	return nil
}

func render(res *apischema.Result) error {
	switch flagFormat {
	case "json":
		return report.JSON(os.Stdout, res)
	case "text":
		r := report.Renderer{Color: colorEnabled(flagColor)}
		return r.Text(os.Stdout, res)
	}
	return fmt.Errorf("unsupported format %q (want text or json)", flagFormat)
}

func colorEnabled(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func parseProfile(s string) (schema.Profile, error) {
	switch strings.ToLower(s) {
	case "", "jsonschema":
		return schema.ProfileJSONSchema, nil
	case "openapi":
		return schema.ProfileOpenAPI, nil
	}
	return schema.ProfileJSONSchema, fmt.Errorf("unsupported profile %q (want jsonschema or openapi)", s)
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "warn", "warning":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}
