package cmd

import (
	"context"
	"io"
	"os"

	"github.com/salmonumbrella/notion-query/internal/config"
	"github.com/salmonumbrella/notion-query/internal/output"
	"github.com/salmonumbrella/notion-query/internal/ui"
)

type (
	appKey     struct{}
	optionsKey struct{}
)

// globalOptions holds the parsed persistent flags for a single invocation.
type globalOptions struct {
	format    output.Format
	query     string
	jsonPath  string
	colorMode ui.ColorMode
	apiURL    string
	token     string
	cfg       *config.Config
}

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func appFromContext(ctx context.Context) *App {
	if a, ok := ctx.Value(appKey{}).(*App); ok {
		return a
	}
	return nil
}

func withOptions(ctx context.Context, opts *globalOptions) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFromContext(ctx context.Context) *globalOptions {
	if o, ok := ctx.Value(optionsKey{}).(*globalOptions); ok {
		return o
	}
	return &globalOptions{format: output.FormatText, cfg: &config.Config{}}
}

func stdoutFromContext(ctx context.Context) io.Writer {
	if a := appFromContext(ctx); a != nil && a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func stderrFromContext(ctx context.Context) io.Writer {
	if a := appFromContext(ctx); a != nil && a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

// printerForContext builds an output printer honoring the global
// --output, --query and --jsonpath flags.
func printerForContext(ctx context.Context) *output.Printer {
	opts := optionsFromContext(ctx)
	printer := output.NewPrinter(stdoutFromContext(ctx), opts.format)
	if opts.query != "" {
		printer = printer.WithQuery(opts.query)
	}
	if opts.jsonPath != "" {
		printer = printer.WithJSONPath(opts.jsonPath)
	}
	return printer
}

// uiForContext builds a UI writing status glyphs to stderr so stdout
// stays clean for piped output.
func uiForContext(ctx context.Context) *ui.UI {
	return ui.NewWithWriter(stderrFromContext(ctx), optionsFromContext(ctx).colorMode)
}
