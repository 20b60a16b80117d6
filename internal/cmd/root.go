package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/notion-query/internal/auth"
	"github.com/salmonumbrella/notion-query/internal/config"
	"github.com/salmonumbrella/notion-query/internal/debug"
	"github.com/salmonumbrella/notion-query/internal/errors"
	"github.com/salmonumbrella/notion-query/internal/logging"
	"github.com/salmonumbrella/notion-query/internal/notion"
	"github.com/salmonumbrella/notion-query/internal/output"
	"github.com/salmonumbrella/notion-query/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		outputFlag   string
		queryFlag    string
		jsonPathFlag string
		colorFlag    string
		debugMode    bool
		apiURLFlag   string
		tokenFlag    string
	)

	rootCmd := &cobra.Command{
		Use:   "nq",
		Short: "Query and update Notion databases",
		Long: `A command-line client for querying Notion databases and updating pages.

Supports equality filters on text and date properties, single-property
sorts, and typed property updates.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Cobra's own error/usage text is suppressed; errors are
			// printed centrally with exit-code mapping.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			logging.Setup(debugMode, app.Stderr)

			// Skip the config file for config commands to avoid recursion.
			var cfg *config.Config
			if !isConfigCommand(cmd) {
				loaded, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
			} else {
				cfg = &config.Config{}
			}

			opts, err := parseGlobalOptions(cfg, globalFlagInput{
				output:   outputFlag,
				query:    queryFlag,
				jsonPath: jsonPathFlag,
				color:    colorFlag,
				apiURL:   apiURLFlag,
				token:    tokenFlag,
			})
			if err != nil {
				return err
			}

			ctx := withApp(cmd.Context(), app)
			ctx = withOptions(ctx, opts)
			ctx = debug.WithDebug(ctx, debugMode)
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("nq %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: text|json|yaml")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&jsonPathFlag, "jsonpath", "", "Extract a value using JSONPath (e.g. $.results[0].id)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: auto|always|never")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output (shows HTTP requests/responses)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Override the Notion API base URL")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "Notion API token (overrides keyring and env var)")

	// Agent-ergonomic aliases for the most-used flags.
	flagAlias(rootCmd.PersistentFlags(), "output", "format")
	flagAlias(rootCmd.PersistentFlags(), "query", "jq")

	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMCPCmd())

	return rootCmd
}

type globalFlagInput struct {
	output   string
	query    string
	jsonPath string
	color    string
	apiURL   string
	token    string
}

// parseGlobalOptions resolves flags against config file defaults.
// Flags win; config fills in anything left unset.
func parseGlobalOptions(cfg *config.Config, in globalFlagInput) (*globalOptions, error) {
	formatStr := in.output
	if formatStr == "" {
		formatStr = cfg.Output
	}
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return nil, errors.NewUserError(err.Error(), "Use one of: text, json, yaml")
	}

	colorStr := in.color
	if colorStr == "" {
		colorStr = cfg.Color
	}
	colorMode, err := ui.ParseColorMode(colorStr)
	if err != nil {
		return nil, errors.NewUserError(err.Error(), "Use one of: auto, always, never")
	}

	apiURL := in.apiURL
	if apiURL == "" {
		apiURL = cfg.APIURL
	}

	return &globalOptions{
		format:    format,
		query:     in.query,
		jsonPath:  in.jsonPath,
		colorMode: colorMode,
		apiURL:    apiURL,
		token:     in.token,
		cfg:       cfg,
	}, nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	if cmd.Name() == "config" {
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "config"
}

// resolveToken finds the API token for this invocation.
// Precedence: --token flag, then the config token_source, then the
// NOTION_API_KEY env var, then the system keyring.
func resolveToken(opts *globalOptions) (string, error) {
	if opts.token != "" {
		return opts.token, nil
	}

	switch source := strings.TrimSpace(opts.cfg.TokenSource); {
	case source == "" || source == "keyring":
		// fall through to env/keyring lookup below
	case strings.HasPrefix(source, "env:"):
		name := strings.TrimPrefix(source, "env:")
		if value := os.Getenv(name); value != "" {
			return value, nil
		}
		return "", errors.AuthRequiredError(fmt.Errorf("environment variable %s is not set", name))
	default:
		return source, nil
	}

	token, err := auth.GetToken()
	if err != nil {
		return "", errors.AuthRequiredError(err)
	}
	return token, nil
}

// clientFromContext builds a Notion client from the resolved token and
// global options.
func clientFromContext(ctx context.Context) (*notion.Client, error) {
	opts := optionsFromContext(ctx)

	token, err := resolveToken(opts)
	if err != nil {
		return nil, err
	}

	client := notion.NewClient(token)
	if opts.apiURL != "" {
		client.WithBaseURL(opts.apiURL)
	}
	if opts.cfg.APIVersion != "" {
		client.WithVersion(opts.cfg.APIVersion)
	}
	if debug.IsDebug(ctx) {
		client.WithDebugOutput(stderrFromContext(ctx))
	}
	return client, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
