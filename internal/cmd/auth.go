package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/notion-query/internal/auth"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Notion API authentication",
		Long:  `Manage authentication tokens for the Notion API. Tokens are securely stored in the system keyring.`,
	}

	cmd.AddCommand(newAuthAddTokenCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthRemoveCmd())

	return cmd
}

func newAuthAddTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-token",
		Short: "Store an integration token in the keyring",
		Long: `Store a Notion internal integration token in the system keyring:
  - macOS: Keychain
  - Linux: Secret Service (GNOME Keyring, KWallet), with encrypted file fallback
  - Windows: Credential Manager

You will be prompted to enter your token interactively. Input is hidden.
When stdin is not a terminal the token is read from the first line of stdin.

Get your internal integration token from: https://www.notion.so/my-integrations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			token, err := readTokenInput(cmd)
			if err != nil {
				return err
			}
			if token == "" {
				return fmt.Errorf("token cannot be empty")
			}

			if err := auth.StoreToken(token); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			uiForContext(ctx).Success("Token stored in keyring")
			return printerForContext(ctx).Print(map[string]interface{}{
				"status":  "success",
				"message": "Token stored successfully in keyring",
			})
		},
	}
}

// readTokenInput prompts on stderr so stdout stays clean, hiding the
// input when stdin is a terminal.
func readTokenInput(cmd *cobra.Command) (string, error) {
	ctx := cmd.Context()

	if isTerminal(os.Stdin) {
		_, _ = fmt.Fprint(stderrFromContext(ctx), "Enter your Notion API token: ")
		tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		_, _ = fmt.Fprintln(stderrFromContext(ctx))
		return strings.TrimSpace(string(tokenBytes)), nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Long: `Display whether a Notion API token is configured and where it comes
from. Does not display the actual token value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			hasToken := auth.HasToken()
			tokenSource := "none"
			if hasToken {
				if os.Getenv(auth.EnvVarName) != "" {
					tokenSource = "environment variable (" + auth.EnvVarName + ")"
				} else {
					tokenSource = "system keyring"
				}
			}

			return printerForContext(ctx).Print(map[string]interface{}{
				"authenticated": hasToken,
				"token_source":  tokenSource,
			})
		},
	}
}

func newAuthRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored token",
		Long: `Remove the stored Notion token from the system keyring.

Note: if you have set the ` + auth.EnvVarName + ` environment variable,
you will need to unset it separately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := auth.RemoveToken(); err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}

			return printerForContext(ctx).Print(map[string]interface{}{
				"status":  "success",
				"message": "Token removed from keyring",
			})
		},
	}
}
