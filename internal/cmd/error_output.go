package cmd

import (
	"context"
	stderrors "errors"
	"fmt"

	clierrors "github.com/salmonumbrella/notion-query/internal/errors"
	"github.com/salmonumbrella/notion-query/internal/notion"
)

// printCommandError writes the error and any recovery hint to stderr.
func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	uiForContext(ctx).Error("%s", commandErrorMessage(err))
	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(stderrFromContext(ctx), "Hint: %s\n", suggestion)
	}
}

// commandErrorMessage prefers the remote error detail for API failures
// so the server's code and message are not buried under wrapping.
func commandErrorMessage(err error) string {
	var apiErr *notion.APIError
	if stderrors.As(err, &apiErr) && apiErr.Response != nil {
		return fmt.Sprintf("notion API error (HTTP %d): %s: %s",
			apiErr.StatusCode, apiErr.Response.Code, apiErr.Response.Message)
	}
	return err.Error()
}
