package cli

import (
	"errors"
	"fmt"
	"strings"

	"recipe-converter/internal/client"
)

// 結束碼
const (
	ExitSuccess     = 0
	ExitInvalidArgs = 2
	ExitUpstream    = 3
	ExitInternal    = 4
)

type cliError struct {
	Code     string
	Message  string
	Hint     string
	ExitCode int
}

func (e *cliError) Error() string {
	return e.Message
}

func invalidArgsError(message, hint string) error {
	return &cliError{Code: "INVALID_ARGS", Message: message, Hint: hint, ExitCode: ExitInvalidArgs}
}

func upstreamError(action string, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return &cliError{Code: "INVALID_ARGS", Message: apiErr.Error(), ExitCode: ExitInvalidArgs}
	}
	return &cliError{
		Code:     "UPSTREAM_ERROR",
		Message:  fmt.Sprintf("%s: %v", action, err),
		Hint:     "check that the server given by --server is running",
		ExitCode: ExitUpstream,
	}
}

// classifyCLIError cobra 本身的參數錯誤也視為 INVALID_ARGS
func classifyCLIError(err error) *cliError {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce
	}
	msg := err.Error()
	if strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "flag needs an argument") ||
		strings.Contains(msg, "accepts at most") ||
		strings.Contains(msg, "invalid argument") {
		return &cliError{Code: "INVALID_ARGS", Message: msg, Hint: "run recipeconv --help", ExitCode: ExitInvalidArgs}
	}
	return &cliError{Code: "INTERNAL_ERROR", Message: msg, ExitCode: ExitInternal}
}

func formatCLIErrorText(e *cliError) string {
	out := errorStyle.Render("error: ") + e.Message
	if e.Hint != "" {
		out += "\n" + dimStyle.Render("hint: "+e.Hint)
	}
	return out
}
