package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/vdc-display/internal/logger"
)

// Exit codes returned by the CLI
const (
	ExitFailure = 1
	ExitConfig  = 2
)

// Format formats an error message with a consistent "Error: " prefix.
// Configuration errors get a hint pointing at the environment.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var cfgErr *ConfigError
	if stderrors.As(err, &cfgErr) {
		if strings.HasPrefix(cfgErr.Key, "-") {
			return fmt.Sprintf("Error: %v (check the %s flag)", err, cfgErr.Key)
		}
		return fmt.Sprintf("Error: %v (check the %s environment variable)", err, cfgErr.Key)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cfgErr *ConfigError
	if stderrors.As(err, &cfgErr) {
		return ExitConfig
	}
	return ExitFailure
}

// Fatal logs an error and exits with the code matching its kind
func Fatal(err error) {
	if err != nil {
		logger.Error("Startup failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Startup failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(ExitFailure)
}
