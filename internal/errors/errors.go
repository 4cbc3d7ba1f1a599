package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/mindlog/internal/logger"
)

var (
	// ErrStorageUnavailable marks failures to reach or open the database
	ErrStorageUnavailable = stderrors.New("storage unavailable")
	// ErrIO marks failures reading or writing files such as imports, exports and reports
	ErrIO = stderrors.New("i/o failure")
)

// StorageUnavailable wraps err so that errors.Is(err, ErrStorageUnavailable) holds
func StorageUnavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// IO wraps err with the file path involved
func IO(path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a remediation line for well-known error kinds
func Hint(err error) string {
	switch {
	case stderrors.Is(err, ErrStorageUnavailable):
		return "Check the --config path or connection string, or run 'mindlog init'."
	case stderrors.Is(err, ErrIO):
		return "Check that the file exists and is readable/writable."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
