package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/liftshift/internal/logger"
)

var (
	// ErrCycleNotConfigured is returned by commands that need the training cycle.
	ErrCycleNotConfigured = stderrors.New("training cycle start date is not set")
	// ErrNotInitialized is returned when the store has no schema yet.
	ErrNotInitialized = stderrors.New("database is not initialized")
	// ErrConflict is returned when a write would double-book a shift.
	ErrConflict = stderrors.New("conflicts with an existing shift")
)

var hints = []struct {
	err  error
	hint string
}{
	{ErrCycleNotConfigured, "run 'liftshift settings --cycle-start YYYY-MM-DD' first"},
	{ErrNotInitialized, "run 'liftshift init' first"},
	{ErrConflict, "pass --force to save anyway"},
}

// Hint returns a follow-up suggestion for known errors, or "".
func Hint(err error) string {
	for _, h := range hints {
		if stderrors.Is(err, h.err) {
			return h.hint
		}
	}
	return ""
}

// Format formats an error message with a consistent "Error: " prefix,
// followed by a hint line when one is known.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
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
