package cli

import (
	"errors"
	"fmt"

	"github.com/yaklabco/luaoutline/pkg/runner"
	"github.com/yaklabco/luaoutline/pkg/symbols"
)

// Exit codes for luaoutline.
const (
	// ExitSuccess indicates every symbol resolved.
	ExitSuccess = 0

	// ExitUnresolved indicates the run completed but some symbols did not resolve.
	ExitUnresolved = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates invalid configuration, manifest, or symbol input.
	ExitDataError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Errors returned by commands to select an exit code.
var (
	// ErrUnresolved is returned when a run leaves symbols unresolved.
	ErrUnresolved = errors.New("symbols unresolved")

	// ErrUsage marks invalid arguments or flags.
	ErrUsage = errors.New("invalid usage")

	// ErrInvalidInput marks invalid configuration, manifests, or symbol input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO marks files that could not be read or written.
	ErrIO = errors.New("i/o error")
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUnresolved):
		return ExitUnresolved
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrInvalidInput):
		return ExitDataError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ExitCodeFromResult determines the exit code of a completed run. Files that
// could not be read outrank unresolved symbols.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	for _, file := range result.Files {
		if file.Error == nil {
			continue
		}
		if errors.Is(file.Error, symbols.ErrInvalidSymbols) {
			return ExitDataError
		}
		if !errors.Is(file.Error, runner.ErrNotLua) {
			return ExitIOError
		}
	}

	if result.HasFailures() {
		return ExitUnresolved
	}

	return ExitSuccess
}

// resultError converts a run's exit code into the matching command error.
func resultError(result *runner.Result) error {
	switch ExitCodeFromResult(result) {
	case ExitSuccess:
		return nil
	case ExitIOError:
		return fmt.Errorf("%w: some files could not be read", ErrIO)
	case ExitDataError:
		return fmt.Errorf("%w: some symbol files could not be decoded", ErrInvalidInput)
	default:
		return ErrUnresolved
	}
}
