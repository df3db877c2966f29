package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("disk full")
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{"user", NewUserError("unknown backend %q", "latex"), ExitUserError, `unknown backend "latex"`},
		{"system", NewSystemError("writing docs/a.md", cause), ExitSystemError, "writing docs/a.md: disk full"},
		{"system without cause", NewSystemError("walk failed", nil), ExitSystemError, "walk failed"},
		{"partial one", NewPartialError(1), ExitPartial, "1 admonition could not be converted"},
		{"partial many", NewPartialError(3), ExitPartial, "3 admonitions could not be converted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestSystemError_Unwraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewSystemError("reading config", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want cause reachable")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user", NewUserError("bad"), ExitUserError},
		{"system", NewSystemError("io", nil), ExitSystemError},
		{"partial", NewPartialError(2), ExitPartial},
		{"wrapped", fmt.Errorf("apply: %w", NewSystemError("io", nil)), ExitSystemError},
		{"untyped", errors.New("unknown flag: --nope"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
