package errors

import (
	"fmt"
	"testing"
)

var errSentinel = New("sentinel")

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(errSentinel, ExitUser),
			want: "sentinel",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(Wrap(errSentinel, "loading config"), ExitUser),
			want: "loading config: sentinel",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitSystem),
			want: "exit code 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(Wrapf(errSentinel, "changing to %q", "nord"), "try again")
	if !Is(err, errSentinel) {
		t.Error("errors.Is() should find the sentinel through ExitError")
	}
	if Is(err, ErrMissingArgument) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errSentinel, ExitUser},
		{"user error", NewUserError(errSentinel, ""), ExitUser},
		{"system error", NewSystemError(errSentinel, ""), ExitSystem},
		{"wrapped system error", fmt.Errorf("running: %w", NewSystemError(errSentinel, "")), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMark(t *testing.T) {
	cause := fmt.Errorf("open /x: %w", errSentinel)
	marker := New("io failure")

	err := Mark(Wrap(cause, "reading config"), marker)
	if !Is(err, marker) {
		t.Error("Mark() should make errors.Is match the marker")
	}
	if !Is(err, errSentinel) {
		t.Error("Mark() should keep the original cause reachable")
	}
	if got, want := err.Error(), "reading config: open /x: sentinel"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		e := NewUserError(errSentinel, "check input")
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "check input" {
			t.Errorf("Suggestion = %q, want 'check input'", e.Suggestion)
		}
	})

	t.Run("NewSystemError", func(t *testing.T) {
		e := NewSystemError(errSentinel, "check permissions")
		if e.Code != ExitSystem {
			t.Errorf("Code = %d, want %d", e.Code, ExitSystem)
		}
		if e.Suggestion != "check permissions" {
			t.Errorf("Suggestion = %q, want 'check permissions'", e.Suggestion)
		}
	})
}

func TestJoin(t *testing.T) {
	if Join() != nil || Join(nil, nil) != nil {
		t.Error("Join() with no errors should be nil")
	}
	a, b := New("a"), New("b")
	err := Join(a, nil, b)
	if !Is(err, a) || !Is(err, b) {
		t.Errorf("Join() = %v, want both errors reachable", err)
	}
}
