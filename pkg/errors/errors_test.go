// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/emailnotify/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_template_error",
			code:    errors.ErrInvalidTemplate,
			message: "named placeholder {user}",
			wantStr: "[INVALID_TEMPLATE] named placeholder {user}",
		},
		{
			name:    "dangling_reference_error",
			code:    errors.ErrDanglingReference,
			message: "unknown template t9",
			wantStr: "[DANGLING_REFERENCE] unknown template t9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidCondition, "item %s: condition %d does not compile", "disk", 2)

	want := "item disk: condition 2 does not compile"
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("connection refused")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSend, "send failed")

		if err.Code != errors.ErrSend {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrSend)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[SEND] send failed: connection refused"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrSend, "send failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrapf(nil, errors.ErrSend, "send to %s failed", "ops")
		if err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDanglingReference, "unknown item").
		WithDetail("user", "ops@example.com").
		WithDetail("item", "disk")

	if err.Details["user"] != "ops@example.com" {
		t.Errorf("WithDetail() user = %v, want %v", err.Details["user"], "ops@example.com")
	}

	if err.Details["item"] != "disk" {
		t.Errorf("WithDetail() item = %v, want %v", err.Details["item"], "disk")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"item":     "disk",
		"position": 1,
		"pattern":  "([",
	}

	err := errors.New(errors.ErrInvalidCondition, "bad pattern").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidTemplate, "error 1")
	err2 := errors.New(errors.ErrInvalidTemplate, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with NotifyError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "inner_code_of_chain",
			err:      errors.Wrap(errors.New(errors.ErrTransport, "refused"), errors.ErrSend, "send failed"),
			code:     errors.ErrTransport,
			expected: true,
		},
		{
			name:     "second_branch_of_join",
			err:      stderrors.Join(errors.New(errors.ErrSend, "a"), errors.New(errors.ErrTransport, "b")),
			code:     errors.ErrTransport,
			expected: true,
		},
		{
			name:     "absent_from_join",
			err:      stderrors.Join(errors.New(errors.ErrSend, "a"), stderrors.New("b")),
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "notify_error",
			err:      errors.New(errors.ErrDuplicateSubscription, "listed twice"),
			expected: errors.ErrDuplicateSubscription,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrInvalidTemplate, "bad").WithDetail("template", "t1")

	if got := errors.GetErrorDetails(err); got["template"] != "t1" {
		t.Errorf("GetErrorDetails() template = %v, want t1", got["template"])
	}

	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on standard error = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read config")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var notifyErr *errors.NotifyError
		if stderrors.As(configErr.Unwrap(), &notifyErr) {
			if !errors.IsErrorCode(notifyErr, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

func TestJoin(t *testing.T) {
	a := errors.New(errors.ErrSend, "a")
	b := errors.New(errors.ErrTransport, "b")

	joined := errors.Join(a, nil, b)
	if !errors.IsErrorCode(joined, errors.ErrSend) || !errors.IsErrorCode(joined, errors.ErrTransport) {
		t.Errorf("Join() lost a code: %v", joined)
	}

	if errors.Join(nil, nil) != nil {
		t.Error("Join() of nils should be nil")
	}
}
