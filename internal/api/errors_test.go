package api

import (
	"fmt"
	"testing"

	"taskboard/internal/service"
)

func TestRegisterErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"conflict", fmt.Errorf("%w: username taken", service.ErrConflict), RegisterErrUsernameTaken},
		{"username shape", fmt.Errorf("%w: username must be 3-20 characters", service.ErrValidation), RegisterErrInvalidUsername},
		{"blank password", fmt.Errorf("%w: must not be blank", service.ErrPasswordValidation), RegisterErrInvalidPassword},
		{"store down", fmt.Errorf("credential store: %w", service.ErrUnavailable), RegisterErrUnavailable},
		{"anything else", fmt.Errorf("boom"), RegisterErrFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := registerErrorCode(tt.err); got != tt.want {
				t.Errorf("registerErrorCode(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}
