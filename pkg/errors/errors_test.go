package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{
			New(ErrCodeNameConflict, "software system %q already exists", "Billing"),
			`NAME_CONFLICT: software system "Billing" already exists`,
		},
		{
			Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "workspace %s not found", "ws.toml"),
			"FILE_NOT_FOUND: workspace ws.toml not found: file does not exist",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeInvalidFormat, fs.ErrNotExist, "decode TOML")
	if errors.Unwrap(err) != fs.ErrNotExist {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("std errors.Is does not see the cause")
	}
}

func TestIs(t *testing.T) {
	conflict := New(ErrCodeNameConflict, "container %q already exists", "api")
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", conflict, ErrCodeNameConflict, true},
		{"other code", conflict, ErrCodeDuplicateViewKey, false},
		{"outer of wrapped", Wrap(ErrCodeInvalidInput, conflict, "systems[0]"), ErrCodeInvalidInput, true},
		{"inner of wrapped", Wrap(ErrCodeInvalidInput, conflict, "systems[0]"), ErrCodeNameConflict, true},
		{"behind fmt.Errorf", fmt.Errorf("relationships[2] User -> Ghost: %w", New(ErrCodeUnknownElement, "no element")), ErrCodeUnknownElement, true},
		{"two fmt layers", fmt.Errorf("load: %w", fmt.Errorf("views[0]: %w", New(ErrCodeInvalidView, "x"))), ErrCodeInvalidView, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"error", New(ErrCodeNotDeployable, "Production::Cloud already runs api"), ErrCodeNotDeployable},
		{"outermost wins", Wrap(ErrCodeRender, New(ErrCodeMissingTool, "dot"), "render"), ErrCodeRender},
		{"behind fmt.Errorf", fmt.Errorf("view k: %w", New(ErrCodeViewNotFound, "k")), ErrCodeViewNotFound},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
