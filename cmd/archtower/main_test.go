package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

const monkeyFactory = "../../examples/monkey-factory.toml"

func TestRun(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{name: "validate", args: []string{"validate", monkeyFactory}, code: 0, stdout: "is valid"},
		{name: "views", args: []string{"views", monkeyFactory}, code: 0, stdout: "factory-containers"},
		{name: "missing workspace", args: []string{"validate", "nope.toml"}, code: 1, stderr: "Error:"},
		{name: "unknown command", args: []string{"paint"}, code: 1, stderr: "unknown command"},
		{name: "version", args: []string{"--version"}, code: 0, stdout: "archtower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)
			if code != tt.code {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tt.code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.stdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.stdout)
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"render", monkeyFactory, "-f", "svg", "-o", t.TempDir(), "--no-cache"}, &stdout, &stderr)
	if code != exitInterrupted {
		t.Errorf("exit code = %d, want %d (stderr: %s)", code, exitInterrupted, stderr.String())
	}
}
