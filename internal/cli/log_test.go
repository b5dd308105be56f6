package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/reckon/pkg/formula"
	"github.com/matzehuels/reckon/pkg/number"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		wantDbg bool
	}{
		{"info", LogInfo, false},
		{"debug", LogDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			logger.Debug("search started", "numbers", 4)
			logger.Info("search complete", "solutions", 1)

			out := buf.String()
			if !strings.Contains(out, "search complete") {
				t.Errorf("info line missing:\n%s", out)
			}
			if got := strings.Contains(out, "search started"); got != tt.wantDbg {
				t.Errorf("debug line shown = %v, want %v:\n%s", got, tt.wantDbg, out)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))
	prog.start = time.Now().Add(-2 * time.Second)

	prog.done("Rendered expression")

	out := buf.String()
	if !strings.Contains(out, "Rendered expression (2") || !strings.Contains(out, "s)") {
		t.Errorf("done should report the message with elapsed time:\n%s", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should fall back to log.Default()")
	}

	logger := newLogger(io.Discard, LogDebug)
	if got := loggerFromContext(withLogger(context.Background(), logger)); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

// TestVerboseReachesSolve runs a search through the root command and checks
// that --verbose controls the debug lines of both the command and the solver.
func TestVerboseReachesSolve(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		var logs, out bytes.Buffer
		c := &CLI{Logger: newLogger(&logs, LogInfo), Out: &out}
		args := []string{"solve", "1", "2", "--target", "3", "--quiet", "--fixed-order"}
		if verbose {
			args = append([]string{"--verbose"}, args...)
		}
		root := c.RootCommand()
		root.SetArgs(args)
		root.SetErr(io.Discard)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("verbose=%v: %v", verbose, err)
		}

		for _, line := range []string{"search started", "search finished"} {
			if got := strings.Contains(logs.String(), line); got != verbose {
				t.Errorf("verbose=%v: %q logged = %v:\n%s", verbose, line, got, logs.String())
			}
		}
	}
}

func TestWriteDiagramsLogsProgress(t *testing.T) {
	f, err := formula.New[number.Rat](2)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetNumbers([]number.Rat{number.RatFromInt(1), number.RatFromInt(2)}); err != nil {
		t.Fatal(err)
	}
	tree, err := f.Tree()
	if err != nil {
		t.Fatal(err)
	}

	var logs, out bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&logs, LogInfo))
	opts := &solveOpts{dotPath: filepath.Join(t.TempDir(), "tree.dot")}
	if err := writeDiagrams(ctx, &out, tree, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "Rendered expression") {
		t.Errorf("missing progress line:\n%s", logs.String())
	}

	// Nothing requested, nothing logged.
	logs.Reset()
	if err := writeDiagrams(ctx, &out, tree, &solveOpts{}); err != nil {
		t.Fatal(err)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output:\n%s", logs.String())
	}
}
