package mdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/theIDinside/mdb/exec"
)

// ErrUnknownSubject is returned when no main package exists for a subject.
var ErrUnknownSubject = errors.New("unknown subject")

// Harness builds test subjects and launches them.
type Harness struct {
	exec        exec.Execer
	subjectsDir string
	binDir      string

	mu     sync.Mutex
	builds map[string]*build
}

type build struct {
	mu   sync.Mutex
	done bool
	path string
	err  error
}

// New returns a harness whose subjects live under root.
func New(root string, opts Options) (*Harness, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	binDir, err := opts.binDir()
	if err != nil {
		return nil, fmt.Errorf("resolving bin dir: %w", err)
	}

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating bin dir: %w", err)
	}

	x := exec.NewExecer(absRoot, exec.WithPrintCommand(opts.Debug), exec.WithLogger(opts.logger()))
	if len(opts.Env) > 0 {
		x = x.WithEnv(opts.Env...)
	}

	return newHarness(x, opts.subjectsDir(), binDir), nil
}

func newHarness(x exec.Execer, subjectsDir, binDir string) *Harness {
	return &Harness{
		exec:        x,
		subjectsDir: subjectsDir,
		binDir:      binDir,
		builds:      map[string]*build{},
	}
}

// Build compiles the subject once per harness and returns the path of the
// executable. Concurrent callers wait for the same build. A build interrupted
// by its caller's context is not cached and the next caller retries it.
func (h *Harness) Build(ctx context.Context, name string) (string, error) {
	if !validSubjectName(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubject, name)
	}

	h.mu.Lock()
	b, ok := h.builds[name]
	if !ok {
		b = &build{}
		h.builds[name] = b
	}
	h.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done {
		return b.path, b.err
	}

	path, err := h.compile(ctx, name)
	if isContextErr(err) {
		return "", err
	}

	b.done, b.path, b.err = true, path, err
	return path, err
}

// validSubjectName accepts a single path element naming a directory under
// the subjects dir.
func validSubjectName(name string) bool {
	return filepath.IsLocal(name) && filepath.Base(name) == name && name != "."
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (h *Harness) compile(ctx context.Context, name string) (string, error) {
	pkgDir := filepath.Join(h.subjectsDir, name)

	isDir, err := afero.IsDir(h.exec.FS(), pkgDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("looking up subject %q: %w", name, err)
	}

	if !isDir {
		return "", fmt.Errorf("%w: %s", ErrUnknownSubject, name)
	}

	out := filepath.Join(h.binDir, name)
	x := h.exec.WithLogFields("subject", name)
	x.Log(ctx, slog.LevelDebug, "Building subject", "output", out)

	if _, err := x.RunX(ctx, "go", "build", "-o", out, "./"+filepath.ToSlash(pkgDir)); err != nil {
		if stderr, ok := exec.GetStderr(err); ok {
			x.Log(ctx, slog.LevelError, "Subject build failed", "stderr", stderr)
		}
		return "", fmt.Errorf("building subject %q: %w", name, err)
	}

	return out, nil
}

// Launch builds the subject if needed and runs it with args. A non-zero exit
// status is reported in the outcome, not as an error. When ctx ends before the
// subject exits, the partial outcome is returned with Cancelled set, together
// with the context error.
func (h *Harness) Launch(ctx context.Context, name string, args ...string) (Outcome, error) {
	path, err := h.Build(ctx, name)
	if err != nil {
		return Outcome{}, err
	}

	x := h.exec.WithLogFields("subject", name)

	res, err := x.Run(ctx, path, args...)
	if err != nil {
		if res == nil || !isContextErr(err) {
			return Outcome{}, fmt.Errorf("launching subject %q: %w", name, err)
		}

		out := newOutcome(res)
		out.Cancelled = true
		x.Log(ctx, slog.LevelWarn, "Subject interrupted", "error", err)

		return out, fmt.Errorf("launching subject %q: %w", name, err)
	}

	x.Log(ctx, slog.LevelDebug, "Subject exited", "exit_status", res.ExitCode(), "cancelled", res.Cancelled())

	return newOutcome(res), nil
}

func newOutcome(res exec.Result) Outcome {
	return Outcome{
		Stdout:     res.Stdout(),
		Stderr:     res.Stderr(),
		ExitStatus: res.ExitCode(),
		Cancelled:  res.Cancelled(),
	}
}
