package mock

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	mdbexec "github.com/theIDinside/mdb/exec"
)

type Execer struct {
	RunFn           func(ctx context.Context, command string, args ...string) (mdbexec.Result, error)
	RunXFn          func(ctx context.Context, command string, args ...string) (string, error)
	RunWithStdinFn  func(ctx context.Context, stdin io.Reader, command string, args ...string) (mdbexec.Result, error)
	RunWithStdinXFn func(ctx context.Context, stdin io.Reader, command string, args ...string) (string, error)
	Logger          *slog.Logger

	WithEnvFn       func(kv ...string) mdbexec.Execer
	WithLogFieldsFn func(fields ...any) mdbexec.Execer
	SubFn           func(subpath string) (mdbexec.Execer, error)
	FSFn            func() afero.Fs
}

var _ mdbexec.Execer = Execer{}

func (x Execer) Run(ctx context.Context, command string, args ...string) (mdbexec.Result, error) {
	return x.RunFn(ctx, command, args...)
}

func (x Execer) RunX(ctx context.Context, command string, args ...string) (string, error) {
	return x.RunXFn(ctx, command, args...)
}

func (x Execer) RunWithStdin(ctx context.Context, stdin io.Reader, command string, args ...string) (mdbexec.Result, error) {
	return x.RunWithStdinFn(ctx, stdin, command, args...)
}

func (x Execer) RunWithStdinX(ctx context.Context, stdin io.Reader, command string, args ...string) (string, error) {
	return x.RunWithStdinXFn(ctx, stdin, command, args...)
}

func (x Execer) Log(ctx context.Context, level slog.Level, msg string, fields ...any) {
	if x.Logger != nil {
		x.Logger.Log(ctx, level, msg, fields...)
	}
}

// WithEnv returns x itself when WithEnvFn is not set.
func (x Execer) WithEnv(kv ...string) mdbexec.Execer {
	if x.WithEnvFn == nil {
		return x
	}
	return x.WithEnvFn(kv...)
}

// WithLogFields returns x itself when WithLogFieldsFn is not set.
func (x Execer) WithLogFields(fields ...any) mdbexec.Execer {
	if x.WithLogFieldsFn == nil {
		return x
	}
	return x.WithLogFieldsFn(fields...)
}

func (x Execer) Sub(subpath string) (mdbexec.Execer, error) {
	return x.SubFn(subpath)
}

func (x Execer) FS() afero.Fs {
	return x.FSFn()
}

// Result is a static mdbexec.Result.
type Result struct {
	StdoutValue   string
	StderrValue   string
	ExitCodeValue int
	Cancel        bool
}

var _ mdbexec.Result = Result{}

func (r Result) Stdout() string     { return r.StdoutValue }
func (r Result) TrimStdout() string { return strings.TrimSpace(r.StdoutValue) }
func (r Result) Stderr() string     { return r.StderrValue }
func (r Result) ExitCode() int      { return r.ExitCodeValue }
func (r Result) Cancelled() bool    { return r.Cancel }
