package exec

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alexellis/go-execute/v2"
	"github.com/spf13/afero"
)

// Execer runs commands with a fixed working directory.
type Execer interface {
	// Run executes a command and returns its result. A non-zero exit code is not an error.
	// When the context ends first, the partial result is returned along with the error.
	Run(ctx context.Context, command string, args ...string) (Result, error)
	// RunX executes a command and returns its stdout. It will return an error
	// if exit code is non zero.
	RunX(ctx context.Context, command string, args ...string) (string, error)
	RunWithStdin(ctx context.Context, stdin io.Reader, command string, args ...string) (Result, error)
	RunWithStdinX(ctx context.Context, stdin io.Reader, command string, args ...string) (string, error)
	Log(ctx context.Context, level slog.Level, msg string, fields ...any)
	// WithEnv returns a copy of the execer that appends kv (KEY=VALUE) to the
	// environment of every command.
	WithEnv(kv ...string) Execer
	WithLogFields(fields ...any) Execer
	// Sub returns an execer whose working dir is subpath inside the current one.
	Sub(subpath string) (Execer, error)
	// FS returns a filesystem rooted at the working dir.
	FS() afero.Fs
}

type Option func(*execer)

// WithPrintCommand prints every command before running it.
func WithPrintCommand(enabled bool) Option {
	return func(e *execer) {
		e.printCommand = enabled
	}
}

// WithLogger sets the logger used by Log. Commands are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *execer) {
		if l != nil {
			e.logger = l
		}
	}
}

type execer struct {
	dir          string
	printCommand bool
	env          []string
	logger       *slog.Logger
	fs           afero.Fs
}

var _ Execer = execer{}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func NewExecer(dir string, opts ...Option) Execer {
	e := execer{dir: dir, logger: discardLogger, fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (e execer) Run(ctx context.Context, command string, args ...string) (Result, error) {
	return e.RunWithStdin(ctx, nil, command, args...)
}

func (e execer) RunX(ctx context.Context, command string, args ...string) (string, error) {
	return e.RunWithStdinX(ctx, nil, command, args...)
}

func (e execer) RunWithStdinX(ctx context.Context, stdin io.Reader, command string, args ...string) (string, error) {
	res, err := e.RunWithStdin(ctx, stdin, command, args...)
	if err != nil {
		return "", err
	}

	if res.ExitCode() != 0 {
		return res.Stdout(), NewExecErr(
			fmt.Sprintf("%s: exit code %d", cmdString(command, args...), res.ExitCode()),
			res.Stderr(), res.ExitCode(),
		)
	}

	return res.Stdout(), nil
}

func (e execer) RunWithStdin(ctx context.Context, stdin io.Reader, command string, args ...string) (Result, error) {
	task := execute.ExecTask{
		Command:      command,
		Args:         args,
		Cwd:          e.dir,
		Env:          e.env,
		PrintCommand: e.printCommand,
		Stdin:        stdin,
	}

	e.logger.DebugContext(ctx, "Running command", "command", cmdString(command, args...), "dir", e.dir)

	execRes, err := task.Execute(ctx)
	if err != nil {
		return result{execRes}, fmt.Errorf("%s: %w", cmdString(command, args...), err)
	}

	e.logger.DebugContext(ctx, "Command finished", "command", cmdString(command, args...), "exit_code", execRes.ExitCode)

	return result{execRes}, nil
}

func (e execer) Log(ctx context.Context, level slog.Level, msg string, fields ...any) {
	e.logger.Log(ctx, level, msg, fields...)
}

func (e execer) WithEnv(kv ...string) Execer {
	e.env = append(append([]string{}, e.env...), kv...)
	return e
}

func (e execer) WithLogFields(fields ...any) Execer {
	e.logger = e.logger.With(fields...)
	return e
}

func (e execer) Sub(subpath string) (Execer, error) {
	isDir, err := afero.IsDir(e.FS(), subpath)
	if err != nil {
		return nil, fmt.Errorf("checking sub directory %q: %w", subpath, err)
	}

	if !isDir {
		return nil, fmt.Errorf("%q is not a directory", subpath)
	}

	e.dir = filepath.Join(e.dir, subpath)
	return e, nil
}

func (e execer) FS() afero.Fs {
	return afero.NewBasePathFs(e.fs, e.dir)
}

func cmdString(command string, args ...string) string {
	return strings.Join(append([]string{command}, args...), " ")
}

// Result holds the result from a command run
type Result interface {
	Stdout() string
	TrimStdout() string
	Stderr() string
	ExitCode() int
	Cancelled() bool
}

type result struct {
	execute.ExecResult
}

func (r result) Stdout() string {
	return r.ExecResult.Stdout
}

// TrimStdout returns the content of stdout removing the trailing new lines.
func (r result) TrimStdout() string {
	return strings.TrimSpace(r.ExecResult.Stdout)
}

func (r result) Stderr() string {
	return r.ExecResult.Stderr
}

func (r result) ExitCode() int {
	return r.ExecResult.ExitCode
}

func (r result) Cancelled() bool {
	return r.ExecResult.Cancelled
}
