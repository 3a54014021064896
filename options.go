package mdb

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	defaultSubjectsDir = "subjects"
	binDirName         = "midas-subjects"
)

// Options configures a Harness. The zero value is usable.
type Options struct {
	// SubjectsDir is the directory, relative to the harness root, holding one
	// main package per subject. Defaults to "subjects".
	SubjectsDir string
	// BinDir receives the built subjects. Defaults to $TMPDIR/midas-subjects.
	BinDir string
	// Env is appended to the environment of builds and launched subjects.
	Env []string
	// Debug prints every command run by the harness.
	Debug bool
	// LogHandler receives harness logs. Logs are discarded when nil.
	LogHandler slog.Handler
}

func (o Options) subjectsDir() string {
	if o.SubjectsDir == "" {
		return defaultSubjectsDir
	}
	return o.SubjectsDir
}

func (o Options) binDir() (string, error) {
	if o.BinDir == "" {
		return filepath.Join(os.TempDir(), binDirName), nil
	}
	return filepath.Abs(o.BinDir)
}

func (o Options) logger() *slog.Logger {
	if o.LogHandler == nil {
		return nil
	}
	return slog.New(o.LogHandler)
}
