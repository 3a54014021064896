package mdb

import (
	"context"
	"fmt"
	"strings"
)

// Step is one action of a scenario run against a harness.
type Step func(ctx context.Context, h *Harness) error

// BuildStep compiles the subject.
func BuildStep(name string) Step {
	return func(ctx context.Context, h *Harness) error {
		_, err := h.Build(ctx, name)
		return err
	}
}

// ExpectStep launches the subject with args and checks the outcome against exp.
func ExpectStep(name string, exp Expectation, args ...string) Step {
	return func(ctx context.Context, h *Harness) error {
		out, err := h.Launch(ctx, name, args...)
		if err != nil {
			return err
		}

		if err := out.Check(exp); err != nil {
			return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}

		return nil
	}
}

// RunSteps runs steps in order and stops at the first failure.
func RunSteps(ctx context.Context, h *Harness, steps ...Step) error {
	for _, step := range steps {
		if err := step(ctx, h); err != nil {
			return err
		}
	}

	return nil
}
