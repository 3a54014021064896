package subject

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	t.Run("without arguments", func(t *testing.T) {
		require.Equal(t, "Hello world!\n", Greeting(nil))
		require.Equal(t, "Hello world!\n", Greeting([]string{}))
	})

	t.Run("with one argument", func(t *testing.T) {
		require.Equal(t, "Hello world: 'foo'\n", Greeting([]string{"foo"}))
	})

	t.Run("ignores extra arguments", func(t *testing.T) {
		require.Equal(t, "Hello world: 'foo'\n", Greeting([]string{"foo", "bar", "baz"}))
	})

	t.Run("inserts the argument verbatim", func(t *testing.T) {
		require.Equal(t, "Hello world: ''\n", Greeting([]string{""}))
		require.Equal(t, "Hello world: '%s it's\n'\n", Greeting([]string{"%s it's\n"}))
	})
}

func TestRun(t *testing.T) {
	cases := map[string]struct {
		args     []string
		expected string
	}{
		"no arguments":    {nil, "Hello world!\nchecking out..."},
		"one argument":    {[]string{"foo"}, "Hello world: 'foo'\nchecking out..."},
		"two arguments":   {[]string{"foo", "bar"}, "Hello world: 'foo'\nchecking out..."},
		"empty argument":  {[]string{""}, "Hello world: ''\nchecking out..."},
		"spaced argument": {[]string{"exit with status"}, "Hello world: 'exit with status'\nchecking out..."},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			status := Run(&out, tc.args)
			require.Equal(t, ExitStatus, status)
			require.Equal(t, tc.expected, out.String())
			require.NotEqual(t, byte('\n'), out.Bytes()[out.Len()-1])
		})
	}
}

func TestRunIsRepeatable(t *testing.T) {
	var first, second bytes.Buffer
	require.Equal(t, Run(&first, []string{"again"}), Run(&second, []string{"again"}))
	require.Equal(t, first.Bytes(), second.Bytes())
}
