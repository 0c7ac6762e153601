package workerloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/renanaferreira/sokoban-solver/levelmap"
	"github.com/renanaferreira/sokoban-solver/search"
)

func parseLevel(t *testing.T, text string) levelmap.Map {
	t.Helper()
	m, err := levelmap.Parse([]byte(text))
	require.NoError(t, err)
	return m
}

func TestSolveTrivialLevel(t *testing.T) {
	m := parseLevel(t, "#####\n#@$.#\n#####")
	result := Solve(m, search.Greedy)
	require.NoError(t, result.Err)
	require.Equal(t, "d", result.Keystrokes)
}

func TestDispatcherOnlyDeliversLatestSubmission(t *testing.T) {
	d := &Dispatcher{}
	trivial := parseLevel(t, "#####\n#@$.#\n#####")

	stale := d.Submit(trivial, search.Greedy)
	fresh := d.Submit(trivial, search.Greedy)

	select {
	case _, ok := <-stale:
		if ok {
			t.Fatalf("stale submission must not deliver a result")
		}
	case <-time.After(200 * time.Millisecond):
		// expected: the stale channel never receives anything.
	}

	select {
	case result := <-fresh:
		require.NoError(t, result.Err)
		require.Equal(t, "d", result.Keystrokes)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the latest submission's result")
	}
}
