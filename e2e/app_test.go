//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartShowsDefaultWidgets(t *testing.T) {
	t.Parallel()
	s := NewSession(t)
	defer s.Close()

	require.NoError(t, s.Start())
	require.True(t, s.Ready(), "Should receive ready signal")

	require.True(t, s.See("Async Search"))
	require.True(t, s.See("Sync Search"))
	require.True(t, s.See("This is a sync search with single select"))
	require.True(t, s.See("Type to begin searching"))
}

func TestQuitPrintsReport(t *testing.T) {
	t.Parallel()
	s := NewSession(t)
	defer s.Close()

	require.NoError(t, s.Start())
	require.True(t, s.Ready())

	require.NoError(t, s.Quit())
	require.NoError(t, s.WaitExit(3*time.Second), "q quits when no field is edited")

	require.True(t, s.See("SELECTIONS") || s.See("Selections"))
	require.True(t, s.See("sync-single"))
}

func TestCtrlCQuitsWhileEditing(t *testing.T) {
	t.Parallel()
	s := NewSession(t)
	defer s.Close()

	require.NoError(t, s.Start())
	require.True(t, s.Ready())

	require.NoError(t, s.Edit())
	require.NoError(t, s.Type("q"), "q is text while editing")
	require.NoError(t, s.Interrupt())
	require.NoError(t, s.WaitExit(3*time.Second))
}
