// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/creachadair/jwalk"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	store := make([]byte, 8)
	buf := jwalk.NewBuffer(store)

	require.Equal(t, 3, buf.Write([]byte("abc")))
	require.Equal(t, 3, buf.Len())
	require.Equal(t, "abc", buf.String())
	require.Equal(t, byte(0), store[3], "stored data must be NUL terminated")

	require.Equal(t, 4, buf.Write([]byte("defg")))
	require.Equal(t, 7, buf.Len())
	require.Equal(t, "abcdefg", buf.String())
	require.Equal(t, byte(0), store[7])
}

func TestBuffer_truncation(t *testing.T) {
	store := make([]byte, 8)
	buf := jwalk.NewBuffer(store)

	// The reported count is the would-have-been length, so a caller can
	// size a second pass even though the store is full.
	require.Equal(t, 12, buf.Write([]byte("0123456789ab")))
	require.Equal(t, 7, buf.Len())
	require.Equal(t, "0123456", buf.String())
	require.Equal(t, byte(0), store[7])

	// Further writes still report their length.
	require.Equal(t, 5, buf.Write([]byte("xyzzy")))
	require.Equal(t, "0123456", buf.String())
	require.Equal(t, byte(0), store[7])
}

func TestBuffer_probeSizing(t *testing.T) {
	// Probe with a too-small buffer, then write for real.
	probe := jwalk.NewBuffer(make([]byte, 4))
	need := jwalk.Printf(probe, "{name: %Q, n: %d}", "example", 23)
	require.Greater(t, need, probe.Len())

	real := jwalk.NewBuffer(make([]byte, need+1))
	got := jwalk.Printf(real, "{name: %Q, n: %d}", "example", 23)
	require.Equal(t, need, got)
	require.Equal(t, `{"name": "example", "n": 23}`, real.String())
	require.Equal(t, need, real.Len())
}

func TestWriter(t *testing.T) {
	var out bytes.Buffer
	w := jwalk.NewWriter(&out)
	require.Equal(t, 5, w.Write([]byte("hello")))
	require.Equal(t, 1, w.Write([]byte(" ")))
	require.Equal(t, 5, w.Write([]byte("world")))
	require.Equal(t, "hello world", out.String())
	require.NoError(t, w.Err())
}

type failWriter struct{ err error }

func (f failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriter_error(t *testing.T) {
	werr := errors.New("disk full")
	w := jwalk.NewWriter(failWriter{err: werr})
	require.Equal(t, 4, w.Write([]byte("data")), "counts are reported even on error")
	require.ErrorIs(t, w.Err(), werr)
}
