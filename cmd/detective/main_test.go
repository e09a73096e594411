package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunConsole_Transcript(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{TermWidth: 100}

	err := runConsole(context.Background(), cfg, testLogger(), strings.NewReader("e\ne\ns\nMarie the Cook\n"), &out)
	require.NoError(t, err)

	transcript := out.String()
	assert.Contains(t, transcript, "Action (e) go LEFT, (d) go RIGHT, (s) STOP and judge:")
	assert.Contains(t, transcript, "Master Bedroom")
	assert.Contains(t, transcript, "Who do you accuse?")
	assert.Contains(t, transcript, "ACCUSATION FAILED")
	assert.Contains(t, transcript, "Program finished")
}

func TestRunConsole_WithBroadcasting(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	var out bytes.Buffer
	cfg := &config.Config{TermWidth: 80, RedisURL: "redis://" + mr.Addr()}

	err = runConsole(context.Background(), cfg, testLogger(), strings.NewReader("d\nd\ns\nLady Agatha\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "CASE CLOSED")
}

func TestRunConsole_UnreachableRedisIsNotFatal(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{TermWidth: 80, RedisURL: "redis://127.0.0.1:1"}

	err := runConsole(context.Background(), cfg, testLogger(), strings.NewReader("s\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Accused suspect: nobody")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	rootCmd.SetArgs([]string{"unexpected"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	defer rootCmd.SetArgs(nil)

	assert.Error(t, rootCmd.Execute())
}
