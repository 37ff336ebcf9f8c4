package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcaret/core/parameters"
	"github.com/npillmayer/textcaret/engine/glyphing/monospace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.core")
	defer teardown()
	//
	cmd, err := parseCommand(`text Hello\nworld`)
	require.NoError(t, err)
	assert.Equal(t, TEXT, cmd.code)
	assert.Equal(t, "Hello\nworld", cmd.arg)
	cmd, err = parseCommand("Tap 10 12.5")
	require.NoError(t, err)
	assert.Equal(t, TAP, cmd.code)
	assert.Equal(t, float32(10), cmd.x)
	assert.Equal(t, float32(12.5), cmd.y)
	_, err = parseCommand("select 10")
	assert.Error(t, err)
	_, err = parseCommand("scroll a b")
	assert.Error(t, err)
	cmd, _ = parseCommand("whatever")
	assert.Equal(t, HELP, cmd.code)
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.core")
	defer teardown()
	//
	intp := &Intp{
		regs:   parameters.NewTypesettingRegisters(),
		shaper: monospace.Shaper(8, nil),
	}
	for _, line := range []string{"text Hello world", "width 48px", "dir rtl", "align center",
		"tap 3 3", "scroll 3 100", "cursor 4", "select 10 10", "lines"} {
		cmd, err := parseCommand(line)
		require.NoError(t, err, line)
		quit, err := intp.execute(cmd)
		assert.NoError(t, err, line)
		assert.False(t, quit)
	}
	assert.Equal(t, 2, len(intp.vm.Lines))
	cmd, _ := parseCommand("dir up")
	_, err := intp.execute(cmd)
	assert.Error(t, err)
	cmd, _ = parseCommand("quit")
	quit, _ := intp.execute(cmd)
	assert.True(t, quit)
}
