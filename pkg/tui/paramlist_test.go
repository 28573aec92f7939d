package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grublist/grublist-cli/pkg/grubcfg"
)

func openParamList(t *testing.T, params []string) (*App, *paramListScreen) {
	t.Helper()
	a := newTestApp(t)
	s := newParamListScreen(grubcfg.KeyCmdlineLinuxDefault, params)
	a.push(s)
	return a, s
}

func TestParamListDeleteClampsSelection(t *testing.T) {
	a, s := openParamList(t, []string{"quiet", "splash", "nomodeset"})

	// Selection on the last item, then delete it by index.
	press(a, "up") // wraps to index 2
	require.Equal(t, 2, s.cursor)

	press(a, "d", "2", "enter")
	assert.Equal(t, []string{"quiet", "splash"}, s.params)
	assert.Equal(t, 1, s.cursor) // max(0, k-2), never past the end
	assert.Equal(t, paramIdle, s.mode)
}

func TestParamListDeleteLastItem(t *testing.T) {
	a, s := openParamList(t, []string{"quiet"})

	press(a, "d", "0", "enter")
	assert.Empty(t, s.params)
	assert.Equal(t, 0, s.cursor)
}

func TestParamListDeleteInvalidIndexReprompts(t *testing.T) {
	a, s := openParamList(t, []string{"quiet", "splash"})

	press(a, "d", "9", "enter")
	assert.Equal(t, paramDeleteIndex, s.mode) // still prompting
	assert.Len(t, s.params, 2)
	assert.Empty(t, s.input.Value()) // bad input discarded

	press(a, "x", "enter")
	assert.Equal(t, paramDeleteIndex, s.mode)
	assert.Len(t, s.params, 2)

	press(a, "1", "enter")
	assert.Equal(t, []string{"quiet"}, s.params)
	assert.Equal(t, paramIdle, s.mode)
}

func TestParamListSubModeConsumesBack(t *testing.T) {
	a, s := openParamList(t, []string{"quiet"})

	press(a, "a")
	require.Equal(t, paramAddName, s.mode)

	// Esc leaves the sub-mode, not the screen.
	press(a, "esc")
	assert.Equal(t, paramIdle, s.mode)
	assert.Same(t, s, a.current)
}

func TestParamListEditValue(t *testing.T) {
	a, s := openParamList(t, []string{"quiet", "resume=UUID=abc"})

	press(a, "down", "e")
	require.Equal(t, paramEditValue, s.mode)
	assert.Equal(t, "UUID=abc", s.input.Value())

	for range "abc" {
		press(a, "backspace")
	}
	press(a, "x", "y", "z", "enter")
	assert.Equal(t, "resume=UUID=xyz", s.params[1])
	assert.Equal(t, paramIdle, s.mode)
}

func TestParamListEditToFlag(t *testing.T) {
	a, s := openParamList(t, []string{"resume=UUID=abc"})

	press(a, "e")
	for range "UUID=abc" {
		press(a, "backspace")
	}
	press(a, "enter")
	assert.Equal(t, []string{"resume"}, s.params)
}

func TestParamListAdd(t *testing.T) {
	a, s := openParamList(t, []string{"quiet"})

	press(a, "a")
	for _, r := range "mitigations" {
		press(a, string(r))
	}
	press(a, "enter")
	require.Equal(t, paramAddValue, s.mode)

	for _, r := range "off" {
		press(a, string(r))
	}
	press(a, "enter")
	assert.Equal(t, []string{"quiet", "mitigations=off"}, s.params)
	assert.Equal(t, 1, s.cursor)
	assert.Equal(t, paramIdle, s.mode)
}

func TestParamListAddEmptyNameReprompts(t *testing.T) {
	a, s := openParamList(t, nil)

	press(a, "a", "enter")
	assert.Equal(t, paramAddName, s.mode)
	assert.Empty(t, s.params)
}

func TestParamListAddFlag(t *testing.T) {
	a, s := openParamList(t, nil)

	press(a, "a", "q", "enter", "enter") // empty value adds a flag
	assert.Equal(t, []string{"q"}, s.params)
}

func TestParamListExitPersistsAndRebuildsParent(t *testing.T) {
	a, s := openParamList(t, grubcfg.ParseParams("quiet splash"))

	press(a, "d", "1", "enter") // drop splash
	require.Equal(t, []string{"quiet"}, s.params)

	press(a, "esc") // idle back: save and hand over to a fresh parent

	parent, ok := a.current.(*kernelParamsScreen)
	require.True(t, ok)
	assert.Equal(t, "quiet", parent.cfg.Params[grubcfg.KeyCmdlineLinuxDefault])

	content, err := os.ReadFile(a.Settings.DefaultsPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `GRUB_CMDLINE_LINUX_DEFAULT="quiet"`)
}

func TestParamListDiscard(t *testing.T) {
	a, s := openParamList(t, grubcfg.ParseParams("quiet splash"))

	press(a, "d", "0", "enter")
	require.Equal(t, []string{"splash"}, s.params)

	press(a, "q") // discard

	parent, ok := a.current.(*kernelParamsScreen)
	require.True(t, ok)
	assert.Equal(t, "quiet splash", parent.cfg.Params[grubcfg.KeyCmdlineLinuxDefault])
}

func TestKernelParamsCursorWraps(t *testing.T) {
	a := newTestApp(t)
	s, ok := newKernelParamsScreen(a).(*kernelParamsScreen)
	require.True(t, ok)
	a.push(s)

	require.Equal(t, 0, s.cursor)
	press(a, "down")
	assert.Equal(t, 1, s.cursor)
	press(a, "down") // past the last variable, back to the first
	assert.Equal(t, 0, s.cursor)
	press(a, "up") // and the other way around
	assert.Equal(t, len(cmdlineKeys)-1, s.cursor)
}
