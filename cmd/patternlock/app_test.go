package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/patternlock/audio"
	"github.com/lixenwraith/patternlock/schedule"
	"github.com/lixenwraith/patternlock/session"
	"github.com/lixenwraith/patternlock/store"
)

type harness struct {
	app    *app
	screen tcell.SimulationScreen
	clock  *schedule.ManualClock
	store  *store.FileStore
	quit   bool
}

func newHarness(t *testing.T, mode session.Mode, answer ...int) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(200, 27)
	t.Cleanup(screen.Fini)

	h := &harness{
		screen: screen,
		clock:  schedule.NewManualClock(time.Unix(0, 0)),
		store:  store.NewFileStore(filepath.Join(t.TempDir(), "answer.yaml"), 3),
	}
	h.app = newApp(context.Background(), screen, h.store, audio.NewPlayer(false), zerolog.Nop(), func() { h.quit = true })

	cfg := session.DefaultConfig()
	cfg.Mode = mode
	cfg.Answer = answer
	s, err := session.New(cfg, session.WithListener(h.app), session.WithClock(h.clock))
	require.NoError(t, err)
	h.app.attach(s)
	return h
}

// drag presses on the first cell, drags through the rest and releases
func (h *harness) drag(ids ...int) {
	cells := h.app.session.Cells()
	at := func(id int) (int, int) { return h.app.viewport.ToScreen(cells[id-1].Center()) }

	x, y := at(ids[0])
	h.app.handleTerminal(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	for _, id := range ids[1:] {
		x, y = at(id)
		h.app.handleTerminal(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	}
	h.app.handleTerminal(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func (h *harness) key(r rune) {
	h.app.handleTerminal(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *harness) row(y int) string {
	h.app.draw()
	var b strings.Builder
	for x := 0; x < 200; x++ {
		r, _, _, _ := h.screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestApp_LockSavesConfirmedAnswer(t *testing.T) {
	h := newHarness(t, session.ModeLock)

	h.drag(1, 5, 9)
	assert.Contains(t, h.row(0), "draw it again")
	h.clock.Advance(time.Second)

	h.drag(1, 5, 9)
	assert.Contains(t, h.row(0), "New pattern saved")

	saved, err := h.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 9}, saved)
	assert.Equal(t, []int{1, 5, 9}, h.app.session.Answer())
}

func TestApp_UnlockLockoutAndRearm(t *testing.T) {
	h := newHarness(t, session.ModeUnlock, 1, 2, 3)
	h.drag(7, 8)
	assert.Contains(t, h.row(0), "2 attempts left")
	h.clock.Advance(time.Second)
	for range 2 {
		h.drag(7, 8)
		h.clock.Advance(time.Second)
	}
	assert.Contains(t, h.row(0), "Locked out")
	assert.Equal(t, session.StateLockedOut, h.app.session.State())

	h.key('r')
	assert.Equal(t, session.StateIdle, h.app.session.State())
	assert.Equal(t, 3, h.app.session.Remaining())

	h.drag(1, 2, 3)
	assert.Contains(t, h.row(0), "Unlocked")
}

func TestApp_KeysSwitchModeAndQuit(t *testing.T) {
	h := newHarness(t, session.ModeUnlock, 1)
	h.key('m')
	assert.Equal(t, session.ModeModify, h.app.session.Mode())
	assert.Contains(t, h.row(0), "MODIFY")

	h.key('s')
	assert.True(t, h.app.muted)

	h.app.handleTerminal(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, h.quit)
}

func TestApp_ResizeRelayouts(t *testing.T) {
	h := newHarness(t, session.ModeLock)
	require.Equal(t, 500, h.app.session.Width())

	h.screen.SetSize(40, 100)
	h.app.handleTerminal(tcell.NewEventResize(40, 100))
	assert.Equal(t, 400, h.app.session.Width())

	h.app.handleTerminal(tcell.NewEventResize(40, 2))
	assert.Equal(t, 400, h.app.session.Width(), "no room keeps previous layout")
}
