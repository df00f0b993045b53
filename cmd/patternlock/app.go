package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/patternlock/audio"
	"github.com/lixenwraith/patternlock/event"
	"github.com/lixenwraith/patternlock/input"
	"github.com/lixenwraith/patternlock/render"
	"github.com/lixenwraith/patternlock/session"
	"github.com/lixenwraith/patternlock/store"
	"github.com/lixenwraith/patternlock/terminal"
)

// app is the terminal host: it feeds the session, persists answers and draws frames
// Every method runs on the event loop goroutine
type app struct {
	ctx     context.Context
	screen  tcell.Screen
	answers store.Store
	player  *audio.Player
	logger  zerolog.Logger
	quit    context.CancelFunc

	session  *session.Session
	viewport terminal.Viewport
	input    *input.Machine
	renderer *render.Renderer

	message string
	muted   bool
}

func newApp(ctx context.Context, screen tcell.Screen, answers store.Store, player *audio.Player, logger zerolog.Logger, quit context.CancelFunc) *app {
	return &app{
		ctx:      ctx,
		screen:   screen,
		answers:  answers,
		player:   player,
		logger:   logger,
		quit:     quit,
		input:    input.NewMachine(terminal.Viewport{}),
		renderer: render.NewRenderer(screen),
	}
}

// attach binds the session and lays it out for the current screen
func (a *app) attach(s *session.Session) {
	a.session = s
	a.resize(a.screen.Size())
}

// HandleEvent implements event.Handler
func (a *app) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventResize:
		a.resize(ev.X, ev.Y)
	default:
		if ev.IsPointer() {
			a.session.HandleEvent(ev)
		}
	}
}

// handleTerminal translates one tcell event into session input or host actions
func (a *app) handleTerminal(ev tcell.Event) {
	in := a.input.Translate(ev)
	switch in.Type {
	case input.IntentQuit:
		a.quit()
	case input.IntentPointer:
		for _, pe := range in.Events {
			a.HandleEvent(pe)
		}
	case input.IntentResize:
		a.HandleEvent(event.Event{Type: event.EventResize, X: in.Width, Y: in.Height})
		a.screen.Sync()
	case input.IntentSetMode:
		a.session.SetMode(in.Mode)
		a.message = ""
		a.logger.Info().Stringer("mode", in.Mode).Msg("mode selected")
	case input.IntentRearm:
		a.session.SetMaxAttempts(a.session.MaxAttempts())
		a.message = "Attempts restored"
	case input.IntentToggleMute:
		a.muted = !a.muted
	}
}

func (a *app) resize(w, h int) {
	a.viewport = terminal.Fit(w, h)
	a.input.SetViewport(a.viewport)
	if a.viewport.Width == 0 {
		return
	}
	if err := a.session.Layout(a.viewport.Width); err != nil {
		a.logger.Error().Err(err).Int("width", a.viewport.Width).Msg("layout failed")
	}
}

// draw renders the current session state; runs after every event batch
func (a *app) draw() {
	f := render.Snapshot(a.session, a.viewport)
	f.Message = a.message
	f.Audio = a.player.Active()
	f.Muted = a.muted
	a.renderer.Draw(f)
}

func (a *app) cue(c audio.Cue) {
	if !a.muted {
		a.player.Play(c)
	}
}

// === session.Listener ===

func (a *app) OnFirstLock(mode session.Mode, answer []int) {
	a.message = "Pattern recorded, draw it again to confirm"
	a.cue(audio.CueFirstCapture)
}

func (a *app) OnSecondLockSucceeded(mode session.Mode, answer []int) {
	a.session.SetAnswer(answer)
	if err := a.answers.Save(a.ctx, answer); err != nil {
		a.logger.Error().Err(err).Msg("failed to save answer")
		a.message = "Pattern set, but saving failed"
	} else {
		a.message = "New pattern saved"
	}
	a.cue(audio.CueSuccess)
}

func (a *app) OnSecondLockFailed(mode session.Mode) {
	a.message = "Patterns differ, try again"
	a.cue(audio.CueFailure)
}

func (a *app) OnUnlockCorrect(mode session.Mode, path []int) {
	if mode == session.ModeModify {
		a.message = "Verified, draw a new pattern"
	} else {
		a.message = "Unlocked"
	}
	a.cue(audio.CueSuccess)
}

func (a *app) OnUnlockError(mode session.Mode, path []int, remaining int) {
	// remaining still counts this attempt
	a.message = fmt.Sprintf("Wrong pattern, %d attempts left", remaining-1)
	a.cue(audio.CueFailure)
}

func (a *app) OnNoMoreTry(mode session.Mode) {
	a.message = "Locked out, press r to re-arm"
	a.cue(audio.CueLockout)
}
