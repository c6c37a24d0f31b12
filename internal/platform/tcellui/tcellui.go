// Package tcellui is an alternative front end that draws games straight
// onto a tcell screen. Events are read on their own goroutine and the
// simulation runs off a ticker, one step per tick.
package tcellui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Style returns the tcell style for a core color.
func Style(c core.Color) tcell.Style {
	if code := c.ANSI(); code >= 0 {
		return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
	}
	return tcell.StyleDefault
}

// KeyName converts a tcell key event to Bubble Tea's key spelling so the
// shared bindings apply unchanged.
func KeyName(k tcell.Key, r rune, mod tcell.ModMask) platform.KeyName {
	switch k {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyRune:
		if r == ' ' {
			return " "
		}
		if mod&tcell.ModAlt != 0 {
			return platform.KeyName("alt+" + string(r))
		}
		return platform.KeyName(string(r))
	}
	return ""
}

// App runs one game on a tcell screen.
type App struct {
	screen tcell.Screen
	runner *platform.Runner
	buf    *core.Screen

	back     bool
	quit     bool
	note     string
	noteLeft int
}

// noteTicks is how long a status note stays on screen.
const noteTicks = 120

// NewApp wraps an initialized screen. The runtime size is taken from the
// screen.
func NewApp(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts platform.RunnerOptions) *App {
	cfg.ScreenW, cfg.ScreenH = screen.Size()
	return &App{
		screen: screen,
		runner: platform.NewRunner(game, cfg, opts),
		buf:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
}

// Runner exposes the game session.
func (a *App) Runner() *platform.Runner { return a.runner }

// Handle applies one event. It returns false once the app should stop.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.runner.Key(KeyName(ev.Key(), ev.Rune(), ev.Modifiers())) {
		case platform.KeyQuit:
			a.quit = true
			return false
		case platform.KeyBack:
			a.back = true
			return false
		case platform.KeyScreenshot:
			if path, err := a.runner.SaveScreenshot(platform.ScreenshotDir()); err != nil {
				a.notify(err.Error())
			} else {
				a.notify("Saved " + path)
			}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.runner.Resize(w, h)
		a.buf.Resize(w, h)
		a.screen.Sync()
	}
	return true
}

func (a *App) notify(msg string) {
	a.note = msg
	a.noteLeft = noteTicks
}

// Frame steps the game once and draws it.
func (a *App) Frame() {
	a.runner.Tick()
	if a.noteLeft > 0 {
		if a.noteLeft--; a.noteLeft == 0 {
			a.note = ""
		}
	}
	a.Draw()
}

// Draw copies the game's screen buffer onto the tcell screen.
func (a *App) Draw() {
	a.runner.Render(a.buf)
	if a.note != "" {
		a.buf.DrawTextColor(0, a.buf.Height()-1, a.note, core.ColorGray)
	}

	w, h := a.screen.Size()
	for y := range min(h, a.buf.Height()) {
		for x := range min(w, a.buf.Width()) {
			cell := a.buf.GetCell(x, y)
			a.screen.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
	a.screen.Show()
}

// Loop runs until quit or back. Events arrive on their own goroutine; the
// game only advances on ticker ticks.
func (a *App) Loop() {
	ticker := time.NewTicker(a.runner.Runtime().TickInterval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pump(a.screen, events, done)

	a.runner.Start()
	defer a.runner.Stop()
	a.Draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.Handle(ev) {
				return
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// pump forwards screen events until the screen is finalized or done is
// closed. events is closed when the screen stops delivering.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// BackToMenu reports whether the player left with the back key.
func (a *App) BackToMenu() bool { return a.back }

// Quitting reports whether the player asked to quit.
func (a *App) Quitting() bool { return a.quit }

// Run opens the terminal, plays game until the player leaves and restores
// the terminal. It reports whether the player asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts platform.RunnerOptions) (backToMenu bool, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return false, fmt.Errorf("tcellui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return false, fmt.Errorf("tcellui: init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	app := NewApp(screen, game, cfg, opts)
	app.Loop()
	return app.BackToMenu(), nil
}
