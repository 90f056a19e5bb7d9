package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catcher/internal/core"
	"github.com/vovakirdan/tui-catcher/internal/storage"
)

// fakeGame records the frames it receives and ends after overAt steps.
type fakeGame struct {
	frames  []core.InputFrame
	overAt  int
	cues    []core.Cue
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++; g.frames = nil }
func (g *fakeGame) Render(s *core.Screen) { s.Clear(); s.DrawText(0, 0, "fake") }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) Played() time.Duration { return 1500 * time.Millisecond }
func (g *fakeGame) State() core.GameState { return g.state() }
func (g *fakeGame) over() bool { return g.overAt > 0 && len(g.frames) >= g.overAt }
func (g *fakeGame) state() core.GameState {
	if g.over() {
		return core.GameState{Score: 7, GameOver: true, Verdict: "win"}
	}
	return core.GameState{Score: len(g.frames)}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			cp.Set(a)
		}
	}
	cp.Pointer = in.Pointer
	cp.Elapsed = in.Elapsed
	g.frames = append(g.frames, cp)
	return core.StepResult{State: g.state(), Cues: g.cues}
}

type memStore struct {
	saved []storage.Result
	err   error
}

func (s *memStore) SaveResult(r storage.Result) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, r)
	return int64(len(s.saved)), nil
}

type cueLog struct{ cues []core.Cue }

func (c *cueLog) Handle(cues []core.Cue) { c.cues = append(c.cues, cues...) }

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m Model, at time.Time) Model {
	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

func TestHeldKeyLastsForHoldWindow(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg)
	t0 := time.Now()

	next, _ := m.handleKey(keyMsg("left"), t0)
	m = next.(Model)
	m = tick(m, t0.Add(50*time.Millisecond))
	m = tick(m, t0.Add(HoldWindow+100*time.Millisecond))

	if !g.frames[0].Has(core.ActionLeft) {
		t.Error("left should be held right after the press")
	}
	if g.frames[1].Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestOppositeKeyCancelsHeld(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg)
	t0 := time.Now()

	next, _ := m.handleKey(keyMsg("left"), t0)
	m = next.(Model)
	next, _ = m.handleKey(keyMsg("d"), t0.Add(10*time.Millisecond))
	m = next.(Model)
	tick(m, t0.Add(20*time.Millisecond))

	f := g.frames[0]
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame actions = %v, want only Right", f.Actions)
	}
}

func TestOneShotActionsClearAfterTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg)
	now := time.Now()

	next, _ := m.Update(keyMsg(" "))
	m = next.(Model)
	m = tick(m, now)
	tick(m, now.Add(16*time.Millisecond))

	if !g.frames[0].Has(core.ActionStart) {
		t.Error("first frame should carry Start")
	}
	if g.frames[1].Has(core.ActionStart) {
		t.Error("Start leaked into the next frame")
	}
}

func TestMousePointerPressAndRelease(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg)
	now := time.Now()

	next, _ := m.Update(tea.MouseMsg{X: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	next, _ = m.Update(tea.MouseMsg{X: 60, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = next.(Model)
	m = tick(m, now)
	next, _ = m.Update(tea.MouseMsg{X: 60, Action: tea.MouseActionRelease})
	m = next.(Model)
	tick(m, now.Add(16*time.Millisecond))

	if p := g.frames[0].Pointer; !p.Down || p.X != 60 {
		t.Errorf("pointer = %+v, want held at 60", p)
	}
	if g.frames[1].Pointer.Down {
		t.Error("pointer should be released")
	}
}

func TestElapsedUsesRealFrameTime(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg)
	t0 := time.Now()

	m = tick(m, t0)
	m = tick(m, t0.Add(40*time.Millisecond))
	tick(m, t0.Add(2*time.Second))

	want := []time.Duration{testCfg.TickInterval(), 40 * time.Millisecond, testCfg.TickInterval()}
	for i, w := range want {
		if got := g.frames[i].Elapsed; got != w {
			t.Errorf("frame %d elapsed = %v, want %v", i, got, w)
		}
	}
}

func TestResultSavedOnceOnGameOver(t *testing.T) {
	g := &fakeGame{overAt: 2}
	store := &memStore{}
	m := NewModel(g, testCfg, WithStore(store))
	now := time.Now()

	for i := range 5 {
		m = tick(m, now.Add(time.Duration(i)*16*time.Millisecond))
	}

	if len(store.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(store.saved))
	}
	r := store.saved[0]
	if r.GameID != "fake" || r.Score != 7 || r.Verdict != "win" || r.Duration != 1500*time.Millisecond {
		t.Errorf("saved %+v", r)
	}
	if r.SessionID == "" {
		t.Error("result should carry a session id")
	}
	if last, ok := m.LastResult(); !ok || last.Score != 7 {
		t.Errorf("LastResult = %+v, %v", last, ok)
	}
}

func TestSaveFailureDoesNotStopGame(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := NewModel(g, testCfg, WithStore(&memStore{err: errors.New("disk full")}))
	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick loop should continue after a failed save")
	}
}

func TestCuesForwardedToAudio(t *testing.T) {
	g := &fakeGame{cues: []core.Cue{core.CueCatch}}
	sink := &cueLog{}
	m := NewModel(g, testCfg, WithAudio(sink))
	tick(m, time.Now())

	if len(sink.cues) != 1 || sink.cues[0] != core.CueCatch {
		t.Errorf("cues = %v", sink.cues)
	}
}

func TestQuitStopsMusic(t *testing.T) {
	sink := &cueLog{}
	m := NewModel(&fakeGame{}, testCfg, WithAudio(sink))
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Fatal("q should quit")
	}
	if len(sink.cues) != 1 || sink.cues[0] != core.CueMusicOff {
		t.Errorf("cues = %v, want MusicOff", sink.cues)
	}
}

func TestBackOnlyWhenOverOrPaused(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := NewModel(g, testCfg, WithEmbedded())

	next, _ := m.Update(keyMsg("b"))
	if next.(Model).BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = tick(next.(Model), time.Now())
	next, cmd := m.Update(keyMsg("b"))
	if !next.(Model).BackToMenu() {
		t.Fatal("back should work after game over")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}
}

func TestResizeKeepsSessionForResizableGames(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg)
	resets := g.resets

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != resets {
		t.Error("resizable game should not be reset")
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
}
