package catcher

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-catcher/internal/catcher"
	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
	"github.com/vovakirdan/tui-catcher/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

func newTestGame(t *testing.T, cfg config.CatcherConfig) *Game {
	t.Helper()
	g := NewWithConfig(config.VariantClassic, cfg)
	g.Reset(testRuntime)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{config.VariantClassic, config.VariantRush} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestTitleScreenWaitsForStart(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())

	for range 10 {
		res := g.Step(frame(core.ActionLeft))
		if len(res.Cues) != 0 {
			t.Fatalf("cues before start: %v", res.Cues)
		}
	}
	if g.engine.Phase() != catcher.PhaseIdle {
		t.Fatalf("Phase = %v, want idle", g.engine.Phase())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Orange Catcher") {
		t.Error("title screen should show the game title")
	}

	res := g.Step(frame(core.ActionStart))
	if g.engine.Phase() != catcher.PhaseRunning {
		t.Fatalf("Phase = %v, want running", g.engine.Phase())
	}
	if !slices.Contains(res.Cues, core.CueMusicOn) {
		t.Errorf("cues = %v, want CueMusicOn", res.Cues)
	}
}

func TestPauseToggleCues(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())
	g.Step(frame(core.ActionStart))

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused || !slices.Contains(res.Cues, core.CueMusicHold) {
		t.Fatalf("pause: state %+v cues %v", res.State, res.Cues)
	}
	elapsed := g.engine.Elapsed()
	g.Step(frame())
	if g.engine.Elapsed() != elapsed {
		t.Error("time advanced while paused")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused || !slices.Contains(res.Cues, core.CueMusicOn) {
		t.Errorf("resume: state %+v cues %v", res.State, res.Cues)
	}
}

func TestHUDShowsTimeAndScore(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())
	g.Step(frame(core.ActionStart))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	hud := screen.Row(0)
	for _, want := range []string{"Time: 30", "Score: 0", "Speed: 400"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestElapsedFromFrame(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())
	g.Step(frame(core.ActionStart))
	start := g.engine.Elapsed()

	in := frame()
	in.Elapsed = 250 * time.Millisecond
	g.Step(in)
	if got := g.engine.Elapsed() - start; got != 250*time.Millisecond {
		t.Errorf("advanced %v, want 250ms", got)
	}

	g.Step(frame())
	if got := g.engine.Elapsed() - start; got != 250*time.Millisecond+testRuntime.TickInterval() {
		t.Errorf("advanced %v, want 250ms plus one nominal tick", got)
	}
}

func TestPointerMapsToArena(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())

	in := frame()
	in.Pointer = core.Pointer{Down: true, X: 10}
	got := g.input(in)
	if !got.PointerDown || got.PointerX != 157.5 {
		t.Errorf("input = %+v, want pointer at 157.5", got)
	}
	if got.Resolve(g.cfg.Arena.Width) != catcher.DirLeft {
		t.Error("left-half pointer should steer left")
	}

	both := g.input(frame(core.ActionLeft, core.ActionRight))
	if both.Direction != catcher.DirNone {
		t.Error("opposite keys should cancel")
	}
}

func TestPopupLifetime(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())
	g.absorb([]catcher.Event{catcher.ScorePopup{Delta: -1, X: 600, Y: 758}})

	if len(g.popups) != 1 {
		t.Fatalf("popups = %d, want 1", len(g.popups))
	}
	p := g.popups[0]
	if p.Text != "-1" || p.Color != core.ColorRed {
		t.Errorf("popup = %+v, want red -1", p)
	}

	g.agePopups(500 * time.Millisecond)
	if len(g.popups) != 1 {
		t.Fatal("popup expired early")
	}
	g.agePopups(600 * time.Millisecond)
	if len(g.popups) != 0 {
		t.Error("popup outlived its lifetime")
	}

	g.absorb([]catcher.Event{catcher.ScorePopup{Delta: 2, X: 600, Y: 658}})
	if g.popups[0].Text != "+2" || g.popups[0].Color != core.ColorGreen {
		t.Errorf("popup = %+v, want green +2", g.popups[0])
	}
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Session.DurationSecs = 0.5
	g := newTestGame(t, cfg)
	g.Step(frame(core.ActionStart))

	var res core.StepResult
	for range 60 {
		res = g.Step(frame())
		if res.State.GameOver {
			break
		}
	}
	if !res.State.GameOver || res.State.Verdict != catcher.VerdictLose {
		t.Fatalf("state = %+v, want game over with lose", res.State)
	}
	if !slices.Contains(res.Cues, core.CueMusicOff) {
		t.Errorf("cues = %v, want CueMusicOff", res.Cues)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	res = g.Step(frame(core.ActionRestart))
	if res.State.GameOver || g.engine.Phase() != catcher.PhaseRunning {
		t.Errorf("restart did not start a new session: %+v", res.State)
	}
}

func TestRenderDrawsObjectsAndBasket(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())
	g.Step(frame(core.ActionStart))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	o := g.engine.Objects()[0]
	want, _ := Glyph(o.Kind)
	x, y := g.cellX(o.Bounds().CenterX()), g.cellY(o.Y+o.H/2)
	if got := screen.Get(x, y); got != want {
		t.Errorf("object cell (%d,%d) = %q, want %q", x, y, got, want)
	}

	b := g.engine.Basket()
	if got := screen.Get(g.cellX(b.X), g.cellY(b.Y)); got != BasketMiddle {
		t.Errorf("basket center = %q, want %q", got, BasketMiddle)
	}
}

func TestSnapshotDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, config.DefaultCatcherConfig())
		g.Step(frame(core.ActionStart))
		for i := range 600 {
			in := frame()
			switch i / 45 % 3 {
			case 0:
				in.Set(core.ActionLeft)
			case 1:
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		snap := g.Snapshot()
		if snap.Tick != g.ticks || snap.Score != g.engine.Score() {
			t.Errorf("snapshot %+v does not match game", snap)
		}
		return snap.Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs produced different hashes: %d vs %d", a, b)
	}
}

func TestRoundSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{29.983, 30},
		{23.5, 24},
		{0.4, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundSeconds(tt.in); got != tt.want {
			t.Errorf("RoundSeconds(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, config.DefaultCatcherConfig())
	g.Step(frame(core.ActionStart))
	for range 5 {
		g.Step(frame())
	}
	before := g.Played()

	g.Resize(120, 40)
	if g.Engine().Phase() != catcher.PhaseRunning {
		t.Fatalf("resize interrupted the session: %v", g.Engine().Phase())
	}
	if g.Played() != before {
		t.Fatalf("resize changed played time: %v -> %v", before, g.Played())
	}

	screen := core.NewScreen(120, 40)
	g.Render(screen)
	if !strings.Contains(screen.Row(39), string(GroundChar)) {
		t.Errorf("ground not drawn on the resized bottom row")
	}
}
