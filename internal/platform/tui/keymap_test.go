package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{keyMsg("left"), core.ActionLeft, false},
		{keyMsg("a"), core.ActionLeft, false},
		{keyMsg("right"), core.ActionRight, false},
		{keyMsg("l"), core.ActionRight, false},
		{keyMsg(" "), core.ActionStart, false},
		{keyMsg("p"), core.ActionPause, false},
		{keyMsg("esc"), core.ActionPause, false},
		{keyMsg("r"), core.ActionRestart, false},
		{keyMsg("b"), core.ActionBack, false},
		{keyMsg("q"), core.ActionQuit, true},
		{keyMsg("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(tt.key)
		if got != tt.want || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key.String(), got, quit, tt.want, tt.quit)
		}
	}
}

func TestHeldKeysRelease(t *testing.T) {
	var h HeldKeys
	now := time.Now()
	h.Press(core.ActionRight, now)
	h.Release()

	f := core.NewInputFrame()
	h.Apply(&f, now)
	if f.Has(core.ActionRight) || f.Has(core.ActionLeft) {
		t.Errorf("released keys still held: %v", f.Actions)
	}
}

func TestFrameClock(t *testing.T) {
	var c frameClock
	nominal := 16 * time.Millisecond
	t0 := time.Now()

	if got := c.next(t0, nominal); got != nominal {
		t.Errorf("first frame = %v, want nominal", got)
	}
	if got := c.next(t0.Add(20*time.Millisecond), nominal); got != 20*time.Millisecond {
		t.Errorf("second frame = %v, want 20ms", got)
	}
	if got := c.next(t0, nominal); got != nominal {
		t.Errorf("backwards clock = %v, want nominal", got)
	}
	c.reset()
	if got := c.next(t0.Add(time.Hour), nominal); got != nominal {
		t.Errorf("after reset = %v, want nominal", got)
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testCfg)
	if m.Preset() != config.DifficultyNormal {
		t.Fatalf("default preset = %v", m.Preset())
	}

	next, _ := m.Update(keyMsg("right"))
	next, _ = next.Update(keyMsg("right"))
	if got := next.(MenuModel).Preset(); got != config.DifficultyFixed {
		t.Errorf("preset after two rights = %v, want fixed", got)
	}
	next, _ = next.Update(keyMsg("right"))
	if got := next.(MenuModel).Preset(); got != config.DifficultyEasy {
		t.Errorf("preset should wrap to easy, got %v", got)
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(nil, testCfg)
	if r := m.Result(); !r.Quit {
		t.Errorf("untouched menu should report quit: %+v", r)
	}

	m.items = []MenuItem{{GameID: "catcher", Title: "Orange Catcher"}}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should end the menu program")
	}
	r := next.(MenuModel).Result()
	if r.GameID != "catcher" || r.Quit || r.Preset != config.DifficultyNormal {
		t.Errorf("result = %+v", r)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
}
