package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-motion/internal/core"
	_ "github.com/vovakirdan/tui-motion/internal/games/balls"
	_ "github.com/vovakirdan/tui-motion/internal/games/platformer"
)

func TestMenuListsDemos(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	view := m.View()
	for _, title := range []string{"Simple Balls", "Platformer"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu should list %q", title)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().GameID != m.items[0].GameID {
		t.Errorf("enter should select the first demo, got %+v", m.Selected())
	}
}

func TestMenuScoreboardKey(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestLevelMenuSelection(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewLevelMenuModel(80, 24)

	if !strings.Contains(m.View(), "Meadow") {
		t.Errorf("level menu should list builtin levels:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(LevelMenuModel).Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(LevelMenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(LevelMenuModel)

	if sel := m.Selected(); sel == nil || sel.ID != "02-steps" {
		t.Errorf("Selected() = %+v, expected 02-steps", sel)
	}
}

func TestLevelMenuStartFromBeginning(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewLevelMenuModel(80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if sel := next.(LevelMenuModel).Selected(); sel == nil || sel.ID != "" {
		t.Errorf("Selected() = %+v, expected the first level", sel)
	}
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := core.DefaultConfig()
	var s tea.Model = NewSessionModel(nil, cfg)

	key := func(msg tea.KeyMsg) {
		s, _ = s.Update(msg)
	}

	// Find the platformer in the menu.
	menu := s.(SessionModel).menu
	for i, item := range menu.items {
		if item.GameID == "platformer" {
			for range i {
				key(tea.KeyMsg{Type: tea.KeyDown})
			}
			break
		}
	}
	key(tea.KeyMsg{Type: tea.KeyEnter})
	if s.(SessionModel).screen != screenLevels {
		t.Fatalf("platformer should open the level picker, screen = %d", s.(SessionModel).screen)
	}

	key(tea.KeyMsg{Type: tea.KeyEnter})
	session := s.(SessionModel)
	if session.screen != screenGame || session.game.game.ID() != "platformer" {
		t.Fatalf("selecting a level should start the game, screen = %d", session.screen)
	}
	if session.game.quitOnBack {
		t.Error("games inside a session should return to the menu, not quit")
	}

	key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	s, _ = s.Update(TickMsg(time.Unix(1000, 0)))
	key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if s.(SessionModel).screen != screenMenu {
		t.Errorf("back from a paused game should show the menu, screen = %d", s.(SessionModel).screen)
	}

	key(tea.KeyMsg{Type: tea.KeyTab})
	if s.(SessionModel).screen != screenScoreboard {
		t.Errorf("tab should open the scoreboard, screen = %d", s.(SessionModel).screen)
	}
	key(tea.KeyMsg{Type: tea.KeyEsc})
	if s.(SessionModel).screen != screenMenu {
		t.Errorf("esc should close the scoreboard, screen = %d", s.(SessionModel).screen)
	}
}
