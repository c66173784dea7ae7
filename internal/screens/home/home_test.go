package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/router"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/screens/catalog"
	"github.com/innovatides/atomquiz/internal/screens/settings"
	"github.com/innovatides/atomquiz/internal/store"
)

func newService(t *testing.T) *learner.Service {
	t.Helper()
	b, err := bank.Default()
	if err != nil {
		t.Fatal(err)
	}
	return learner.New(b, store.NewMemory(), learner.Options{})
}

func TestHomeScreen_TakeQuizPushesCatalog(t *testing.T) {
	h := New(newService(t), "")
	if h.Selected() != "TAKE A QUIZ" {
		t.Fatalf("Selected = %q", h.Selected())
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected cmd")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*catalog.CatalogScreen); !ok {
		t.Errorf("pushed %T, want *catalog.CatalogScreen", push.Screen)
	}
}

func TestHomeScreen_SettingsItem(t *testing.T) {
	h := New(newService(t), "")
	for range 5 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if h.Selected() != "SETTINGS" {
		t.Fatalf("Selected = %q, want SETTINGS", h.Selected())
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push := cmd().(router.PushScreenMsg)
	if _, ok := push.Screen.(*settings.SettingsScreen); !ok {
		t.Errorf("pushed %T, want *settings.SettingsScreen", push.Screen)
	}
}

func TestHomeScreen_StatsAndMascot(t *testing.T) {
	svc := newService(t)
	h := New(svc, "")
	h.Update(h.Init()())
	if h.mascotVariant != MascotAlert {
		t.Errorf("variant = %d, want MascotAlert with no attempts", h.mascotVariant)
	}
	if !strings.Contains(h.View(120, 40), "NO QUIZZES YET") {
		t.Error("expected empty stats prompt")
	}

	if err := svc.Record(context.Background(), scoring.Result{ID: "a", Category: "Medicine", Score: 9, TotalQuestions: 10, Date: "2026-06-01"}); err != nil {
		t.Fatal(err)
	}
	h.Update(h.Init()())
	if h.mascotVariant != MascotCelebrating {
		t.Errorf("variant = %d, want MascotCelebrating at 90%%", h.mascotVariant)
	}
	view := h.View(120, 40)
	if !strings.Contains(view, "1 QUIZZES") || !strings.Contains(view, "EXPERT") {
		t.Errorf("stats bar missing values:\n%s", view)
	}
}
