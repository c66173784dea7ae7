package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/router"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/screens/home"
	"github.com/innovatides/atomquiz/internal/screens/quiz"
	"github.com/innovatides/atomquiz/internal/screens/welcome"
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

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestNewAppModel_StartsWithWelcome(t *testing.T) {
	m, err := newAppModel(Options{Service: newService(t)})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want welcome", m.router.Active())
	}
}

func TestNewAppModel_StartCategory(t *testing.T) {
	m, err := newAppModel(Options{Service: newService(t), StartCategory: "medicine"})
	if err != nil {
		t.Fatal(err)
	}
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if _, ok := m.router.Active().(*quiz.QuizScreen); !ok {
		t.Errorf("active = %T, want quiz", m.router.Active())
	}

	if _, err := newAppModel(Options{Service: newService(t), StartCategory: "astronomy"}); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestNewAppModel_RequiresService(t *testing.T) {
	if _, err := newAppModel(Options{}); err == nil {
		t.Error("expected error without a service")
	}
}

func TestEscRespectsBackInterceptor(t *testing.T) {
	m, err := newAppModel(Options{Service: newService(t), StartCategory: "industry"})
	if err != nil {
		t.Fatal(err)
	}

	// The quiz intercepts esc to ask for confirmation instead of popping.
	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc on quiz should not pop directly")
		}
	}
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	// Confirm quitting; the quiz asks the router to pop.
	m, cmd = update(t, m, tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected pop cmd after confirming")
	}
	m, _ = update(t, m, cmd())
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T, want home", m.router.Active())
	}
}

func TestEscPopsPlainScreens(t *testing.T) {
	m, err := newAppModel(Options{Service: newService(t)})
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, router.ReplaceScreenMsg{Screen: home.New(m.svc, "")})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push cmd")
	}
	m, _ = update(t, m, cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop cmd")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc on dashboard should pop")
	}
}

func TestHeaderStatsRefresh(t *testing.T) {
	svc := newService(t)
	if err := svc.Record(context.Background(), scoring.Result{ID: "a", Category: "Agriculture", Score: 6, TotalQuestions: 10, Date: "2026-07-01"}); err != nil {
		t.Fatal(err)
	}
	m, err := newAppModel(Options{Service: svc})
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, m.refreshStats()())
	if m.stats.Attempts != 1 || m.stats.Average != 60 || m.stats.Tier != "Beginner" {
		t.Errorf("stats = %+v", m.stats)
	}
}
