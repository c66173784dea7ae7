package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/store"
)

func TestDashboardScreen_View(t *testing.T) {
	b, err := bank.Default()
	if err != nil {
		t.Fatal(err)
	}
	svc := learner.New(b, store.NewMemory(), learner.Options{})
	ctx := context.Background()
	if err := svc.Record(ctx, scoring.Result{ID: "a", Category: "Medicine", Score: 8, TotalQuestions: 10, Date: "2026-03-01"}); err != nil {
		t.Fatal(err)
	}

	s := New(svc)
	if !strings.Contains(s.View(100, 40), "Loading") {
		t.Error("expected loading state")
	}
	s.Update(s.Init()())

	view := s.View(100, 40)
	for _, want := range []string{"80%", "Advanced", "Medicine", "2026-03-01", "Goal 1/10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboardScreen_ReloadsOnResume(t *testing.T) {
	b, err := bank.Default()
	if err != nil {
		t.Fatal(err)
	}
	svc := learner.New(b, store.NewMemory(), learner.Options{})
	s := New(svc)
	s.Update(s.Init()())

	if err := svc.Record(context.Background(), scoring.Result{ID: "a", Category: "Industry", Score: 3, TotalQuestions: 10, Date: "2026-03-02"}); err != nil {
		t.Fatal(err)
	}
	_, cmd := s.Update(screen.ResumedMsg{})
	if cmd == nil {
		t.Fatal("expected reload cmd on resume")
	}
	s.Update(cmd())
	if s.data.Summary.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1", s.data.Summary.TotalAttempts)
	}
}
