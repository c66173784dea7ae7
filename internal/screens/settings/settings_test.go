package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/export"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/store"
)

func newLoaded(t *testing.T, dir string) (*SettingsScreen, *learner.Service) {
	t.Helper()
	b, err := bank.Default()
	if err != nil {
		t.Fatal(err)
	}
	svc := learner.New(b, store.NewMemory(), learner.Options{})
	s := New(svc, dir)
	s.Update(s.Init()())
	return s, svc
}

// press sends a key and runs any resulting cmd chain to completion.
func press(s *SettingsScreen, k tea.KeyPressMsg) {
	_, cmd := s.Update(k)
	for cmd != nil {
		_, cmd = s.Update(cmd())
	}
}

var (
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestSettingsScreen_ToggleSaves(t *testing.T) {
	s, svc := newLoaded(t, t.TempDir())

	press(s, keyEnter)
	st, err := svc.Settings(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Notifications {
		t.Error("notifications should be toggled off")
	}

	press(s, keyDown)
	press(s, keyDown)
	press(s, keyEnter)
	st, _ = svc.Settings(context.Background())
	if st.Language != "fr" {
		t.Errorf("Language = %q, want fr", st.Language)
	}
}

// failingKV rejects writes once fail is set.
type failingKV struct {
	store.KV
	fail bool
}

func (kv *failingKV) Set(ctx context.Context, key string, blob []byte) error {
	if kv.fail {
		return errors.New("disk full")
	}
	return kv.KV.Set(ctx, key, blob)
}

func TestSettingsScreen_SaveErrorRestoresValue(t *testing.T) {
	b, err := bank.Default()
	if err != nil {
		t.Fatal(err)
	}
	kv := &failingKV{KV: store.NewMemory()}
	svc := learner.New(b, kv, learner.Options{})
	s := New(svc, t.TempDir())
	s.Update(s.Init()())
	if !s.settings.Notifications {
		t.Fatal("notifications should start on")
	}

	kv.fail = true
	press(s, keyEnter)

	if !s.settings.Notifications {
		t.Error("failed save should restore the previous value")
	}
	if !s.flashErr || !strings.Contains(s.flash, "disk full") {
		t.Errorf("flash = %q (err %v), want save error", s.flash, s.flashErr)
	}
	if view := s.View(100, 40); !strings.Contains(view, "ON") {
		t.Error("view should show the restored value")
	}

	kv.fail = false
	press(s, keyEnter)
	st, err := svc.Settings(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Notifications || s.settings.Notifications {
		t.Error("toggle after recovery should save")
	}
}

func TestNextLanguage(t *testing.T) {
	if got := nextLanguage("de"); got != "en" {
		t.Errorf("nextLanguage(de) = %q, want en", got)
	}
	if got := nextLanguage("xx"); got != "en" {
		t.Errorf("nextLanguage(xx) = %q, want en", got)
	}
}

func TestSettingsScreen_Export(t *testing.T) {
	dir := t.TempDir()
	s, svc := newLoaded(t, dir)
	s.now = func() time.Time { return time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC) }
	if err := svc.Record(context.Background(), scoring.Result{ID: "a", Category: "Industry", Score: 7, TotalQuestions: 10, Date: "2026-05-01"}); err != nil {
		t.Fatal(err)
	}

	s.selected = rowExport
	press(s, keyEnter)

	path := filepath.Join(dir, "atomquiz-export-20260501-093000.json")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	defer f.Close()
	doc, err := export.Read(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.QuizResults) != 1 {
		t.Errorf("exported %d results, want 1", len(doc.QuizResults))
	}
	if !strings.Contains(s.View(120, 40), "Exported to") {
		t.Error("expected export flash")
	}
}

func TestSettingsScreen_DeleteNeedsConfirmation(t *testing.T) {
	s, svc := newLoaded(t, t.TempDir())
	ctx := context.Background()
	if err := svc.Record(ctx, scoring.Result{ID: "a", Category: "Industry", Score: 7, TotalQuestions: 10, Date: "2026-05-01"}); err != nil {
		t.Fatal(err)
	}

	s.selected = rowDelete
	press(s, keyEnter)
	if !s.InterceptsBack() {
		t.Fatal("confirmation should intercept back")
	}
	press(s, tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.confirming {
		t.Fatal("esc should cancel confirmation")
	}
	h, _ := svc.History(ctx)
	if len(h) != 1 {
		t.Fatal("cancel should keep history")
	}

	press(s, keyEnter)
	press(s, tea.KeyPressMsg{Code: 'y', Text: "y"})
	h, _ = svc.History(ctx)
	if len(h) != 0 {
		t.Errorf("history has %d results after delete", len(h))
	}
	if !strings.Contains(s.View(120, 40), "All learner data deleted.") {
		t.Error("expected delete flash")
	}
}
