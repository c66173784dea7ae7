package quiz

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/innovatides/atomquiz/internal/attempt"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/router"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/screens/results"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
)

// recordedMsg is sent once the submitted result has been persisted.
type recordedMsg struct {
	Result scoring.Result
	Err    error
}

// QuizScreen drives one attempt: choosing options, moving between
// questions and submitting.
type QuizScreen struct {
	svc     *learner.Service
	attempt *attempt.Attempt
	choice  components.MultiChoice

	confirmingQuit bool
	saving         bool
	flash          string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.BackInterceptor = (*QuizScreen)(nil)

// New creates a QuizScreen for an attempt that has not been submitted.
func New(svc *learner.Service, a *attempt.Attempt) *QuizScreen {
	s := &QuizScreen{svc: svc, attempt: a}
	s.syncChoice()
	return s
}

// Start begins a new attempt on the category with the given key.
func Start(svc *learner.Service, key string) (*QuizScreen, error) {
	a, err := svc.Start(key)
	if err != nil {
		return nil, err
	}
	return New(svc, a), nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.attempt.Category().DisplayName + " Quiz"
}

// InterceptsBack keeps Esc on this screen so it can ask before abandoning.
func (s *QuizScreen) InterceptsBack() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Attempt returns the attempt being driven.
func (s *QuizScreen) Attempt() *attempt.Attempt {
	return s.attempt
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordedMsg:
		return s, s.showResults(msg.Err)

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		if s.confirmingQuit {
			return s.handleQuitConfirm(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleQuitConfirm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n", "N", "esc":
		s.confirmingQuit = false
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.flash = ""
	key := msg.String()

	switch key {
	case "esc":
		s.confirmingQuit = true
		return s, nil

	case "enter", "space", " ":
		s.selectOption(s.choice.Cursor)
		return s, nil

	case "right", "n", "l":
		s.advance()
		return s, nil

	case "left", "p", "h":
		if err := s.attempt.Retreat(); err == nil {
			s.syncChoice()
		}
		return s, nil

	case "s", "S":
		return s, s.submit()
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		s.selectOption(int(key[0] - '1'))
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *QuizScreen) selectOption(option int) {
	if err := s.attempt.SelectAnswer(option); err != nil {
		if errors.Is(err, attempt.ErrInvalidSelection) {
			s.flash = fmt.Sprintf("Choose an option between 1 and %d", len(s.attempt.Current().Options))
		}
		return
	}
	s.choice.Chosen = option
	s.choice.Cursor = option
}

func (s *QuizScreen) advance() {
	if err := s.attempt.Advance(); err != nil {
		switch {
		case s.attempt.IsLast():
			s.flash = "Last question. Press S to submit."
		default:
			s.flash = "Select an answer before moving on."
		}
		return
	}
	s.syncChoice()
}

func (s *QuizScreen) submit() tea.Cmd {
	r, err := s.attempt.Submit()
	if err != nil {
		if errors.Is(err, attempt.ErrIncompleteAttempt) {
			missing := s.attempt.Len() - s.attempt.Answered()
			s.flash = fmt.Sprintf("%d question(s) still unanswered", missing)
		}
		return nil
	}
	s.saving = true
	svc := s.svc
	return func() tea.Msg {
		return recordedMsg{Result: r, Err: svc.Record(context.Background(), r)}
	}
}

func (s *QuizScreen) showResults(saveErr error) tea.Cmd {
	svc, key := s.svc, s.attempt.Category().Key
	retry := func() screen.Screen {
		next, err := Start(svc, key)
		if err != nil {
			return nil
		}
		return next
	}
	next := results.New(s.attempt, saveErr, retry)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// syncChoice rebuilds the option selector for the current question.
func (s *QuizScreen) syncChoice() {
	q := s.attempt.Current()
	chosen, ok := s.attempt.Answer(s.attempt.Position())
	if !ok {
		chosen = -1
	}
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectOptionIndex, chosen)
}
