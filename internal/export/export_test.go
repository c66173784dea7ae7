package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatides/atomquiz/internal/account"
	"github.com/innovatides/atomquiz/internal/achievements"
	"github.com/innovatides/atomquiz/internal/history"
	"github.com/innovatides/atomquiz/internal/stats"
)

func sampleHistory() history.History {
	return history.History{
		{ID: "a", Category: "Agriculture", Score: 6, TotalQuestions: 10, Date: "2026-01-03"},
		{ID: "b", Category: "Medicine", Score: 10, TotalQuestions: 10, Date: "2026-01-04"},
		{ID: "c", Category: "Agriculture", Score: 3, TotalQuestions: 10, Date: "2026-01-05"},
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	h := sampleHistory()
	sum := stats.Summarize(h, []string{"Agriculture", "Medicine", "Industry"}, 5)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := Build(now, account.Profile{Name: "Ada"}, h, account.DefaultSettings(), sum, achievements.Evaluate(sum))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))
	assert.Contains(t, buf.String(), "\n  \"exportDate\": \"2026-06-01T12:00:00Z\"")

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got.QuizResults, len(h))
	for i := range h {
		assert.Equal(t, h[i].Score, got.QuizResults[i].Score)
		assert.Equal(t, h[i].TotalQuestions, got.QuizResults[i].TotalQuestions)
		assert.Equal(t, h[i].Category, got.QuizResults[i].Category)
		assert.Equal(t, h[i].Date, got.QuizResults[i].Date)
	}
	assert.Equal(t, doc, got)
}

func TestBuild_EmptyHistory(t *testing.T) {
	doc := Build(time.Now(), account.DefaultProfile(), nil, account.DefaultSettings(), stats.Summarize(nil, nil, 5), achievements.Evaluation{})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))
	assert.Contains(t, buf.String(), `"quizResults": []`)
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"no date", `{"quizResults":[]}`},
		{"bad date", `{"exportDate":"yesterday","quizResults":[]}`},
		{"no results", `{"exportDate":"2026-01-01T00:00:00Z"}`},
		{"bad result", `{"exportDate":"2026-01-01T00:00:00Z","quizResults":[{"id":"x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}
