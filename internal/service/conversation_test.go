package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwlf90/ROC-SOLUTIONS/internal/catalog"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/domain/entities"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// sinkStub records appended rows and optionally fails.
type sinkStub struct {
	rows [][]string
	err  error
}

func (s *sinkStub) AppendRow(_ context.Context, row []string) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, append([]string(nil), row...))
	return nil
}

func newTestService(sink RecordSink) *ConversationService {
	return NewConversationService(catalog.New(), sink)
}

// englishAnswers is one valid answer per question, in order.
var englishAnswers = []string{
	"Alex", "Rivera", "555-0134",
	"1, 3", "5", "3", "1", "2",
	"Next Monday",
}

func TestHandleTurnLocaleSelection(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLocale entities.Locale
	}{
		{name: "plain english", input: "English", wantLocale: entities.LocaleEnglish},
		{name: "ingles without accent", input: "INGLES", wantLocale: entities.LocaleEnglish},
		{name: "keyword inside a sentence", input: "I'd prefer english please", wantLocale: entities.LocaleEnglish},
		{name: "espanol", input: "Español", wantLocale: entities.LocaleSpanish},
		{name: "spanish keyword", input: "spanish", wantLocale: entities.LocaleSpanish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&sinkStub{})
			state := entities.NewConversationState()

			response, err := svc.HandleTurn(context.Background(), state, tt.input)
			require.NoError(t, err)

			assert.Equal(t, entities.PhaseAwaitingAnswer, state.Phase)
			assert.Equal(t, tt.wantLocale, state.Locale)
			assert.Equal(t, 0, state.Cursor)
			assert.Equal(t, catalog.New().Questions(tt.wantLocale)[0].Prompt, response)
		})
	}
}

func TestHandleTurnLocaleRepromptsForever(t *testing.T) {
	svc := newTestService(&sinkStub{})
	state := entities.NewConversationState()

	for i := 0; i < 3; i++ {
		response, err := svc.HandleTurn(context.Background(), state, "maybe")
		require.NoError(t, err)
		assert.Equal(t, msgChooseLanguage, response)
		assert.Equal(t, entities.PhaseAwaitingLocale, state.Phase)
		assert.Empty(t, state.Answers)
	}
}

func TestHandleTurnFreeTextStoredVerbatim(t *testing.T) {
	svc := newTestService(&sinkStub{})
	state := entities.NewConversationState()
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, state, "english")
	require.NoError(t, err)

	// First question is the free-text first name; whitespace survives.
	_, err = svc.HandleTurn(ctx, state, "  Alex  ")
	require.NoError(t, err)

	require.Len(t, state.Answers, 1)
	assert.Equal(t, "  Alex  ", state.Answers[0])
	assert.Equal(t, 1, state.Cursor)
}

func TestHandleTurnMultiSelect(t *testing.T) {
	svc := newTestService(&sinkStub{})
	ctx := context.Background()

	// State positioned on the experience question (index 3, 8 options).
	state := &entities.ConversationState{
		Phase:   entities.PhaseAwaitingAnswer,
		Locale:  entities.LocaleEnglish,
		Cursor:  3,
		Answers: []string{"Alex", "Rivera", "555-0134"},
	}

	response, err := svc.HandleTurn(ctx, state, "1, 3")
	require.NoError(t, err)

	require.Len(t, state.Answers, 4)
	assert.Equal(t, "Housekeeping, Dishwasher", state.Answers[3])
	assert.Equal(t, 4, state.Cursor)
	assert.Equal(t, catalog.New().Questions(entities.LocaleEnglish)[4].Prompt, response)
}

func TestHandleTurnRejectsInvalidSelection(t *testing.T) {
	svc := newTestService(&sinkStub{})
	ctx := context.Background()

	// Shift question has 4 options; "5" resolves to nothing.
	state := &entities.ConversationState{
		Phase:   entities.PhaseAwaitingAnswer,
		Locale:  entities.LocaleEnglish,
		Cursor:  5,
		Answers: []string{"a", "b", "c", "d", "e"},
	}

	response, err := svc.HandleTurn(ctx, state, "5")
	require.NoError(t, err)

	assert.Equal(t, msgInvalidSelection, response)
	assert.Equal(t, 5, state.Cursor)
	assert.Len(t, state.Answers, 5)

	// A valid retry moves on.
	_, err = svc.HandleTurn(ctx, state, "4")
	require.NoError(t, err)
	assert.Equal(t, "Overnight", state.Answers[5])
	assert.Equal(t, 6, state.Cursor)
}

func TestHandleTurnCompletesApplication(t *testing.T) {
	sink := &sinkStub{}
	svc := newTestService(sink)
	state := entities.NewConversationState()
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, state, "English")
	require.NoError(t, err)

	var response string
	for _, answer := range englishAnswers {
		response, err = svc.HandleTurn(ctx, state, answer)
		require.NoError(t, err)
	}

	assert.Equal(t, msgApplicationReceived, response)

	require.Len(t, sink.rows, 1)
	row := sink.rows[0]
	require.Len(t, row, 10)
	assert.Regexp(t, timestampPattern, row[0])
	assert.Equal(t, []string{
		"Alex", "Rivera", "555-0134",
		"Housekeeping, Dishwasher",
		"Line cook",
		"Flexible",
		"English",
		"Public Transportation",
		"Next Monday",
	}, row[1:])

	// State is ready for the next applicant; the transcript survives.
	assert.Equal(t, entities.PhaseAwaitingLocale, state.Phase)
	assert.Empty(t, state.Locale)
	assert.Zero(t, state.Cursor)
	assert.Empty(t, state.Answers)
	assert.NotEmpty(t, state.Transcript)
}

func TestHandleTurnTwoApplicationsAppendTwoRows(t *testing.T) {
	sink := &sinkStub{}
	svc := newTestService(sink)
	ctx := context.Background()

	times := []time.Time{
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC),
	}
	calls := 0
	svc.now = func() time.Time {
		ts := times[calls]
		calls++
		return ts
	}

	for i := 0; i < 2; i++ {
		state := entities.NewConversationState()
		_, err := svc.HandleTurn(ctx, state, "english")
		require.NoError(t, err)
		for _, answer := range englishAnswers {
			_, err = svc.HandleTurn(ctx, state, answer)
			require.NoError(t, err)
		}
	}

	require.Len(t, sink.rows, 2)
	assert.Equal(t, "2026-08-30 09:00:00", sink.rows[0][0])
	assert.Equal(t, "2026-08-30 09:05:00", sink.rows[1][0])
	assert.Equal(t, sink.rows[0][1:], sink.rows[1][1:])
}

func TestHandleTurnSinkFailureKeepsState(t *testing.T) {
	sink := &sinkStub{err: errors.New("quota exceeded")}
	svc := newTestService(sink)
	state := entities.NewConversationState()
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, state, "English")
	require.NoError(t, err)

	var response string
	for _, answer := range englishAnswers {
		response, err = svc.HandleTurn(ctx, state, answer)
	}

	require.Error(t, err)
	assert.Contains(t, response, "Error saving data:")
	assert.Contains(t, response, "quota exceeded")

	// Nothing was confirmed durably, so nothing is reset: the answers
	// stay buffered and the cursor stays on the last question.
	assert.Equal(t, entities.PhaseAwaitingAnswer, state.Phase)
	assert.Equal(t, 8, state.Cursor)
	assert.Len(t, state.Answers, 9)
	assert.Equal(t, entities.LocaleEnglish, state.Locale)
}

func TestHandleTurnTranscriptOrder(t *testing.T) {
	svc := newTestService(&sinkStub{})
	state := entities.NewConversationState()

	response, err := svc.HandleTurn(context.Background(), state, "maybe")
	require.NoError(t, err)

	require.Len(t, state.Transcript, 2)
	assert.Equal(t, entities.Turn{Speaker: entities.SpeakerUser, Text: "maybe"}, state.Transcript[0])
	assert.Equal(t, entities.Turn{Speaker: entities.SpeakerAssistant, Text: response}, state.Transcript[1])
}

func TestHandleTurnSpanishFlow(t *testing.T) {
	sink := &sinkStub{}
	svc := newTestService(sink)
	state := entities.NewConversationState()
	ctx := context.Background()

	response, err := svc.HandleTurn(ctx, state, "quiero español")
	require.NoError(t, err)
	assert.Equal(t, catalog.New().Questions(entities.LocaleSpanish)[0].Prompt, response)

	for _, answer := range englishAnswers {
		response, err = svc.HandleTurn(ctx, state, answer)
		require.NoError(t, err)
	}

	// Answer labels come from the shared option lists, so the stored row
	// is identical regardless of prompt language.
	assert.Equal(t, msgApplicationReceived, response)
	require.Len(t, sink.rows, 1)
	assert.Equal(t, "Housekeeping, Dishwasher", sink.rows[0][4])
}
