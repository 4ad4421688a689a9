package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mdwlf90/ROC-SOLUTIONS/internal/catalog"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/domain/entities"
)

// Fixed engine responses. The validation, completion and failure
// messages are locale-independent.
const (
	msgChooseLanguage      = "Please type *English* or *Español*."
	msgInvalidSelection    = "⚠️ Invalid selection. Please type the numbers (e.g., 1, 3)."
	msgApplicationReceived = "✅ Application Received! You can close this window."
)

const timestampLayout = "2006-01-02 15:04:05"

// ConversationService drives the application interview: it owns
// language selection, question sequencing, answer validation and the
// final append to the record sink. It keeps no state of its own; the
// caller passes the per-chat ConversationState into every turn.
type ConversationService struct {
	catalog catalog.Catalog
	sink    RecordSink
	now     func() time.Time
}

// NewConversationService creates a ConversationService writing completed
// applications to sink.
func NewConversationService(c catalog.Catalog, sink RecordSink) *ConversationService {
	return &ConversationService{
		catalog: c,
		sink:    sink,
		now:     time.Now,
	}
}

// HandleTurn processes one user input against the given state and
// returns exactly one response to display. The state mutates in place.
// The returned error is non-nil only when the final sink append failed;
// the response already carries the user-facing failure text, so callers
// only need the error for logging.
func (s *ConversationService) HandleTurn(ctx context.Context, state *entities.ConversationState, input string) (string, error) {
	var (
		response string
		err      error
	)

	switch state.Phase {
	case entities.PhaseAwaitingLocale:
		response = s.handleLocaleChoice(state, input)
	case entities.PhaseAwaitingAnswer:
		response, err = s.handleAnswer(ctx, state, input)
	default:
		response = msgChooseLanguage
	}

	// The transcript records the raw input and the response of every
	// turn, regardless of outcome.
	state.Record(entities.SpeakerUser, input)
	state.Record(entities.SpeakerAssistant, response)

	return response, err
}

// handleLocaleChoice classifies the input against two keyword sets.
// This is not language detection: anything that matches neither set
// re-prompts, with no retry limit.
func (s *ConversationService) handleLocaleChoice(state *entities.ConversationState, input string) string {
	lowered := strings.ToLower(input)

	var locale entities.Locale
	switch {
	case strings.Contains(lowered, "span") || strings.Contains(lowered, "espa"):
		locale = entities.LocaleSpanish
	case strings.Contains(lowered, "eng") || strings.Contains(lowered, "ingl"):
		locale = entities.LocaleEnglish
	default:
		return msgChooseLanguage
	}

	state.Locale = locale
	state.Cursor = 0
	state.Phase = entities.PhaseAwaitingAnswer

	return s.catalog.Questions(locale)[0].Prompt
}

func (s *ConversationService) handleAnswer(ctx context.Context, state *entities.ConversationState, input string) (string, error) {
	questions := s.catalog.Questions(state.Locale)
	question := questions[state.Cursor]

	// Free-text answers are stored exactly as typed, whitespace and all.
	answer := input
	if question.MultiSelect() {
		resolved, err := resolveSelections(input, question.Options)
		if err != nil {
			if errors.Is(err, ErrNoValidSelection) {
				// Cursor stays put; the question is re-asked.
				return msgInvalidSelection, nil
			}
			return msgInvalidSelection, err
		}
		answer = resolved
	}

	state.Answers = append(state.Answers, answer)

	if next := state.Cursor + 1; next < len(questions) {
		state.Cursor = next
		return questions[next].Prompt, nil
	}

	return s.submit(ctx, state)
}

// submit appends the completed application to the record sink and
// resets the state for the next applicant. On failure the state is left
// as is: the answers stay buffered and the cursor remains on the last
// question, so a fresh application requires re-answering from the top.
func (s *ConversationService) submit(ctx context.Context, state *entities.ConversationState) (string, error) {
	row := make([]string, 0, len(state.Answers)+1)
	row = append(row, s.now().Format(timestampLayout))
	row = append(row, state.Answers...)

	if err := s.sink.AppendRow(ctx, row); err != nil {
		return fmt.Sprintf("Error saving data: %v", err), fmt.Errorf("append application row: %w", err)
	}

	state.Reset()

	return msgApplicationReceived, nil
}
