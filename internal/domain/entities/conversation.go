package entities

// Phase is the position of a conversation in the application flow.
type Phase int

const (
	// PhaseAwaitingLocale means the bot is waiting for the applicant to
	// pick a language before the first question is asked.
	PhaseAwaitingLocale Phase = iota
	// PhaseAwaitingAnswer means the bot is waiting for an answer to the
	// question at the current cursor.
	PhaseAwaitingAnswer
)

// Speaker identifies the author of a transcript turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one transcript entry. The transcript is display-only; the
// engine never reads it back.
type Turn struct {
	Speaker Speaker
	Text    string
}

// ConversationState holds everything mutable about one in-progress
// application. One instance exists per chat, and every update for that
// chat is handled to completion before the next, so the struct itself
// needs no locking.
type ConversationState struct {
	Phase      Phase
	Locale     Locale   // set once a language is chosen
	Cursor     int      // index into the active question set, valid in PhaseAwaitingAnswer
	Answers    []string // one validated answer per completed question, in order
	Transcript []Turn
}

// NewConversationState creates an empty state waiting for a language choice.
func NewConversationState() *ConversationState {
	return &ConversationState{Phase: PhaseAwaitingLocale}
}

// Reset returns the state to the start of a fresh application while
// keeping the transcript intact.
func (s *ConversationState) Reset() {
	s.Phase = PhaseAwaitingLocale
	s.Locale = ""
	s.Cursor = 0
	s.Answers = nil
}

// Record appends one turn to the transcript.
func (s *ConversationState) Record(speaker Speaker, text string) {
	s.Transcript = append(s.Transcript, Turn{Speaker: speaker, Text: text})
}
