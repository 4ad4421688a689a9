// messages.go contains the handler-owned message texts. The engine owns
// the question prompts and per-turn responses; only the greeting and
// command replies live here.

package telegram

const (
	msgGreeting = "Hello! / ¡Hola!\n\nPlease type *English* or *Español* to start."

	msgHelp = "Commands:\n" +
		"/start – begin a new job application\n" +
		"/help – show this message\n\n" +
		"Everything else you type is treated as an answer to the current question."

	msgInternalError = "Something went wrong. Please try again later."
)
