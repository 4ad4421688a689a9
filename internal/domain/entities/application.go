package entities

import "time"

// Application is one submitted job application as stored by the
// Postgres sink. The Sheets sink works on raw rows and does not use it.
type Application struct {
	ID          string
	SubmittedAt time.Time
	Answers     []string
}
