package service

import "context"

// RecordSink is the append-only store receiving completed application
// rows. The engine supplies rows shaped [timestamp, answer, answer, ...].
type RecordSink interface {
	AppendRow(ctx context.Context, row []string) error
}
