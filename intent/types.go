package intent

import (
	"context"
)

type Intent string

const (
	Greeting       Intent = "greeting"
	Number         Intent = "number"
	Acknowledgment Intent = "acknowledgment"
	Content        Intent = "content"
)

// Noise reports whether the intent carries no slot information.
func (i Intent) Noise() bool {
	return i == Greeting || i == Acknowledgment
}

type Recognizer interface {
	RecognizeIntent(ctx context.Context, text string) (Intent, error)
}
