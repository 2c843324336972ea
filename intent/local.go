package intent

import (
	"context"
	"fmt"
)

type LocalRecognizer struct{}

func NewLocalRecognizer() *LocalRecognizer {
	return &LocalRecognizer{}
}

func (LocalRecognizer) RecognizeIntent(ctx context.Context, text string) (Intent, error) {
	return Classify(text), nil
}

// Classify runs the utterance predicates in a fixed order.
func Classify(text string) Intent {
	switch {
	case IsNumberOnly(text):
		return Number
	case IsGreeting(text):
		return Greeting
	case IsAcknowledgmentOnly(text):
		return Acknowledgment
	default:
		return Content
	}
}

type FailbackRecognizer struct {
	recognizers []Recognizer
}

func NewFailbackRecognizer(recognizers ...Recognizer) *FailbackRecognizer {
	return &FailbackRecognizer{recognizers: recognizers}
}

func (r *FailbackRecognizer) RecognizeIntent(ctx context.Context, text string) (Intent, error) {
	var lastErr error
	for _, recognizer := range r.recognizers {
		in, err := recognizer.RecognizeIntent(ctx, text)
		if err == nil {
			return in, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return Content, nil
	}
	return Content, fmt.Errorf("all intent recognizers failed: %w", lastErr)
}
