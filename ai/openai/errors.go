package openai

import "errors"

var (
	// ErrEmptyResponse indicates the model returned no choices.
	ErrEmptyResponse = errors.New("empty classifier response")

	// ErrUnparsableResponse indicates the model output was not valid JSON
	// even after repair.
	ErrUnparsableResponse = errors.New("unparsable classifier response")
)
