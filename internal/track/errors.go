package track

import "fmt"

// SyntaxError reports a document that is not well-formed structured data.
type SyntaxError struct {
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// TrackSyntaxError reports a schema violation in a parsed track document.
// The message is user facing and must not be reworded.
type TrackSyntaxError struct {
	TrackName string
	Message   string
}

func NewTrackSyntaxError(trackName, format string, args ...any) *TrackSyntaxError {
	return &TrackSyntaxError{TrackName: trackName, Message: fmt.Sprintf(format, args...)}
}

func (e *TrackSyntaxError) Error() string {
	return fmt.Sprintf("Track '%s' is invalid. %s", e.TrackName, e.Message)
}

// TemplateError reports a failure while expanding a track template.
type TemplateError struct {
	Template string
	Message  string
	Err      error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("template %q: %s", e.Template, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
