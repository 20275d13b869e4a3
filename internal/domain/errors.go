package domain

import (
	"errors"
	"fmt"
)

// ValidationError is returned for bad caller input (e.g. neither ETD nor ETA).
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// DiscoveryError means a carrier produced no usable document links.
type DiscoveryError struct {
	Carrier string
	Msg     string
	Err     error
}

func (e DiscoveryError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "link discovery failed"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Carrier, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Carrier, msg)
}

func (e DiscoveryError) Unwrap() error { return e.Err }

// ClassificationError is returned when the model answers outside the closed
// category set of a carrier.
type ClassificationError struct {
	Carrier string
	Reply   string
	Err     error
}

func (e ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: region classification failed: %v", e.Carrier, e.Err)
	}
	return fmt.Sprintf("%s: invalid region category %q", e.Carrier, e.Reply)
}

func (e ClassificationError) Unwrap() error { return e.Err }

// FetchError covers network errors and non-success statuses while downloading
// a candidate document.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s failed", e.URL)
}

func (e FetchError) Unwrap() error { return e.Err }

// ExtractionKind tells why a document yielded nothing usable.
type ExtractionKind string

const (
	ExtractionUnreadable   ExtractionKind = "Unreadable"
	ExtractionNoCandidates ExtractionKind = "NoCandidates"
)

type ExtractionError struct {
	URL  string
	Kind ExtractionKind
	Err  error
}

func (e ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.URL, e.Kind, e.Err)
	}
	return fmt.Sprintf("extract %s: %s", e.URL, e.Kind)
}

func (e ExtractionError) Unwrap() error { return e.Err }

// ReplyErrorKind enumerates the ways a model reply can fail to parse.
type ReplyErrorKind string

const (
	EmptyReply    ReplyErrorKind = "EmptyReply"
	NoJSONFound   ReplyErrorKind = "NoJsonFound"
	MalformedJSON ReplyErrorKind = "MalformedJson"
)

// ModelReplyError keeps the raw reply so callers can tell "tried but failed"
// apart from "no data at all".
type ModelReplyError struct {
	Kind        ReplyErrorKind
	RawResponse string
	Detail      string
}

func (e *ModelReplyError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("model reply: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("model reply: %s", e.Kind)
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

// IsDiscovery reports both plain discovery failures and classification ones.
func IsDiscovery(err error) bool {
	var d DiscoveryError
	var c ClassificationError
	return errors.As(err, &d) || errors.As(err, &c)
}

func IsClassification(err error) bool {
	var target ClassificationError
	return errors.As(err, &target)
}

func IsFetch(err error) bool {
	var target FetchError
	return errors.As(err, &target)
}

func IsExtraction(err error) bool {
	var target ExtractionError
	return errors.As(err, &target)
}

// AsModelReply unwraps a *ModelReplyError if err carries one.
func AsModelReply(err error) (*ModelReplyError, bool) {
	var target *ModelReplyError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// FailureKind gives a short label for logs, metrics and diagnostics.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "InputError"
	case IsClassification(err):
		return "ClassificationFailure"
	case IsDiscovery(err):
		return "DiscoveryFailure"
	case IsFetch(err):
		return "FetchFailure"
	case IsExtraction(err):
		var e ExtractionError
		errors.As(err, &e)
		return string(e.Kind)
	}
	if r, ok := AsModelReply(err); ok {
		return string(r.Kind)
	}
	return "Unhandled"
}
