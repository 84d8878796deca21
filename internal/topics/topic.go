// Package topics manages the exploration topic queue.
// Each explanation can surface new topics; the queue connects isolated
// explanations into a guided exploration session.
package topics

import (
	"time"

	"github.com/google/uuid"
)

// Topic kinds. Unknown kinds parsed from model output degrade to KindGeneral.
const (
	KindFile     = "file"
	KindFunction = "function"
	KindRepo     = "repo"
	KindDiff     = "diff"
	KindGeneral  = "general"
)

// Topic statuses. Transitions are one-directional: pending to done, or
// pending to skipped. There is no transition out of done or skipped.
const (
	StatusPending = "pending"
	StatusDone    = "done"
	StatusSkipped = "skipped"
)

// knownKinds is the closed set of topic kinds.
var knownKinds = map[string]bool{
	KindFile:     true,
	KindFunction: true,
	KindRepo:     true,
	KindDiff:     true,
	KindGeneral:  true,
}

// KnownKind reports whether kind is one of the recognized topic kinds.
func KnownKind(kind string) bool {
	return knownKinds[kind]
}

// Topic is a queued exploration task.
// JSON field names are stable so a hand-edited topics.json stays loadable.
type Topic struct {
	// ID uniquely identifies the topic.
	ID string `json:"id,omitempty"`
	// Title is the human-readable description of what to explore.
	Title string `json:"title"`
	// Kind is the exploration type: file, function, repo, diff, or general.
	Kind string `json:"kind"`
	// Target is what the exploration points at. Its shape depends on Kind:
	// a file path, a path:symbol pair, a ref name, or a short label.
	Target string `json:"target"`
	// Source records which explanation surfaced this topic, empty if none.
	Source string `json:"source"`
	// Status is pending, done, or skipped.
	Status string `json:"status"`
	// Added is when the topic was created. Never mutated afterwards.
	Added string `json:"added"`
}

// New creates a pending Topic with a fresh ID and creation timestamp.
func New(title, kind, target, source string) Topic {
	return Topic{
		ID:     uuid.New().String(),
		Title:  title,
		Kind:   kind,
		Target: target,
		Source: source,
		Status: StatusPending,
		Added:  time.Now().Format("2006-01-02T15:04:05"),
	}
}
