package discovery

import (
	"fmt"
	"io"
	"sync"

	"github.com/poiesic/vidsift/core"
)

// Kind identifies a progress message type.
type Kind int

const (
	// KindLog is a free-text status update.
	KindLog Kind = iota + 1
	// KindError is terminal; the session aborted.
	KindError
	// KindDone is terminal; carries the final list and summary counts.
	KindDone
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLog:
		return "log"
	case KindError:
		return "error"
	case KindDone:
		return "done"
	default:
		return "unknown"
	}
}

// Summary carries the terminal counts of a session.
type Summary struct {
	Accepted    int // candidates in the final list
	Observed    int // distinct raw ids seen across all probes
	FilteredOut int // Observed - Accepted
}

// Message is one progress event pushed from a session to its caller.
// Exactly one terminal message (KindError or KindDone) is published per
// session that reaches the reporter at all.
type Message struct {
	Kind    Kind
	Text    string
	Videos  []*core.VideoRecord // set on KindDone
	Summary Summary             // set on KindDone
}

// Reporter consumes progress messages. Implementations are transport
// adapters (websocket, CLI); the funnel itself has no transport
// dependency.
type Reporter interface {
	Publish(msg Message)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(msg Message)

// Publish calls f(msg).
func (f ReporterFunc) Publish(msg Message) {
	f(msg)
}

// WriterReporter renders progress messages as plain lines, typically to
// os.Stderr for the CLI.
type WriterReporter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewWriterReporter creates a reporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{writer: w}
}

// Publish writes one line per message; done messages additionally list the
// accepted videos.
func (r *WriterReporter) Publish(msg Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch msg.Kind {
	case KindDone:
		fmt.Fprintf(r.writer, "done: %s\n", msg.Text)
		for _, v := range msg.Videos {
			fmt.Fprintf(r.writer, "  %s  %s (%dm) - %s\n",
				v.ID, v.Title, v.Duration/60, v.AIReason)
		}
	default:
		fmt.Fprintf(r.writer, "%s: %s\n", msg.Kind, msg.Text)
	}
}
