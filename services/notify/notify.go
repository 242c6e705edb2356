// Package notify delivers user notifications outside of a browser.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/trezcool/unirepo/core"
)

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger core.Logger
}

var _ core.Notifier = (*LogNotifier)(nil) // interface compliance check

func NewLogNotifier(logger core.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(notif core.Notification) {
	args := map[string]interface{}{"title": notif.Title, "description": notif.Description}
	if notif.Variant == core.VariantDestructive {
		n.logger.Warn("notification", args)
		return
	}
	n.logger.Info("notification", args)
}

// WriterNotifier prints notifications as "Title: Description" lines, for terminals.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ core.Notifier = (*WriterNotifier)(nil) // interface compliance check

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(notif core.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "%s: %s\n", notif.Title, notif.Description)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	notes []core.Notification
}

var _ core.Notifier = (*Recorder)(nil) // interface compliance check

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Notify(notif core.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, notif)
}

// All returns the notifications received so far, oldest first.
func (r *Recorder) All() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Notification(nil), r.notes...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (core.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return core.Notification{}, false
	}
	return r.notes[len(r.notes)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = nil
}
