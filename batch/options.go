package batch

import "time"

// DefaultPollInterval is used by Tail when fsnotify is unavailable.
const DefaultPollInterval = 100 * time.Millisecond

// DefaultCommentPrefix marks comment lines.
const DefaultCommentPrefix = "#"

// Option configures a Reader.
type Option func(*Reader)

// WithCommentPrefix sets the prefix that marks comment lines.
// An empty prefix disables comment handling.
func WithCommentPrefix(prefix string) Option {
	return func(r *Reader) {
		r.commentPrefix = prefix
	}
}

// WithPollInterval sets the polling interval used when fsnotify is
// unavailable. Non-positive values keep the default.
func WithPollInterval(d time.Duration) Option {
	return func(r *Reader) {
		if d > 0 {
			r.pollInterval = d
		}
	}
}

// WithPolling forces Tail to poll instead of using fsnotify.
func WithPolling() Option {
	return func(r *Reader) {
		r.forcePolling = true
	}
}
