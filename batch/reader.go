package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/rpnkit/notation"
)

// Reader reads expression files.
type Reader struct {
	path string
	file *os.File

	commentPrefix string
	pollInterval  time.Duration
	forcePolling  bool
}

// NewReader opens path for reading expressions.
func NewReader(path string, opts ...Option) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open expression file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat expression file: %w", err)
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	r := &Reader{
		path:          path,
		file:          file,
		commentPrefix: DefaultCommentPrefix,
		pollInterval:  DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Path returns the file path being read.
func (r *Reader) Path() string {
	return r.path
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ParseLine returns the expression on a line, or false if the line is
// blank or starts with commentPrefix after leading spaces and tabs.
// An empty commentPrefix disables comments. A trailing "\n" or "\r\n"
// is trimmed.
func ParseLine(line, commentPrefix string) (string, bool) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	if commentPrefix != "" && strings.HasPrefix(strings.TrimLeft(line, " \t"), commentPrefix) {
		return "", false
	}
	return line, true
}

func (r *Reader) parseLine(line string) (string, bool) {
	return ParseLine(line, r.commentPrefix)
}

// ReadAll reads every expression in the file.
func (r *Reader) ReadAll() ([]string, error) {
	exprs, _, err := r.ReadFrom(0)
	return exprs, err
}

// ReadFrom reads expressions starting at a byte offset.
// Returns the offset just past the last byte read.
func (r *Reader) ReadFrom(offset int64) ([]string, int64, error) {
	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, fmt.Errorf("seek to offset: %w", err)
	}

	var exprs []string
	reader := bufio.NewReader(r.file)
	for {
		line, err := reader.ReadString('\n')
		offset += int64(len(line))
		if expr, ok := r.parseLine(line); ok {
			exprs = append(exprs, expr)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, offset, fmt.Errorf("read expressions: %w", err)
		}
	}
	return exprs, offset, nil
}

// Convert reads every expression and runs it through conv.
func (r *Reader) Convert(conv *notation.Converter) ([]notation.Result, error) {
	exprs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return conv.ConvertAll(exprs)
}

// ReadFile reads all expressions from a file.
func ReadFile(path string, opts ...Option) ([]string, error) {
	r, err := NewReader(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadAll()
}

// Tail follows the file and sends expressions appended after the call.
// Only complete lines are delivered. If another file is renamed over the
// path, Tail switches to it and delivers it from the first line. The
// channel is closed when ctx is cancelled.
func (r *Reader) Tail(ctx context.Context) <-chan string {
	ch := make(chan string, 16)

	offset, err := r.file.Seek(0, io.SeekEnd)
	if err != nil {
		slog.Warn("cannot tail expression file", slog.String("path", r.path), slog.Any("error", err))
		close(ch)
		return ch
	}

	t := &tailer{r: r, ch: ch, file: r.file, offset: offset, reader: bufio.NewReader(r.file)}

	var watcher *fsnotify.Watcher
	if !r.forcePolling {
		watcher = r.newWatcher()
	}

	go func() {
		defer close(ch)
		defer t.close()
		if watcher == nil {
			t.poll(ctx)
			return
		}
		defer watcher.Close()
		t.watch(ctx, watcher)
	}()

	return ch
}

// newWatcher returns a watcher on the file's directory, or nil if fsnotify
// cannot be used.
func (r *Reader) newWatcher() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("fsnotify unavailable, polling", slog.Any("error", err))
		return nil
	}
	// The directory is watched so that a file renamed over path is seen.
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		watcher.Close()
		slog.Debug("fsnotify watch failed, polling", slog.String("path", r.path), slog.Any("error", err))
		return nil
	}
	return watcher
}

// tailer holds the read state of one Tail call.
// file starts as the Reader's file; once path is replaced, the tailer
// opens and owns its own handle.
type tailer struct {
	r       *Reader
	ch      chan<- string
	file    *os.File
	owned   bool
	offset  int64
	reader  *bufio.Reader
	pending string
}

func (t *tailer) close() {
	if t.owned {
		t.file.Close()
	}
}

func (t *tailer) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(t.r.path)

	// Catch anything written between Seek and watcher.Add.
	if !t.readNew(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !t.readNew(ctx) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", slog.String("path", t.r.path), slog.Any("error", err))
		}
	}
}

func (t *tailer) poll(ctx context.Context) {
	ticker := time.NewTicker(t.r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.readNew(ctx) {
				return
			}
		}
	}
}

// reopenIfReplaced switches to the file now at path when it is no longer
// the one being read. Reading restarts at the top of the new file.
func (t *tailer) reopenIfReplaced() {
	pathInfo, err := os.Stat(t.r.path)
	if err != nil {
		// Removed or mid-rename; keep reading the old handle.
		return
	}
	fileInfo, err := t.file.Stat()
	if err == nil && os.SameFile(pathInfo, fileInfo) {
		return
	}

	file, err := os.Open(t.r.path)
	if err != nil {
		slog.Debug("reopen expression file failed", slog.String("path", t.r.path), slog.Any("error", err))
		return
	}
	t.close()
	t.file = file
	t.owned = true
	t.offset = 0
	t.pending = ""
	t.reader.Reset(file)
	slog.Debug("expression file replaced, reopened", slog.String("path", t.r.path))
}

// readNew delivers complete lines written since the last read.
// It returns false once ctx is done.
func (t *tailer) readNew(ctx context.Context) bool {
	t.reopenIfReplaced()

	info, err := t.file.Stat()
	if err != nil {
		return true
	}
	if info.Size() < t.offset {
		// Truncated; start over.
		if _, err := t.file.Seek(0, io.SeekStart); err != nil {
			return true
		}
		t.offset = 0
		t.pending = ""
		t.reader.Reset(t.file)
	}

	for {
		line, err := t.reader.ReadString('\n')
		t.offset += int64(len(line))
		if err != nil {
			// Partial line; wait for the rest.
			t.pending += line
			return true
		}

		line = t.pending + line
		t.pending = ""
		expr, ok := t.r.parseLine(line)
		if !ok {
			continue
		}
		select {
		case t.ch <- expr:
		case <-ctx.Done():
			return false
		}
	}
}
