package session

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

const (
	// DefaultUndoLimit is the number of snapshots kept on the undo stack.
	DefaultUndoLimit = 100
	// DefaultIdleInterval ends a typing burst when no keystroke arrives for this long.
	DefaultIdleInterval = 600 * time.Millisecond
)

// View is anything that displays the document and must be refreshed when the
// session replaces it wholesale.
type View interface {
	Sync(doc *types.Document)
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(doc *types.Document)

// Sync calls f(doc).
func (f ViewFunc) Sync(doc *types.Document) { f(doc) }

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for history events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScheduler sets the delayed-callback facility used to end typing bursts.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) {
		if sched != nil {
			s.sched = sched
		}
	}
}

// WithUndoLimit caps the undo stack. Values below one are ignored.
func WithUndoLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithIdleInterval sets how long typing must pause before a burst is committed.
func WithIdleInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.idle = d
		}
	}
}

// Session owns the current document and its history.
type Session struct {
	doc      *types.Document
	undo     []*types.Document
	redo     []*types.Document
	views    []viewEntry
	nextView int

	limit  int
	idle   time.Duration
	sched  Scheduler
	logger *slog.Logger

	typing       bool
	cancelCommit func()
	pendingKeys  []string
	pendingVals  map[string]string
	syncing      bool
}

type viewEntry struct {
	id int
	v  View
}

// New starts a session on a copy of doc, or on the default document when doc is nil.
func New(doc *types.Document, opts ...Option) *Session {
	if doc == nil {
		doc = types.NewDocument()
	}
	s := &Session{
		doc:         doc.Clone(),
		limit:       DefaultUndoLimit,
		idle:        DefaultIdleInterval,
		logger:      slog.Default(),
		pendingVals: map[string]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sched == nil {
		s.sched = NewManualScheduler()
	}
	return s
}

// AddView registers v, syncs it with the current document and returns a
// func that unregisters it.
func (s *Session) AddView(v View) (remove func()) {
	s.nextView++
	id := s.nextView
	s.views = append(s.views, viewEntry{id: id, v: v})
	s.syncing = true
	v.Sync(s.Document())
	s.syncing = false
	return func() {
		for i, e := range s.views {
			if e.id == id {
				s.views = append(s.views[:i], s.views[i+1:]...)
				return
			}
		}
	}
}

// Document returns a deep copy of the current document, including header
// values typed during a burst that has not been committed yet.
func (s *Session) Document() *types.Document {
	doc := s.doc.Clone()
	for _, k := range s.pendingKeys {
		_ = doc.Header.Set(k, s.pendingVals[k])
	}
	return doc
}

// CanUndo reports whether Undo would change the document.
func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would change the document.
func (s *Session) CanRedo() bool { return len(s.redo) > 0 }

// UndoDepth returns the number of snapshots on the undo stack.
func (s *Session) UndoDepth() int { return len(s.undo) }

// RedoDepth returns the number of snapshots on the redo stack.
func (s *Session) RedoDepth() int { return len(s.redo) }

// Typing reports whether a header typing burst is in progress.
func (s *Session) Typing() bool { return s.typing }

// TypeHeader records one keystroke's worth of change to a header field. The
// first keystroke of a burst checkpoints the document; the burst ends after
// the idle interval passes without another keystroke, or when any other
// operation runs. Keystrokes echoed by a view while it is being synced are
// ignored.
func (s *Session) TypeHeader(field, value string) error {
	if s.syncing {
		return nil
	}
	if _, err := s.doc.Header.Get(field); err != nil {
		return err
	}
	if !s.typing {
		s.pushUndo(s.doc.Clone())
		s.redo = nil
		s.typing = true
		s.logger.Debug("typing burst started", "field", field, "undo", len(s.undo))
	}
	if _, ok := s.pendingVals[field]; !ok {
		s.pendingKeys = append(s.pendingKeys, field)
	}
	s.pendingVals[field] = value

	if s.cancelCommit != nil {
		s.cancelCommit()
	}
	s.cancelCommit = s.sched.Schedule(s.idle, s.Commit)
	return nil
}

// Commit ends a typing burst now, writing pending header values into the
// document without adding another undo step. It is a no-op outside a burst.
func (s *Session) Commit() {
	if s.cancelCommit != nil {
		s.cancelCommit()
		s.cancelCommit = nil
	}
	if !s.typing {
		return
	}
	for _, k := range s.pendingKeys {
		_ = s.doc.Header.Set(k, s.pendingVals[k])
	}
	s.pendingKeys = nil
	s.pendingVals = map[string]string{}
	s.typing = false
	s.logger.Debug("typing burst committed")
	s.notify()
}

// Undo restores the previous snapshot. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	s.Commit()
	if len(s.undo) == 0 {
		return false
	}
	prev := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, s.doc)
	s.apply(prev)
	s.logger.Debug("undo", "undo", len(s.undo), "redo", len(s.redo))
	return true
}

// Redo reapplies the most recently undone snapshot. It reports false when
// there is nothing to redo.
func (s *Session) Redo() bool {
	s.Commit()
	if len(s.redo) == 0 {
		return false
	}
	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.pushUndo(s.doc)
	s.apply(next)
	s.logger.Debug("redo", "undo", len(s.undo), "redo", len(s.redo))
	return true
}

// SetHeader assigns a header field as one undoable step.
func (s *Session) SetHeader(field, value string) error {
	return s.edit("set header", func(d *types.Document) error {
		return d.Header.Set(field, value)
	})
}

// SetLinkKind changes the kind of a link slot ("linkedin" or "github"). The
// Custom kind takes label as the kind and as the display text; a blank label
// leaves the slot unchanged.
func (s *Session) SetLinkKind(slot, kind, label string) error {
	kindKey, displayKey, err := linkKeys(slot)
	if err != nil {
		return err
	}
	kind = strings.TrimSpace(kind)
	if strings.EqualFold(kind, types.LinkKindCustom) {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil
		}
		return s.edit("set link kind", func(d *types.Document) error {
			_ = d.Header.Set(kindKey, label)
			return d.Header.Set(displayKey, label)
		})
	}
	return s.edit("set link kind", func(d *types.Document) error {
		return d.Header.Set(kindKey, kind)
	})
}

func linkKeys(slot string) (kind, display string, err error) {
	switch strings.ToLower(strings.TrimSpace(slot)) {
	case "linkedin":
		return "linkedin_kind", "linkedin_display", nil
	case "github":
		return "github_kind", "github_display", nil
	}
	return "", "", fmt.Errorf("unknown link slot %q (want linkedin or github)", slot)
}

// AddSection appends an empty section and returns its id. An empty kind
// means custom.
func (s *Session) AddSection(title string, kind types.Kind) (string, error) {
	kind = types.Kind(strings.ToLower(strings.TrimSpace(string(kind))))
	if kind == "" {
		kind = types.KindCustom
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("section title is required")
	}
	var id string
	err := s.edit("add section", func(d *types.Document) error {
		id = newSectionID(d)
		d.Sections = append(d.Sections, types.Section{ID: id, Title: title, Kind: kind, Entries: []types.Entry{}})
		return nil
	})
	return id, err
}

func newSectionID(d *types.Document) string {
	for {
		id := "sec_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if d.SectionIndex(id) < 0 {
			return id
		}
	}
}

// RenameSection changes a section's title.
func (s *Session) RenameSection(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("section title is required")
	}
	return s.edit("rename section", func(d *types.Document) error {
		sec, err := section(d, id)
		if err != nil {
			return err
		}
		sec.Title = title
		return nil
	})
}

// DeleteSection removes a section and its entries.
func (s *Session) DeleteSection(id string) error {
	return s.edit("delete section", func(d *types.Document) error {
		i := d.SectionIndex(id)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrSectionNotFound, id)
		}
		d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
		return nil
	})
}

// MoveSection moves the section at from so that it ends up at position to.
func (s *Session) MoveSection(from, to int) error {
	return s.edit("move section", func(d *types.Document) error {
		return move(d.Sections, from, to, "section")
	})
}

// AddEntry appends a blank entry of the section's kind and returns its index.
func (s *Session) AddEntry(sectionID string) (int, error) {
	var idx int
	err := s.edit("add entry", func(d *types.Document) error {
		sec, err := section(d, sectionID)
		if err != nil {
			return err
		}
		sec.Entries = append(sec.Entries, types.NewEntry(sec.Kind))
		idx = len(sec.Entries) - 1
		return nil
	})
	return idx, err
}

// ReplaceEntry overwrites the entry at index with e.
func (s *Session) ReplaceEntry(sectionID string, index int, e types.Entry) error {
	return s.edit("replace entry", func(d *types.Document) error {
		sec, err := section(d, sectionID)
		if err != nil {
			return err
		}
		if err := checkIndex(index, len(sec.Entries), "entry"); err != nil {
			return err
		}
		if e == nil || !types.EntryMatchesKind(e, sec.Kind) {
			return fmt.Errorf("%w: section %q is %s", ErrEntryKind, sectionID, sec.Kind)
		}
		sec.Entries[index] = e.CloneEntry()
		return nil
	})
}

// DeleteEntry removes the entry at index.
func (s *Session) DeleteEntry(sectionID string, index int) error {
	return s.edit("delete entry", func(d *types.Document) error {
		sec, err := section(d, sectionID)
		if err != nil {
			return err
		}
		if err := checkIndex(index, len(sec.Entries), "entry"); err != nil {
			return err
		}
		sec.Entries = append(sec.Entries[:index], sec.Entries[index+1:]...)
		return nil
	})
}

// MoveEntry reorders entries within one section.
func (s *Session) MoveEntry(sectionID string, from, to int) error {
	return s.edit("move entry", func(d *types.Document) error {
		sec, err := section(d, sectionID)
		if err != nil {
			return err
		}
		return move(sec.Entries, from, to, "entry")
	})
}

// Reset replaces the document with the empty default document.
func (s *Session) Reset() error {
	return s.Replace(types.NewDocument())
}

// LoadDemo replaces the document with the sample résumé.
func (s *Session) LoadDemo() error {
	return s.Replace(types.DemoDocument())
}

// Replace swaps in doc wholesale as one undoable step, as when a project
// file is opened.
func (s *Session) Replace(doc *types.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document")
	}
	s.Commit()
	s.pushUndo(s.doc)
	s.redo = nil
	s.apply(doc.Clone())
	s.logger.Debug("document replaced", "sections", len(doc.Sections), "undo", len(s.undo))
	return nil
}

// edit applies mutate to a copy of the document. On success the old document
// becomes an undo step; on failure nothing changes.
func (s *Session) edit(op string, mutate func(d *types.Document) error) error {
	s.Commit()
	next := s.doc.Clone()
	if err := mutate(next); err != nil {
		return err
	}
	s.pushUndo(s.doc)
	s.redo = nil
	s.doc = next
	s.logger.Debug("checkpoint", "op", op, "undo", len(s.undo))
	s.notify()
	return nil
}

func (s *Session) pushUndo(doc *types.Document) {
	s.undo = append(s.undo, doc)
	if over := len(s.undo) - s.limit; over > 0 {
		s.undo = append([]*types.Document(nil), s.undo[over:]...)
	}
}

// apply installs doc as current, then resyncs every view.
func (s *Session) apply(doc *types.Document) {
	s.doc = doc
	s.pendingKeys = nil
	s.pendingVals = map[string]string{}
	s.notify()
}

// notify syncs every view. Edits the views echo back while syncing are dropped.
func (s *Session) notify() {
	if s.syncing {
		return
	}
	s.syncing = true
	defer func() { s.syncing = false }()
	for _, e := range s.views {
		e.v.Sync(s.doc.Clone())
	}
}

func section(d *types.Document, id string) (*types.Section, error) {
	i := d.SectionIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
	}
	return &d.Sections[i], nil
}

func checkIndex(i, n int, what string) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %s %d of %d", ErrIndexOutOfRange, what, i, n)
	}
	return nil
}

func move[T any](items []T, from, to int, what string) error {
	if err := checkIndex(from, len(items), what); err != nil {
		return err
	}
	if err := checkIndex(to, len(items), what); err != nil {
		return err
	}
	item := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = item
	return nil
}
