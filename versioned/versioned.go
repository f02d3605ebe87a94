package versioned

import (
	"errors"
	"time"

	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/domain"
	"github.com/go-dimval/dimval/interval"
	"github.com/go-dimval/dimval/store"
)

// unapprovedStartVersion is the reserved version at which unapproved
// changes are parked.
const unapprovedStartVersion int64 = 1<<63 - 1

var (
	// ErrVersionOutOfRange is returned by SetCurrentVersion when v is
	// at or above unapprovedStartVersion or below the store's initial
	// version.
	ErrVersionOutOfRange = errors.New("versioned: version out of range")
	// ErrVersionsExhausted is returned by IncrementCurrentVersion when
	// the next version would collide with unapprovedStartVersion.
	ErrVersionsExhausted = errors.New("versioned: no versions remain before the unapproved boundary")
)

var versionDomain = domain.Int64{}

// selectionKind distinguishes the three VersionSelection shapes.
type selectionKind uint8

const (
	selCurrent selectionKind = iota
	selUnapproved
	selSpecific
)

// VersionSelection picks which version's view of the store an
// operation observes.
type VersionSelection struct {
	kind    selectionKind
	version int64
}

// Current selects the store's current_version.
func Current() VersionSelection { return VersionSelection{kind: selCurrent} }

// Unapproved selects the reserved unapproved-changes version.
func Unapproved() VersionSelection { return VersionSelection{kind: selUnapproved} }

// Specific selects an exact version.
func Specific(v int64) VersionSelection { return VersionSelection{kind: selSpecific, version: v} }

// versionMeta records the opaque caller comment and the wall-clock
// instant at which a version became current, for later inspection via
// VersionMeta. The core engine never interprets comment or ts.
type versionMeta struct {
	comment string
	ts      time.Time
}

// Store is the versioned façade over store.Store[V], with a leading
// int64 version axis hidden from callers.
type Store[V any] struct {
	inner          *store.Store[V]
	initialVersion int64
	currentVersion int64
	meta           map[int64]versionMeta
}

// New constructs a versioned store over userFull (the arity-N domain
// visible to callers, excluding the version axis), starting at
// initialVersion.
func New[V any](userFull box.Box, initialVersion int64, opts ...store.Option[V]) (*Store[V], error) {
	full := append(box.Box{versionAxis(interval.Unbounded[int64]())}, userFull...)
	inner, err := store.New[V](full, opts...)
	if err != nil {
		return nil, err
	}
	return &Store[V]{
		inner:          inner,
		initialVersion: initialVersion,
		currentVersion: initialVersion,
		meta:           map[int64]versionMeta{initialVersion: {ts: time.Now()}},
	}, nil
}

// recordVersionMeta stamps v with comment and the current wall-clock
// time, overwriting any prior metadata for v.
func (s *Store[V]) recordVersionMeta(v int64, comment string) {
	if s.meta == nil {
		s.meta = make(map[int64]versionMeta)
	}
	s.meta[v] = versionMeta{comment: comment, ts: time.Now()}
}

// VersionMeta returns the comment and timestamp recorded when v became
// current, and whether any metadata is recorded for v.
func (s *Store[V]) VersionMeta(v int64) (comment string, ts time.Time, ok bool) {
	m, ok := s.meta[v]
	return m.comment, m.ts, ok
}

func versionAxis(iv interval.Interval[int64]) box.Dim {
	return box.NewAxis[int64](versionDomain, iv)
}

func (s *Store[V]) boundary(sel VersionSelection) int64 {
	switch sel.kind {
	case selUnapproved:
		return unapprovedStartVersion
	case selSpecific:
		return sel.version
	default:
		return s.currentVersion
	}
}

// withHead composes region (arity N) with selection's axis-0 interval
// intervalFrom(selection.boundary). Mutators use this: a change made
// under a selection takes effect from that version forward, until
// some later change narrows it.
func (s *Store[V]) withHead(region box.Box, sel VersionSelection) box.Box {
	head := versionAxis(interval.From(s.boundary(sel)))
	return append(box.Box{head}, region...)
}

// withHeadAt composes region with the single version point
// selection.boundary. Reads use this: "valid under Current" means the
// row's version interval contains current_version exactly, not that it
// merely overlaps everything from current_version forward.
func (s *Store[V]) withHeadAt(region box.Box, sel VersionSelection) box.Box {
	head := box.Point[int64](versionDomain, s.boundary(sel))
	return append(box.Box{head}, region...)
}

func stripHead(b box.Box) box.Box { return b[1:] }

// GetAt returns the value covering point under sel.
func (s *Store[V]) GetAt(point box.Box, sel VersionSelection) (V, bool) {
	return s.inner.GetAt(s.withHeadAt(point, sel))
}

// GetIntersecting returns the user-space rows valid under sel that
// intersect region, with the version axis stripped from each interval.
func (s *Store[V]) GetIntersecting(region box.Box, sel VersionSelection) []store.Row[V] {
	rows := s.inner.GetIntersecting(s.withHeadAt(region, sel))
	out := make([]store.Row[V], len(rows))
	for i, r := range rows {
		out[i] = store.Row[V]{Interval: stripHead(r.Interval), Value: r.Value}
	}
	return out
}

// Intersects reports whether region is valid anywhere under sel.
func (s *Store[V]) Intersects(region box.Box, sel VersionSelection) bool {
	return s.inner.Intersects(s.withHeadAt(region, sel))
}

// Set sets row's value over region from sel's version forward.
func (s *Store[V]) Set(row store.Row[V], sel VersionSelection) {
	s.inner.Set(store.Row[V]{Interval: s.withHead(row.Interval, sel), Value: row.Value})
}

// Update restricts existing coverage of row.Interval from sel's
// version forward to row.Value.
func (s *Store[V]) Update(row store.Row[V], sel VersionSelection) {
	s.inner.Update(store.Row[V]{Interval: s.withHead(row.Interval, sel), Value: row.Value})
}

// Remove deletes validity over region under sel.
func (s *Store[V]) Remove(region box.Box, sel VersionSelection) {
	s.inner.Remove(s.withHead(region, sel))
}

// CurrentVersion returns the façade's current version.
func (s *Store[V]) CurrentVersion() int64 { return s.currentVersion }

// SetCurrentVersion sets the current version, failing with
// ErrVersionOutOfRange if v is outside [initial_version,
// unapprovedStartVersion).
func (s *Store[V]) SetCurrentVersion(v int64, comment string) error {
	if v >= unapprovedStartVersion || v < s.initialVersion {
		return ErrVersionOutOfRange
	}
	s.currentVersion = v
	s.recordVersionMeta(v, comment)
	return nil
}

// IncrementCurrentVersion advances the current version by one, failing
// with ErrVersionsExhausted if doing so would collide with the
// unapproved boundary.
func (s *Store[V]) IncrementCurrentVersion(comment string) error {
	next := s.currentVersion + 1
	if next == unapprovedStartVersion {
		return ErrVersionsExhausted
	}
	s.currentVersion = next
	s.recordVersionMeta(next, comment)
	return nil
}

// ResetToVersion restricts every row's version interval to (-∞, v],
// dropping rows that become empty, then sets current to v.
func (s *Store[V]) ResetToVersion(v int64) {
	bound := versionAxis(interval.To(v))
	for _, r := range s.inner.GetAll() {
		restricted, ok := r.Interval[0].Intersect(bound)
		if !ok {
			s.inner.Remove(r.Interval)
			continue
		}
		if restricted.Equal(r.Interval[0]) {
			continue
		}
		s.inner.Remove(r.Interval)
		newInterval := append(box.Box{restricted}, stripHead(r.Interval)...)
		s.inner.Set(store.Row[V]{Interval: newInterval, Value: r.Value})
	}
	s.currentVersion = v
}

// CollapseVersionHistory keeps only rows valid under sel, rewrites
// their version interval to intervalFrom(initial_version), and resets
// current to initial_version.
func (s *Store[V]) CollapseVersionHistory(sel VersionSelection) {
	boundaryPoint := box.Point[int64](versionDomain, s.boundary(sel))
	rows := s.inner.GetAll()
	for _, r := range rows {
		s.inner.Remove(r.Interval)
	}
	for _, r := range rows {
		if !r.Interval[0].Contains(boundaryPoint) {
			continue
		}
		newInterval := append(box.Box{versionAxis(interval.From(s.initialVersion))}, stripHead(r.Interval)...)
		s.inner.Set(store.Row[V]{Interval: newInterval, Value: r.Value})
	}
	s.currentVersion = s.initialVersion
}

// Approve finds the single unapproved row whose public interval equals
// row.Interval and rewrites it to start at current_version, reporting
// whether such a row was found.
func (s *Store[V]) Approve(row store.Row[V]) bool {
	unapprovedStart := box.Point[int64](versionDomain, unapprovedStartVersion)
	for _, r := range s.inner.GetAll() {
		if !stripHead(r.Interval).Equal(row.Interval) {
			continue
		}
		if !r.Interval[0].StartPoint().Equal(unapprovedStart) {
			continue
		}
		s.inner.Remove(r.Interval)
		newInterval := append(box.Box{versionAxis(interval.From(s.currentVersion))}, stripHead(r.Interval)...)
		s.inner.Set(store.Row[V]{Interval: newInterval, Value: r.Value})
		return true
	}
	return false
}

// ApproveAll approves every unapproved addition whose public interval
// intersects region, then removes (at current_version) the
// region-intersection of every currently-valid row whose version
// interval ends exactly at unapprovedStartVersion-1 (an unapproved
// deletion).
func (s *Store[V]) ApproveAll(region box.Box) {
	unapprovedStart := box.Point[int64](versionDomain, unapprovedStartVersion)
	for _, r := range append([]store.Row[V](nil), s.inner.GetAll()...) {
		public := stripHead(r.Interval)
		if !r.Interval[0].StartPoint().Equal(unapprovedStart) {
			continue
		}
		if !public.Intersects(region) {
			continue
		}
		s.Approve(store.Row[V]{Interval: public, Value: r.Value})
	}

	unapprovedBoundaryPoint := box.Point[int64](versionDomain, unapprovedStartVersion)
	for _, r := range append([]store.Row[V](nil), s.inner.GetAll()...) {
		if !r.Interval[0].SuccessorOfEnd().Equal(unapprovedBoundaryPoint) {
			continue
		}
		public := stripHead(r.Interval)
		overlap, ok := public.Intersect(region)
		if !ok {
			continue
		}
		s.Remove(overlap, Current())
	}
}
