// Package spath provides Path, a delimiter-independent path made of string segments.
//
// A Path is parsed from or rendered to text with any delimiter and supports structural
// queries such as IsChildOf, RelativeTo and CommonParent. It never touches the filesystem.
package spath

import (
	"iter"
	"os"
	"slices"
	"strings"
)

// Path represents a path as an ordered sequence of string segments.
// Segments are joined with a delimiter only when the path is rendered, so the same Path
// can be written with "/", "\\", "." or any other string.
//
// The zero Path is an empty path whose delimiter is the host separator.
// Assigning a Path shares its segments; use Clone to obtain an independent copy.
type Path struct {
	segments     []string
	delimiter    string
	hasDelimiter bool
}

// Separator is the default delimiter, the directory separator of the host platform.
func Separator() string {
	return string(os.PathSeparator)
}

func resolveDelimiter(delimiter []string) string {
	if len(delimiter) > 0 {
		return delimiter[0]
	}
	return Separator()
}

// Parse splits text on delimiter and returns the resulting path.
// If delimiter is omitted, the host separator is used.
// Empty segments are kept, so "a//b" split on "/" yields "a", "" and "b".
// An empty delimiter does not split text.
func Parse(text string, delimiter ...string) Path {
	d := resolveDelimiter(delimiter)
	var segments []string
	if d == "" {
		segments = []string{text}
	} else {
		segments = strings.Split(text, d)
	}
	return Path{segments: segments, delimiter: d, hasDelimiter: true}
}

// New returns a path holding a copy of segments.
// If delimiter is omitted, the host separator is used.
func New(segments []string, delimiter ...string) Path {
	return Path{segments: slices.Clone(segments), delimiter: resolveDelimiter(delimiter), hasDelimiter: true}
}

// Of returns a path of the given segments with the host separator as delimiter.
func Of(segments ...string) Path {
	return New(segments)
}

// Clone returns a copy of p that does not share segments with p.
func (p Path) Clone() Path {
	return p.derive(slices.Clone(p.segments))
}

func (p Path) derive(segments []string) Path {
	return Path{segments: segments, delimiter: p.delimiter, hasDelimiter: p.hasDelimiter}
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Delimiter returns the delimiter used by String.
func (p Path) Delimiter() string {
	if !p.hasDelimiter {
		return Separator()
	}
	return p.delimiter
}

// Get returns the i-th segment.
func (p Path) Get(i int) (string, error) {
	if i < 0 || i >= len(p.segments) {
		return "", newIndexOutOfRangeError(i, len(p.segments))
	}
	return p.segments[i], nil
}

// Set replaces the i-th segment in place.
// Paths assigned from p share the replacement.
func (p *Path) Set(i int, value string) error {
	if i < 0 || i >= len(p.segments) {
		return newIndexOutOfRangeError(i, len(p.segments))
	}
	p.segments[i] = value
	return nil
}

// String joins the segments with the delimiter of p.
func (p Path) String() string {
	return p.Render(p.Delimiter())
}

// Render joins the segments with delimiter.
func (p Path) Render(delimiter string) string {
	return strings.Join(p.segments, delimiter)
}

// WithDelimiter returns a copy of p that renders with delimiter.
func (p Path) WithDelimiter(delimiter string) Path {
	return New(p.segments, delimiter)
}

// Concat returns a path consisting of the segments of p followed by the segments of other.
// The result keeps the delimiter of p.
func (p Path) Concat(other Path) Path {
	return p.Append(other.segments...)
}

// Append returns a path consisting of the segments of p followed by segments.
func (p Path) Append(segments ...string) Path {
	return p.derive(slices.Concat(p.segments, segments))
}

// Equal reports whether p and other have the same segments. Delimiters are not compared.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// IsChildOf reports whether ancestor is a proper prefix of p.
// Every non-empty path is a child of the empty path, and no path is a child of itself.
func (p Path) IsChildOf(ancestor Path) bool {
	if len(ancestor.segments) >= len(p.segments) {
		return false
	}
	return slices.Equal(p.segments[:len(ancestor.segments)], ancestor.segments)
}

// Compare returns -1 if p is a child of other, 0 if p equals other, and +1 otherwise.
//
// Compare is not a total order: a parent compared with its child also returns +1.
func (p Path) Compare(other Path) int {
	switch {
	case p.IsChildOf(other):
		return -1
	case p.Equal(other):
		return 0
	default:
		return 1
	}
}

// RelativeTo returns p without the leading segments it shares with base.
// Only the leading run up to the first mismatch is removed, so the result is a true relative path
// only when base is a prefix of p.
func (p Path) RelativeTo(base Path) Path {
	return p.derive(slices.Clone(p.segments[commonPrefixLen(p.segments, base.segments):]))
}

// CommonParent returns the segments of other that are equal to the segment of p at the same index.
// Matching indices are collected across the whole overlap rather than only the leading run;
// CommonParent of a/x/c and a/b/c is a/c.
func (p Path) CommonParent(other Path) Path {
	n := min(len(p.segments), len(other.segments))
	segments := make([]string, 0, n)
	for i := range n {
		if p.segments[i] == other.segments[i] {
			segments = append(segments, other.segments[i])
		}
	}
	return p.derive(segments)
}

// All returns an iterator over the segments of p.
// The iterator reads a snapshot taken when All is called, so later calls to Set do not affect it.
func (p Path) All() iter.Seq[string] {
	return slices.Values(slices.Clone(p.segments))
}

// Segments returns a copy of the segments of p.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

func commonPrefixLen(a, b []string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
