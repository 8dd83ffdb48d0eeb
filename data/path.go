package data

import "strings"

// Separator splits path strings into segments.
const Separator = "/"

// Path is an immutable, structured path into a data model. A path is a
// sequence of non-empty segments plus an absolute flag; segments never
// contain the separator.
type Path struct {
	segments []string
	absolute bool
}

// ParsePath splits s on "/" into a Path, discarding empty segments. The
// result is absolute iff s has a leading "/".
func ParsePath(s string) Path {
	parts := strings.Split(s, Separator)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return Path{
		segments: segments,
		absolute: strings.HasPrefix(s, Separator),
	}
}

// NewPath builds a path from segments. Empty segments are discarded.
func NewPath(absolute bool, segments ...string) Path {
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return Path{segments: kept, absolute: absolute}
}

// RootPath returns the empty absolute path.
func RootPath() Path {
	return Path{absolute: true}
}

// IsAbsolute reports whether the path had a leading separator.
func (p Path) IsAbsolute() bool { return p.absolute }

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return len(p.segments) == 0 }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Join composes p with other. An absolute other replaces p entirely, the
// way a rooted path does on a filesystem; otherwise the result appends
// other's segments to p's and keeps p's absoluteness.
func (p Path) Join(other Path) Path {
	if other.absolute {
		return other
	}
	segments := make([]string, 0, len(p.segments)+len(other.segments))
	segments = append(segments, p.segments...)
	segments = append(segments, other.segments...)
	return Path{segments: segments, absolute: p.absolute}
}

// StartsWith reports whether other's segments are a prefix of p's. The
// absolute flag does not participate; callers compare like-typed,
// normalized-absolute paths.
func (p Path) StartsWith(other Path) bool {
	if len(other.segments) > len(p.segments) {
		return false
	}
	for i, s := range other.segments {
		if p.segments[i] != s {
			return false
		}
	}
	return true
}

// Basename returns the last segment, or "" for an empty path.
func (p Path) Basename() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Dirname returns the path with its last segment dropped. It is a no-op
// on an empty path.
func (p Path) Dirname() Path {
	if len(p.segments) == 0 {
		return p
	}
	return Path{segments: p.segments[:len(p.segments)-1], absolute: p.absolute}
}

// Equal reports whether two paths have identical segments and the same
// absolute flag.
func (p Path) Equal(other Path) bool {
	if p.absolute != other.absolute || len(p.segments) != len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		if other.segments[i] != s {
			return false
		}
	}
	return true
}

// String renders the path back to its string form, reinserting the
// leading separator iff the path is absolute.
func (p Path) String() string {
	joined := strings.Join(p.segments, Separator)
	if p.absolute {
		return Separator + joined
	}
	return joined
}

// Key returns a string suitable for keying a map by (segments, absolute).
// Distinct paths render to distinct keys.
func (p Path) Key() string {
	return p.String()
}
