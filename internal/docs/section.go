package docs

import (
	"regexp"
	"strings"
)

// Headings are 1-4 hashes followed by whitespace and text. Deeper levels
// are treated as plain content.
var headingRegex = regexp.MustCompile(`^(#{1,4})\s+(.+)$`)

// TruncationMarker is appended when a section or file is cut at its line cap.
const TruncationMarker = "... (truncated)"

// Section is one header-delimited span of a document. Start is the heading
// line itself; End is exclusive, bounded by the first later heading whose
// level is less than or equal to Level, or the end of the document.
type Section struct {
	Level int
	Title string
	Slug  string
	Start int
	End   int
}

// ParseSections scans the document's lines and returns every section in
// order. Lines before the first heading belong to no section.
func ParseSections(lines []string) []Section {
	var sections []Section

	for i, line := range lines {
		matches := headingRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		level := len(matches[1])
		title := strings.TrimSpace(matches[2])

		// Close every open section this heading terminates.
		for j := range sections {
			if sections[j].End == 0 && sections[j].Level >= level {
				sections[j].End = i
			}
		}

		sections = append(sections, Section{
			Level: level,
			Title: title,
			Slug:  Slugify(title),
			Start: i,
		})
	}

	for j := range sections {
		if sections[j].End == 0 {
			sections[j].End = len(lines)
		}
	}

	return sections
}

// Slugify derives the anchor slug from heading text: lowercase, spaces to
// hyphens, everything outside [a-z0-9-] stripped.
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	lowered = strings.ReplaceAll(lowered, " ", "-")

	var sb strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FindSection locates the section matching the anchor: exact slug match, or
// a case-insensitive title substring match with the anchor's hyphens turned
// back into spaces. The first match in document order wins.
func FindSection(sections []Section, anchor string) (Section, bool) {
	for _, sec := range sections {
		if sec.Slug == anchor {
			return sec, true
		}
	}

	// Fallback: "error-handling" matches a heading containing "error handling".
	loose := strings.ToLower(strings.ReplaceAll(anchor, "-", " "))
	for _, sec := range sections {
		if strings.Contains(strings.ToLower(sec.Title), loose) {
			return sec, true
		}
	}

	return Section{}, false
}

// Extract returns the lines of the section identified by anchor, capped at
// maxLines with a trailing truncation marker when cut short. A missing
// anchor returns found=false, never an error; the caller decides the
// fallback policy.
func Extract(lines []string, anchor string, maxLines int) ([]string, bool) {
	sec, ok := FindSection(ParseSections(lines), anchor)
	if !ok {
		return nil, false
	}

	span := lines[sec.Start:sec.End]
	if maxLines > 0 && len(span) > maxLines {
		out := make([]string, 0, maxLines+1)
		out = append(out, span[:maxLines]...)
		out = append(out, TruncationMarker)
		return out, true
	}

	// Copy so the caller cannot alias the document's backing array.
	out := make([]string, len(span))
	copy(out, span)
	return out, true
}

// Head returns the first maxLines lines of the document with a truncation
// marker when the document is longer. Used for whole-file caps and the
// section-not-found summary fallback.
func Head(lines []string, maxLines int) []string {
	if maxLines <= 0 || len(lines) <= maxLines {
		out := make([]string, len(lines))
		copy(out, lines)
		return out
	}
	out := make([]string, 0, maxLines+1)
	out = append(out, lines[:maxLines]...)
	out = append(out, TruncationMarker)
	return out
}
