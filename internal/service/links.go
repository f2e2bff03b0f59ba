package service

import (
	"regexp"
	"strings"

	"github.com/insightai/site/internal/model"
)

// linkPattern matches [label](url); neither part may be empty
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// ParseLinks splits resolved legal text into plain text and hyperlink segments.
// An empty string yields no segments. Adjacent links produce consecutive link
// segments with nothing between them. Anything that does not form a complete
// [label](url) stays in the surrounding text.
func ParseLinks(s string) []model.LinkSegment {
	if s == "" {
		return nil
	}

	matches := linkPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return []model.LinkSegment{model.TextSegment(s)}
	}

	segments := make([]model.LinkSegment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, model.TextSegment(s[last:m[0]]))
		}
		segments = append(segments, model.LinkTo(s[m[2]:m[3]], s[m[4]:m[5]]))
		last = m[1]
	}
	if last < len(s) {
		segments = append(segments, model.TextSegment(s[last:]))
	}
	return segments
}

// JoinSegments rebuilds the source text of a parsed segment list
func JoinSegments(segments []model.LinkSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Raw())
	}
	return b.String()
}
