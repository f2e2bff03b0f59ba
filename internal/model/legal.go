package model

import "strings"

// LegalSection is one titled block of a legal document
type LegalSection struct {
	Title   string
	Content string
	Items   []string
}

// Paragraphs splits the section content on blank lines
func (s LegalSection) Paragraphs() []string {
	if s.Content == "" {
		return nil
	}
	return strings.Split(s.Content, "\n\n")
}

// LegalDocument is a resolved legal page ready for display
type LegalDocument struct {
	Slug            LegalPageSlug
	Date            string
	MetaTitle       string
	MetaDescription string
	Sections        []LegalSection
}

// SegmentKind tags a LinkSegment
type SegmentKind string

const (
	SegmentText SegmentKind = "text"
	SegmentLink SegmentKind = "link"
)

// LinkSegment is either a run of plain text or an inline hyperlink.
// Text segments use Value; link segments use Label and URL.
type LinkSegment struct {
	Kind  SegmentKind
	Value string
	Label string
	URL   string
}

// TextSegment creates a plain text segment
func TextSegment(value string) LinkSegment {
	return LinkSegment{Kind: SegmentText, Value: value}
}

// LinkTo creates a hyperlink segment
func LinkTo(label, url string) LinkSegment {
	return LinkSegment{Kind: SegmentLink, Label: label, URL: url}
}

// IsLink reports whether the segment is a hyperlink
func (s LinkSegment) IsLink() bool {
	return s.Kind == SegmentLink
}

// Raw returns the source text the segment was parsed from
func (s LinkSegment) Raw() string {
	if s.IsLink() {
		return "[" + s.Label + "](" + s.URL + ")"
	}
	return s.Value
}
