package entities

import "strings"

// Segment is one caption unit returned by the transcript provider
type Segment struct {
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Transcript is the ordered list of segments for a single video
type Transcript []Segment

// IsEmpty reports whether the transcript has no segments
func (t Transcript) IsEmpty() bool {
	return len(t) == 0
}

// Text joins the segment texts with single spaces, preserving order.
// An empty transcript yields an empty string.
func (t Transcript) Text() string {
	texts := make([]string, len(t))
	for i, seg := range t {
		texts[i] = seg.Text
	}
	return strings.Join(texts, " ")
}
