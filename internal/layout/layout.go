// Package layout holds the fixed ten-node diagram geometry: slot
// positions, the connection pairs between slots, and the line-segment
// math used to draw connectors between rendered nodes.
package layout

import "math"

// Slot is a fixed visual position for a node, expressed the way the web
// UI consumes it (CSS percentage offsets plus a centering transform).
type Slot struct {
	Position  int    `json:"position"`
	Top       string `json:"top"`
	Left      string `json:"left"`
	Transform string `json:"transform"`
}

// Connection joins two slots by position.
type Connection struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Slots is the static two-column diagram layout, keyed by position 1..10.
var Slots = []Slot{
	{1, "0%", "50%", "translateX(-50%)"},
	{2, "12%", "75%", "translateX(-50%)"},
	{3, "12%", "25%", "translateX(-50%)"},
	{4, "28%", "75%", "translateX(-50%)"},
	{5, "28%", "25%", "translateX(-50%)"},
	{6, "42%", "50%", "translateX(-50%)"},
	{7, "50%", "75%", "translateX(-50%)"},
	{8, "50%", "25%", "translateX(-50%)"},
	{9, "65%", "50%", "translateX(-50%)"},
	{10, "80%", "50%", "translateX(-50%)"},
}

// Connections lists the line segments of the diagram.
var Connections = []Connection{
	{1, 2}, {1, 3},
	{2, 3}, {2, 4},
	{3, 5},
	{4, 5}, {4, 6}, {4, 7},
	{5, 6}, {5, 8},
	{7, 8}, {7, 9},
	{8, 9},
	{9, 10},
}

// DefaultTitles are the placeholder names shown for blank nodes,
// indexed by position-1.
var DefaultTitles = []string{
	"ケテル (王冠)",
	"コクマー (知恵)",
	"ビナー (理解)",
	"ケセド (慈悲)",
	"ゲブラー (峻厳)",
	"ティファレト (美)",
	"ネツァク (勝利)",
	"ホド (栄光)",
	"イェソド (基礎)",
	"マルクト (王国)",
}

// DefaultTitle returns the placeholder name for a 1-based position, or ""
// when the position is out of range.
func DefaultTitle(position int) string {
	if position < 1 || position > len(DefaultTitles) {
		return ""
	}
	return DefaultTitles[position-1]
}

// Rect is an element bounding box in container coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Line is one rendered connector: an absolutely positioned segment of the
// given length, rotated AngleDeg degrees around its origin (X, Y).
type Line struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Length   float64 `json:"length"`
	AngleDeg float64 `json:"angle_deg"`
}

// Segment computes the connector between two node bounding boxes: the
// midpoint-to-midpoint vector, shortened by the node radius at both ends.
func Segment(from, to Rect) Line {
	x1, y1 := from.center()
	x2, y2 := to.center()

	angleRad := math.Atan2(y2-y1, x2-x1)
	radius := from.Width / 2

	length := math.Hypot(x2-x1, y2-y1) - radius*2
	if length < 0 {
		length = 0
	}

	return Line{
		X:        x1 + radius*math.Cos(angleRad),
		Y:        y1 + radius*math.Sin(angleRad),
		Length:   length,
		AngleDeg: angleRad * 180 / math.Pi,
	}
}

// Lines computes all connectors for a full set of node bounding boxes
// keyed by position. Pairs with a missing endpoint are skipped, so a
// recompute over the same input always yields the same segments.
func Lines(rects map[int]Rect) []Line {
	lines := make([]Line, 0, len(Connections))
	for _, c := range Connections {
		from, okFrom := rects[c.From]
		to, okTo := rects[c.To]
		if !okFrom || !okTo {
			continue
		}
		lines = append(lines, Segment(from, to))
	}
	return lines
}
