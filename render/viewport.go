package render

import "math"

// Viewport maps field coordinates onto a cols x rows cell grid.
// The whole grid shows the whole field; resizing changes only the scale.
type Viewport struct {
	Cols, Rows              int
	FieldWidth, FieldHeight float64
}

// Cell returns the cell containing field point (x, y), clamped to the grid
func (v Viewport) Cell(x, y float64) (int, int) {
	col := int(math.Floor(x * float64(v.Cols) / v.FieldWidth))
	row := int(math.Floor(y * float64(v.Rows) / v.FieldHeight))
	return clampInt(col, 0, v.Cols-1), clampInt(row, 0, v.Rows-1)
}

// Span returns the inclusive cell range covering the field rectangle
// [left, right] x [top, bottom]; every non-empty rectangle covers at least one cell
func (v Viewport) Span(left, top, right, bottom float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(left * float64(v.Cols) / v.FieldWidth))
	y0 = int(math.Floor(top * float64(v.Rows) / v.FieldHeight))
	x1 = int(math.Ceil(right*float64(v.Cols)/v.FieldWidth)) - 1
	y1 = int(math.Ceil(bottom*float64(v.Rows)/v.FieldHeight)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return clampInt(x0, 0, v.Cols-1), clampInt(y0, 0, v.Rows-1),
		clampInt(x1, 0, v.Cols-1), clampInt(y1, 0, v.Rows-1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
