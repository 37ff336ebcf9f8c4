package cursor

import "github.com/npillmayer/textcaret/engine/text/model"

// ClosestLine finds the line closest to a vertical position.
//
// It returns the first line whose bottom lies below visualY, and true.
// For positions above the text it returns line 0, for positions below the
// text the last line, both with false. Without lines it returns 0, false.
func ClosestLine(lines []model.LineRun, visualY float32) (model.LineIndex, bool) {
	if visualY < 0 {
		return 0, false
	}
	var total float32
	for i, line := range lines {
		total += line.Height(i == len(lines)-1)
		if visualY < total {
			return model.LineIndex(i), true
		}
	}
	if len(lines) == 0 {
		return 0, false
	}
	return model.LineIndex(len(lines) - 1), false
}

// LineOffset returns the sum of the heights of all lines above line lineIndex.
func LineOffset(lines []model.LineRun, lineIndex model.LineIndex) float32 {
	var offset float32
	for i := 0; i < int(lineIndex) && i < len(lines); i++ {
		offset += lines[i].Height(i == len(lines)-1)
	}
	return offset
}
