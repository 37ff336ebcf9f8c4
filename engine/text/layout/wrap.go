package layout

import (
	"unicode/utf8"

	"github.com/npillmayer/textcaret/core/parameters"
	"github.com/npillmayer/textcaret/engine/glyphing"
	"github.com/npillmayer/textcaret/engine/text/model"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// span is a range of characters [start,end).
type span struct {
	start, end model.CharacterIndex
}

// words splits characters [from,to) at UAX#29 word boundaries. Boundaries
// inside a cluster are ignored.
func (b *builder) words(from, to model.CharacterIndex) []span {
	if b.wordSegmenter == nil {
		b.wordSegmenter = segment.NewSegmenter(uax29.NewWordBreaker(1))
	}
	seg := b.wordSegmenter
	seg.Init(glyphing.NewRuneReader(b.lm.Text[from:to]))
	var words []span
	pos := from
	for seg.Next() && pos < to {
		n := model.CharacterIndex(utf8.RuneCountInString(seg.Text()))
		if n == 0 {
			continue
		}
		end := min(pos+n, to)
		if len(words) > 0 && !b.isClusterStart(pos) {
			words[len(words)-1].end = end
		} else {
			words = append(words, span{pos, end})
		}
		pos = end
	}
	if pos < to {
		words = append(words, span{pos, to})
	}
	return words
}

func (b *builder) width(s span) float32 {
	var w float32
	for c := s.start; c < s.end; c++ {
		w += b.advances[c]
	}
	return w
}

func (b *builder) isWhiteSpace(s span) bool {
	for _, r := range b.lm.Text[s.start:s.end] {
		if !model.IsWhiteSpace(r) {
			return false
		}
	}
	return true
}

// breakLines breaks a paragraph into lines. With a wrap width of 0 the
// paragraph is a single line. Otherwise words are set greedily; white space
// may overflow the wrap width, words too long for a line are broken between
// clusters. The paragraph's separator belongs to its last line.
func (b *builder) breakLines(p paragraph) []span {
	wrap := b.regs.Px(parameters.P_WRAPWIDTH)
	if wrap <= 0 || p.body == p.start {
		return []span{{p.start, p.end}}
	}
	var lines []span
	start := p.start
	var width float32
	for _, w := range b.words(p.start, p.body) {
		ww := b.width(w)
		if b.isWhiteSpace(w) || width+ww <= wrap {
			width += ww
			continue
		}
		if w.start > start {
			lines = append(lines, span{start, w.start})
			start, width = w.start, 0
		}
		if ww <= wrap {
			width = ww
			continue
		}
		for c := w.start; c < w.end; c++ {
			cw := b.advances[c]
			if width+cw > wrap && c > start && b.isClusterStart(c) {
				lines = append(lines, span{start, c})
				start, width = c, 0
			}
			width += cw
		}
	}
	lines = append(lines, span{start, p.end})
	tracer().Debugf("paragraph [%d,%d) broken into %d lines", p.start, p.end, len(lines))
	return lines
}
