// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// locate reports the line and column of the given byte offset in src.
// Offsets past the end of src are clamped to the end.
func locate(src mem.RO, offset int) LineCol {
	if offset > src.Len() {
		offset = src.Len()
	}
	lc := LineCol{Line: 1}
	for {
		i := mem.IndexByte(src.SliceTo(offset), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		src = src.SliceFrom(i + 1)
		offset -= i + 1
	}
	lc.Column = offset
	return lc
}

// locateSpan reports the complete location of span in src.
func locateSpan(src mem.RO, span Span) Location {
	return Location{
		Span:  span,
		First: locate(src, span.Pos),
		Last:  locate(src, span.End),
	}
}
