// Package testkit holds shared invariant checkers used by scanner, template
// and fuzz tests.
package testkit

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"stencil/internal/bytescan"
	"stencil/internal/template"
	"stencil/internal/token"
)

// CheckSpanInvariants runs the span-sequence invariants on a parsed template:
//  1. spans are totally ordered and contiguous: the first starts at offset 0,
//     span[i] ends exactly where span[i+1] begins, the last ends at the end
//     of the buffer (full coverage, no gaps, no overlaps)
//  2. every Raw view aliases the covered byte range exactly
//  3. Plain spans are non-empty and never start with a delimiter token
//  4. tag bodies carry no leading/trailing ASCII whitespace
//  5. every span's Line equals 1 plus the '\n' count before its first byte
func CheckSpanInvariants(t *template.ParsedTemplate) error {
	if t == nil {
		return fmt.Errorf("nil template")
	}
	content := t.File().Content
	lenContent, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	next := uint32(0)
	for i, sp := range t.Spans() {
		if sp.Span.File != t.File().ID {
			return fmt.Errorf("span %d points to different file id: got=%d want=%d",
				i, sp.Span.File, t.File().ID)
		}
		// 1) contiguity
		if sp.Span.Start != next {
			return fmt.Errorf("span %d starts at %d, expected %d (gap or overlap)",
				i, sp.Span.Start, next)
		}
		if sp.Span.End < sp.Span.Start || sp.Span.End > lenContent {
			return fmt.Errorf("span %d range %v out of bounds (len %d)", i, sp.Span, lenContent)
		}
		next = sp.Span.End

		// 2) Raw matches the covered range
		if !bytes.Equal(sp.Raw, content[sp.Span.Start:sp.Span.End]) {
			return fmt.Errorf("span %d Raw does not match covered range %v", i, sp.Span)
		}

		switch {
		case sp.Kind == token.Plain:
			// 3) plain spans non-empty, never delimiter-initial
			if sp.Span.Empty() {
				return fmt.Errorf("span %d: empty plain span", i)
			}
			for _, d := range token.Delimiters {
				if bytes.HasPrefix(sp.Raw, d) {
					return fmt.Errorf("span %d: plain span starts with delimiter %q", i, d)
				}
			}
		case sp.Kind.IsTag():
			// 4) trim idempotence
			if len(sp.Body) > 0 {
				if token.IsASCIISpace(sp.Body[0]) || token.IsASCIISpace(sp.Body[len(sp.Body)-1]) {
					return fmt.Errorf("span %d: tag body %q is not trimmed", i, sp.Body)
				}
			}
			if !bytes.HasPrefix(sp.Raw, sp.Kind.Opener()) || !bytes.HasSuffix(sp.Raw, sp.Kind.Closer()) {
				return fmt.Errorf("span %d: tag raw %q not bounded by %q %q",
					i, sp.Raw, sp.Kind.Opener(), sp.Kind.Closer())
			}
		default:
			return fmt.Errorf("span %d: unexpected kind %s in sequence", i, sp.Kind)
		}

		// 5) line accounting
		wantLine := 1 + bytescan.Count(content[:sp.Span.Start])
		if int(sp.Line) != wantLine {
			return fmt.Errorf("span %d: line %d, want %d", i, sp.Line, wantLine)
		}
	}

	if next != lenContent {
		return fmt.Errorf("spans cover %d bytes of %d", next, lenContent)
	}
	return nil
}
