// Package lines reassembles complete logical lines from a stream of
// decoded text chunks. Chunk boundaries carry no meaning: a line
// terminator, like any character sequence, may arrive split across
// chunks.
package lines

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLineTerminator indicates a bare CR that was not immediately
// followed by LF. CRLF and bare LF are the only accepted terminators.
var ErrLineTerminator = errors.New("invalid line terminator")

// Assembler buffers decoded text until a terminator completes a logical
// line. Consecutive terminators collapse: empty lines are never emitted.
// Trailing text without a terminator stays buffered until Finalize.
type Assembler struct {
	partial   strings.Builder
	pendingCR bool
	complete  []string
}

// NewAssembler returns an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Feed appends text and scans it once for line terminators. A CR at the
// end of a chunk is held as pending state so that a CRLF split across
// two chunks assembles the same as an unsplit one.
func (a *Assembler) Feed(text string) error {
	for _, c := range text {
		if a.pendingCR {
			if c != '\n' {
				return fmt.Errorf("%w: \\r not followed by \\n", ErrLineTerminator)
			}
			a.pendingCR = false
			a.endLine()
			continue
		}
		switch c {
		case '\r':
			a.pendingCR = true
		case '\n':
			a.endLine()
		default:
			a.partial.WriteRune(c)
		}
	}
	return nil
}

// TakeLines drains and returns the lines completed so far, in arrival
// order. Calling it again without an intervening Feed returns nil.
func (a *Assembler) TakeLines() []string {
	lines := a.complete
	a.complete = nil
	return lines
}

// Finalize flushes buffered unterminated text as one final line, so a
// file missing its trailing terminator still yields its last line. A CR
// still pending at end of stream was never followed by LF and is
// rejected.
func (a *Assembler) Finalize() error {
	if a.pendingCR {
		return fmt.Errorf("%w: \\r at end of stream", ErrLineTerminator)
	}
	a.endLine()
	return nil
}

func (a *Assembler) endLine() {
	if a.partial.Len() == 0 {
		return
	}
	a.complete = append(a.complete, a.partial.String())
	a.partial.Reset()
}
