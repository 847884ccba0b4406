package wininf

import (
	"errors"
	"io"
	"io/fs"

	"github.com/dshills/wininf/internal/decode"
	"github.com/dshills/wininf/internal/lines"
)

// ParseFile parses the INF file at path and returns its document. The
// file's existence is checked before the read path is touched, so a
// missing file reports ErrFileNotFound rather than an open failure; the
// check and the open are not atomic, which is benign for install media.
// The handle is closed on every exit path. Any failure discards the
// in-progress document: there is no partial-result contract.
func ParseFile(path string, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)

	if _, err := cfg.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ParseError{Stage: StageOpen, Path: path, Err: ErrFileNotFound}
		}
		return nil, &ParseError{Stage: StageOpen, Path: path, Err: err}
	}

	f, err := cfg.fs.Open(path)
	if err != nil {
		return nil, &ParseError{Stage: StageOpen, Path: path, Err: err}
	}
	defer f.Close()

	doc, err := parse(f, cfg)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse parses INF text from r. Note the end-of-stream convention below:
// a read shorter than the buffer is treated as the last chunk. That
// heuristic is reliable for file-backed sources, which is what INF
// parsing deals in; readers that return short counts mid-stream should
// be wrapped in a bufio.Reader sized to the parse buffer, or parsed via
// ParseFile.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	return parse(r, newConfig(opts))
}

// parse runs the read loop, wiring Decoder -> LineAssembler ->
// SectionParser. Completed lines are drained into the grammar after
// every chunk, not only at end of stream, so memory stays bounded for
// large files.
func parse(r io.Reader, cfg *config) (*Document, error) {
	dec := decode.NewDecoder()
	asm := lines.NewAssembler()
	doc := newDocument()
	gram := newSectionParser(doc, cfg.log)

	buf := make([]byte, cfg.bufferSize)
	for final := false; !final; {
		n, err := r.Read(buf)
		if err != nil && err != io.EOF {
			return nil, &ParseError{Stage: StageRead, Err: err}
		}
		// Short read means end of stream; see Parse.
		final = n < len(buf) || err == io.EOF
		cfg.log.Debug("chunk read", "bytes", n, "final", final)

		if err := asm.Feed(dec.Decode(buf[:n], final)); err != nil {
			return nil, &ParseError{Stage: StageLine, Err: err}
		}
		if err := drain(asm, gram); err != nil {
			return nil, err
		}
	}

	cfg.log.Debug("stream decoded", "utf16", dec.UTF16())

	if err := asm.Finalize(); err != nil {
		return nil, &ParseError{Stage: StageLine, Err: err}
	}
	if err := drain(asm, gram); err != nil {
		return nil, err
	}
	return doc, nil
}

func drain(asm *lines.Assembler, gram *sectionParser) error {
	for _, line := range asm.TakeLines() {
		if err := gram.parseLine(line); err != nil {
			return &ParseError{Stage: StageGrammar, Err: err}
		}
	}
	return nil
}
