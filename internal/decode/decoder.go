// Package decode converts a raw INF byte stream to text, detecting the
// encoding from the leading bytes. Windows driver INF files are either
// UTF-8 or UTF-16LE with a byte-order mark; nothing else is probed for.
package decode

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// scratchSize is the size of the reusable transform output buffer.
const scratchSize = 4096

// Decoder incrementally decodes chunks of a single byte stream. The
// encoding is decided once, from the stream's leading bytes: a UTF-16LE
// byte-order mark selects UTF-16LE, anything else selects UTF-8.
//
// Decoding never fails. Malformed sequences are replaced with U+FFFD
// rather than reported. A multi-byte code unit split across two chunks is
// carried over and completed by the next call.
//
// A Decoder is single-use and not safe for concurrent use.
type Decoder struct {
	probe   []byte // leading bytes held until the encoding is decided
	decided bool
	utf16   bool
	tr      transform.Transformer
	carry   []byte // unconsumed trailing bytes from the previous chunk
	scratch []byte
}

// NewDecoder returns a Decoder with the encoding still undecided.
func NewDecoder() *Decoder {
	return &Decoder{scratch: make([]byte, scratchSize)}
}

// UTF16 reports whether the stream was identified as UTF-16LE. The result
// is meaningful only once at least two bytes (or the final chunk) have
// been fed.
func (d *Decoder) UTF16() bool {
	return d.decided && d.utf16
}

// Decode feeds the next chunk and returns the text decoded so far,
// possibly empty. final marks the last chunk of the stream; the caller's
// convention for detecting it (typically a short read on a file-backed
// source) is its own concern. After a final chunk any carried bytes are
// flushed, decoding incomplete trailing sequences to U+FFFD.
func (d *Decoder) Decode(p []byte, final bool) string {
	var src []byte
	if !d.decided {
		d.probe = append(d.probe, p...)
		// The BOM is two bytes; with one-byte chunks the decision has
		// to wait for the second call.
		if len(d.probe) < 2 && !final {
			return ""
		}
		d.utf16 = len(d.probe) >= 2 && d.probe[0] == 0xFF && d.probe[1] == 0xFE
		if d.utf16 {
			// UseBOM consumes the mark itself, so the probe bytes are
			// fed through unmodified.
			d.tr = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		} else {
			d.tr = unicode.UTF8.NewDecoder()
		}
		d.decided = true
		src = d.probe
		d.probe = nil
	} else {
		src = append(d.carry, p...)
		d.carry = nil
	}

	var out bytes.Buffer
	for {
		nDst, nSrc, err := d.tr.Transform(d.scratch, src, final)
		out.Write(d.scratch[:nDst])
		src = src[nSrc:]
		switch err {
		case nil:
			if len(src) == 0 {
				return out.String()
			}
		case transform.ErrShortDst:
			// Scratch filled; keep going.
		case transform.ErrShortSrc:
			// A split code unit or rune; hold it for the next chunk.
			d.carry = append(d.carry, src...)
			return out.String()
		default:
			// The x/text UTF-8/UTF-16 decoders substitute rather than
			// fail; any other error would be a transformer bug.
			d.carry = nil
			return out.String()
		}
	}
}
