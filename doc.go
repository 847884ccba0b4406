// Package wininf parses Windows driver/software installation directive
// files (INF) into an in-memory document of named sections holding
// ordered entries.
//
// Parsing is a streaming, single-pass pipeline:
//
//	bytes -> Decoder -> text -> LineAssembler -> lines -> section grammar -> Document
//
// The encoding is unknown until the stream's leading bytes are seen: a
// UTF-16LE byte-order mark selects UTF-16LE, anything else selects
// UTF-8. Input arrives in fixed-size chunks that may split multi-byte
// code units and line terminators; the pipeline carries that partial
// state across chunks, so chunking never changes the result.
//
// Basic usage:
//
//	doc, err := wininf.ParseFile("AudioCodec.inf")
//	if err != nil {
//	    return err
//	}
//	for _, e := range doc.Sections["Version"].Entries {
//	    if kv, ok := e.(wininf.KeyValue); ok {
//	        fmt.Println(kv.Key, kv.Value)
//	    }
//	}
//
// Grammar notes:
//
//   - Comments start with ';' and run to end of line.
//   - CRLF and bare LF terminate lines; a lone CR is rejected.
//   - A quoted value whose closing quote is followed by a single
//     backslash, or an unquoted value ending in a backslash, continues
//     on the next line. Exactly one continuation hop is honored.
//   - Re-declaring a section name overwrites the earlier section.
//   - Values are returned raw; %Token% placeholders are not resolved.
//
// Each parse call owns its own state; nothing is shared across calls.
// All errors are fatal to the parse: the first failure aborts and no
// partial document is returned.
package wininf
