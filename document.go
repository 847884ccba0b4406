package wininf

// Value is the parsed content of a directive. The parser only ever
// produces Raw values; List and CommaSeparated are reserved for a future
// finer-grained value typing and are never populated here.
type Value interface {
	isValue()
}

// Raw holds the exact parsed text of a value, untouched. %Token%
// placeholders are not resolved; substitution against [Strings] is the
// caller's concern.
type Raw string

// List is an ordered sequence of strings. Reserved; never produced by
// the parser.
type List []string

// CommaSeparated is an ordered sequence of comma-delimited fields.
// Reserved; never produced by the parser.
type CommaSeparated []string

func (Raw) isValue()            {}
func (List) isValue()           {}
func (CommaSeparated) isValue() {}

// Entry is one directive within a section: either a key=value pair or a
// standalone value line.
type Entry interface {
	isEntry()
}

// KeyValue is a key=value directive. Value is never nil when produced by
// the parser.
type KeyValue struct {
	Key   string
	Value Value
}

// OnlyValue is an unkeyed directive, used for list-style sections such
// as copy-file lists.
type OnlyValue struct {
	Value Value
}

func (KeyValue) isEntry()  {}
func (OnlyValue) isEntry() {}

// Section is a named block of ordered directives. Entries appear in
// exact file order; directives are positional, so the order is never
// changed and duplicates are never collapsed.
type Section struct {
	Name    string
	Entries []Entry
}

// Document maps section names to their sections. It is built over a
// single parse call and is plain data afterwards, safe for concurrent
// readers. Section order is not preserved across the map; entry order
// within each section is.
//
// Re-declaring a section name discards the entries accumulated under the
// earlier declaration. Whether same-named sections should merge instead
// is an open question upstream; overwrite is the documented behavior
// here.
type Document struct {
	Sections map[string]*Section
}

func newDocument() *Document {
	return &Document{Sections: make(map[string]*Section)}
}

// Strings returns the raw key/value pairs of the [Strings] section, or
// nil if the document has none. Values are returned exactly as parsed;
// no %Token% substitution is performed.
func (d *Document) Strings() map[string]string {
	sec, ok := d.Sections["Strings"]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(sec.Entries))
	for _, e := range sec.Entries {
		kv, ok := e.(KeyValue)
		if !ok {
			continue
		}
		if raw, ok := kv.Value.(Raw); ok {
			out[kv.Key] = string(raw)
		}
	}
	return out
}
