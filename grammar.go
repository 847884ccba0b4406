package wininf

import (
	"fmt"
	"log/slog"
	"strings"
)

// contKind tags the continuation slot. Quoted and unquoted continuations
// differ in whether the backslash survives as literal content, and the
// tag keeps the two rules from bleeding into each other.
type contKind uint8

const (
	contNone contKind = iota
	contQuoted
	contUnquoted
)

// continuation is the pending half of a value whose line ended with a
// continuation backslash. The zero value means no continuation pending.
type continuation struct {
	kind    contKind
	key     string
	partial string
}

// sectionParser is the grammar engine. It consumes one trimmed logical
// line at a time and mutates the document. State is the current section
// name ("" until the first header) plus the continuation slot; entry
// lines seen before any header are dropped, so a pending continuation
// with no open section cannot occur.
type sectionParser struct {
	doc     *Document
	section string
	cont    continuation
	log     *slog.Logger
}

func newSectionParser(doc *Document, log *slog.Logger) *sectionParser {
	return &sectionParser{doc: doc, log: log}
}

// parseLine applies the transition rules, in order: comment, section
// header, then entry handling while a section is open.
func (p *sectionParser) parseLine(raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, ";") {
		return nil
	}

	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		name := line[1 : len(line)-1]
		if err := validateSectionName(name); err != nil {
			return &GrammarError{Section: name, Err: err}
		}
		// A repeated header starts over: earlier entries under the same
		// name are discarded, not merged.
		p.doc.Sections[name] = &Section{Name: name}
		p.section = name
		p.cont = continuation{}
		p.log.Debug("section opened", "name", name)
		return nil
	}

	if p.section == "" {
		return nil
	}

	if key, value, ok := strings.Cut(line, "="); ok {
		return p.parseKeyValue(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return p.parseBare(line)
}

func (p *sectionParser) parseKeyValue(key, value string) error {
	if strings.HasPrefix(value, `"`) {
		return p.parseQuoted(key, value)
	}

	// A trailing comment is not part of the value.
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}

	if strings.HasSuffix(value, `\`) {
		// Windows collapses a run of trailing backslashes: only the
		// content before the first backslash of the run continues.
		i := len(value)
		for i > 0 && value[i-1] == '\\' {
			i--
		}
		prefix := value[:i]
		if prefix == "" {
			p.cont = continuation{}
			return nil
		}
		p.cont = continuation{kind: contUnquoted, key: key, partial: prefix}
		return nil
	}

	p.cont = continuation{}
	p.commit(KeyValue{Key: key, Value: Raw(value)})
	return nil
}

// parseQuoted handles a value opening with a double quote. The text
// strictly between the quotes is the candidate value; what follows the
// closing quote decides between commit, continuation, and failure.
func (p *sectionParser) parseQuoted(key, value string) error {
	closing := strings.Index(value[1:], `"`)
	if closing < 0 {
		return &GrammarError{Section: p.section, Key: key, Err: ErrQuotedValue}
	}
	closing++ // index of the closing quote in value

	inner := value[1:closing]
	rest := strings.TrimSpace(value[closing+1:])
	switch {
	case rest == "" || strings.HasPrefix(rest, ";"):
		p.cont = continuation{}
		p.commit(KeyValue{Key: key, Value: Raw(inner)})
	case rest == `\`:
		// The backslash stays in the value as literal content.
		p.cont = continuation{kind: contQuoted, key: key, partial: inner + `\`}
	default:
		return &GrammarError{
			Section: p.section,
			Key:     key,
			Err:     fmt.Errorf("%w: %q", ErrContinuation, rest),
		}
	}
	return nil
}

// parseBare handles a line with no '='. It either resolves a pending
// continuation or commits as a standalone value. Exactly one
// continuation hop is honored: once resolved, the next bare line is a
// standalone value again.
func (p *sectionParser) parseBare(line string) error {
	if p.cont.kind != contNone {
		entry := KeyValue{Key: p.cont.key, Value: Raw(p.cont.partial + line)}
		p.cont = continuation{}
		p.commit(entry)
		return nil
	}
	p.commit(OnlyValue{Value: Raw(line)})
	return nil
}

func (p *sectionParser) commit(e Entry) {
	sec := p.doc.Sections[p.section]
	sec.Entries = append(sec.Entries, e)
}

// validateSectionName checks the text between the brackets. Control
// characters other than CR and LF are not rejected in unquoted names;
// that matches the upstream validator and is deliberately not widened.
func validateSectionName(name string) error {
	if strings.HasPrefix(name, `"`) {
		if !strings.HasSuffix(name, `"`) {
			return fmt.Errorf("%w: quoted name missing closing quote", ErrSectionName)
		}
		if strings.Contains(name, "]") {
			return fmt.Errorf("%w: quoted name contains ']'", ErrSectionName)
		}
		return nil
	}
	if strings.HasSuffix(name, `\`) {
		return fmt.Errorf("%w: name ends with '\\'", ErrSectionName)
	}
	if strings.Count(name, "%")%2 == 1 {
		return fmt.Errorf("%w: unpaired %% in name", ErrSectionName)
	}
	if strings.ContainsAny(name, "\r\n\" \t[];") {
		return fmt.Errorf("%w: name contains a forbidden character", ErrSectionName)
	}
	return nil
}
