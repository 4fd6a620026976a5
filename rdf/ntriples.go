package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteNTriples serializes triples to w in N-Triples format, one
// statement per line, in the given order.
func WriteNTriples(w io.Writer, triples []Triple) error {
	bw := bufio.NewWriter(w)
	for _, t := range triples {
		if _, err := bw.WriteString(formatTermNT(t.Subject)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, " <%s> ", t.Predicate); err != nil {
			return err
		}
		if _, err := bw.WriteString(formatTermNT(t.Object)); err != nil {
			return err
		}
		if _, err := bw.WriteString(" .\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// MarshalNTriples serializes triples to an N-Triples string.
func MarshalNTriples(triples []Triple) string {
	var sb strings.Builder
	_ = WriteNTriples(&sb, triples)
	return sb.String()
}

func formatTermNT(t Term) string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		lit := `"` + escapeNT(t.Value) + `"`
		if t.Lang != "" {
			return lit + "@" + t.Lang
		}
		if t.Datatype != "" && t.Datatype != XSDString {
			return lit + "^^<" + t.Datatype + ">"
		}
		return lit
	}
}

func escapeNT(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ParseNTriples reads N-Triples statements from r. Blank lines and
// comment lines starting with # are skipped. Parsing is strict about
// term syntax but tolerant of surrounding whitespace.
func ParseNTriples(r io.Reader) ([]Triple, error) {
	var triples []Triple
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		triple, err := parseStatement(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		triples = append(triples, triple)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return triples, nil
}

func parseStatement(line string) (Triple, error) {
	p := &ntParser{input: line}

	subject, err := p.term()
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	if !subject.IsResource() {
		return Triple{}, fmt.Errorf("subject must be an IRI or blank node")
	}

	p.skipSpace()
	predicate, err := p.term()
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}
	if !predicate.IsIRI() {
		return Triple{}, fmt.Errorf("predicate must be an IRI")
	}

	p.skipSpace()
	object, err := p.term()
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}

	p.skipSpace()
	if !strings.HasPrefix(p.rest(), ".") {
		return Triple{}, fmt.Errorf("missing terminating dot")
	}

	return Triple{Subject: subject, Predicate: predicate.Value, Object: object}, nil
}

type ntParser struct {
	input string
	pos   int
}

func (p *ntParser) rest() string { return p.input[p.pos:] }

func (p *ntParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *ntParser) term() (Term, error) {
	rest := p.rest()
	switch {
	case strings.HasPrefix(rest, "<"):
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return Term{}, fmt.Errorf("unterminated IRI")
		}
		p.pos += end + 1
		return NewIRI(rest[1:end]), nil

	case strings.HasPrefix(rest, "_:"):
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			end = len(rest)
		}
		p.pos += end
		return NewBlank(rest[2:end]), nil

	case strings.HasPrefix(rest, `"`):
		return p.literal()

	default:
		return Term{}, fmt.Errorf("unexpected token %q", rest)
	}
}

func (p *ntParser) literal() (Term, error) {
	rest := p.rest()

	// Find the closing quote, honoring backslash escapes.
	end := -1
	for i := 1; i < len(rest); i++ {
		if rest[i] == '\\' {
			i++
			continue
		}
		if rest[i] == '"' {
			end = i
			break
		}
	}
	if end < 0 {
		return Term{}, fmt.Errorf("unterminated literal")
	}

	lexical, err := unescapeNT(rest[1:end])
	if err != nil {
		return Term{}, err
	}
	p.pos += end + 1
	rest = p.rest()

	switch {
	case strings.HasPrefix(rest, "@"):
		tagEnd := strings.IndexAny(rest, " \t")
		if tagEnd < 0 {
			tagEnd = len(rest)
		}
		lang := rest[1:tagEnd]
		if lang == "" {
			return Term{}, fmt.Errorf("empty language tag")
		}
		p.pos += tagEnd
		return NewLangLiteral(lexical, lang), nil

	case strings.HasPrefix(rest, "^^<"):
		dtEnd := strings.IndexByte(rest, '>')
		if dtEnd < 0 {
			return Term{}, fmt.Errorf("unterminated datatype IRI")
		}
		datatype := rest[3:dtEnd]
		p.pos += dtEnd + 1
		return NewTypedLiteral(lexical, datatype), nil

	default:
		return NewLiteral(lexical), nil
	}
}

func unescapeNT(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash in literal")
		}
		switch s[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			return "", fmt.Errorf("unsupported escape \\%c", s[i])
		}
	}
	return sb.String(), nil
}
