// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseNamedList extracts the "name" values from a stringified list of
// records such as
//
//	[{'id': 16, 'name': 'Animation'}, {'id': 35, 'name': "Comedy"}]
//
// Keys and strings may use single or double quotes. Values may be strings,
// numbers, None/null or True/False. Records without a string name are
// skipped. Blank input is an empty list. Any syntax error returns a
// *MalformedFieldError; the input is never evaluated.
func ParseNamedList(field, raw string) ([]string, error) {
	p := &listParser{src: raw, field: field}
	p.skipSpace()
	if p.eof() {
		return nil, nil
	}
	names, err := p.parseList()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.fail("trailing characters after list")
	}
	return names, nil
}

type listParser struct {
	src   string
	pos   int
	field string
}

func (p *listParser) fail(reason string) error {
	return &MalformedFieldError{Field: p.field, Offset: p.pos, Reason: reason}
}

func (p *listParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *listParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *listParser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *listParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return p.fail("expected " + strconv.QuoteRune(rune(c)))
	}
	p.pos++
	return nil
}

// parseList parses '[' record {',' record} [','] ']'.
func (p *listParser) parseList() ([]string, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	names := []string{}
	for {
		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			return names, nil
		}
		name, ok, err := p.parseRecord()
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, name)
		}
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return names, nil
		default:
			return nil, p.fail("expected ',' or ']'")
		}
	}
}

// parseRecord parses one '{' key ':' value ... '}' and returns its name.
func (p *listParser) parseRecord() (string, bool, error) {
	if err := p.expect('{'); err != nil {
		return "", false, err
	}
	var name string
	var found bool
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return name, found, nil
		}
		key, err := p.parseString()
		if err != nil {
			return "", false, err
		}
		if err := p.expect(':'); err != nil {
			return "", false, err
		}
		p.skipSpace()
		value, isString, err := p.parseValue()
		if err != nil {
			return "", false, err
		}
		if key == "name" && isString {
			name, found = value, true
		}
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return name, found, nil
		default:
			return "", false, p.fail("expected ',' or '}'")
		}
	}
}

func (p *listParser) parseValue() (string, bool, error) {
	c := p.peek()
	switch {
	case c == '\'' || c == '"':
		s, err := p.parseString()
		return s, err == nil, err
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return "", false, p.parseNumber()
	case isIdentStart(c):
		return "", false, p.parseConstant()
	default:
		return "", false, p.fail("unexpected value")
	}
}

func (p *listParser) parseNumber() error {
	start := p.pos
	digits := 0
	for !p.eof() {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			digits++
		} else if !strings.ContainsRune("+-.eE", rune(c)) {
			break
		}
		p.pos++
	}
	if digits == 0 {
		p.pos = start
		return p.fail("invalid number")
	}
	return nil
}

func (p *listParser) parseConstant() error {
	start := p.pos
	for !p.eof() && isIdentStart(p.src[p.pos]) {
		p.pos++
	}
	switch p.src[start:p.pos] {
	case "None", "True", "False", "null", "true", "false":
		return nil
	}
	p.pos = start
	return p.fail("unknown identifier")
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseString parses a single- or double-quoted literal with backslash
// escapes.
func (p *listParser) parseString() (string, error) {
	p.skipSpace()
	quote := p.peek()
	if quote != '\'' && quote != '"' {
		return "", p.fail("expected quoted string")
	}
	start := p.pos
	p.pos++

	var b strings.Builder
	for {
		if p.eof() {
			p.pos = start
			return "", p.fail("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\':
			if err := p.parseEscape(&b); err != nil {
				return "", err
			}
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *listParser) parseEscape(b *strings.Builder) error {
	p.pos++ // backslash
	if p.eof() {
		return p.fail("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'x':
		return p.parseHexEscape(b, 2)
	case 'u':
		return p.parseHexEscape(b, 4)
	default:
		// Unknown escapes are kept verbatim.
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return nil
}

func (p *listParser) parseHexEscape(b *strings.Builder, width int) error {
	if p.pos+width > len(p.src) {
		return p.fail("short hex escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+width], 16, 32)
	if err != nil {
		return p.fail("invalid hex escape")
	}
	p.pos += width
	b.WriteRune(rune(v))
	return nil
}
