// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sparqlparse checks SPARQL query text for structural validity and
// reports the query's shape.
//
// The checker covers the prologue (BASE and PREFIX declarations), the query
// form keyword, delimiter balance outside strings and IRIs, and prefixed-name
// resolution against the declared prefixes. Undeclared prefixes are the error
// class namespace rewriting exists to fix, so they are always reported.
// Anything the checker accepts is still executed by a real SPARQL engine
// downstream; this package never evaluates queries.
package sparqlparse

import (
	"fmt"
	"strings"
	"unicode"
)

// Form identifies a query's operation kind. Its string form is the label
// recorded in harvested document metadata.
type Form int

const (
	FormUnknown Form = iota
	FormSelect
	FormAsk
	FormConstruct
	FormDescribe
)

func (f Form) String() string {
	switch f {
	case FormSelect:
		return "SelectQuery"
	case FormAsk:
		return "AskQuery"
	case FormConstruct:
		return "ConstructQuery"
	case FormDescribe:
		return "DescribeQuery"
	}
	return "UnknownQuery"
}

// Query describes a successfully parsed query.
type Query struct {
	Form     Form
	Base     string
	Prefixes map[string]string
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokPName
	tokBlankNode
	tokVar
	tokIRI
	tokString
	tokNumber
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	line int
}

// Parse checks text and returns the query description. It fails on
// unterminated strings or IRIs, a malformed prologue, a missing or unknown
// query form, unbalanced delimiters, and prefixed names whose prefix is not
// declared.
func Parse(text string) (*Query, error) {
	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}

	q := &Query{Prefixes: make(map[string]string)}
	i := 0

prologue:
	for i < len(tokens) {
		t := tokens[i]
		if t.kind != tokWord {
			break
		}
		switch strings.ToUpper(t.text) {
		case "BASE":
			if i+1 >= len(tokens) || tokens[i+1].kind != tokIRI {
				return nil, fmt.Errorf("line %d: BASE requires an IRI", t.line)
			}
			q.Base = tokens[i+1].text
			i += 2
		case "PREFIX":
			if i+2 >= len(tokens) || tokens[i+1].kind != tokPName || tokens[i+2].kind != tokIRI {
				return nil, fmt.Errorf("line %d: PREFIX requires a name ending in ':' and an IRI", t.line)
			}
			name := tokens[i+1].text
			if strings.Count(name, ":") != 1 || !strings.HasSuffix(name, ":") {
				return nil, fmt.Errorf("line %d: invalid prefix name %q in declaration", t.line, name)
			}
			// Re-declaring a prefix is legal; the latest declaration wins.
			q.Prefixes[strings.TrimSuffix(name, ":")] = tokens[i+2].text
			i += 3
		default:
			break prologue
		}
	}

	if i >= len(tokens) {
		return nil, fmt.Errorf("no query form found (expected SELECT, ASK, CONSTRUCT, or DESCRIBE)")
	}
	head := tokens[i]
	if head.kind != tokWord {
		return nil, fmt.Errorf("line %d: expected a query form, got %q", head.line, head.text)
	}
	switch strings.ToUpper(head.text) {
	case "SELECT":
		q.Form = FormSelect
	case "ASK":
		q.Form = FormAsk
	case "CONSTRUCT":
		q.Form = FormConstruct
	case "DESCRIBE":
		q.Form = FormDescribe
	default:
		return nil, fmt.Errorf("line %d: unsupported query form %q", head.line, head.text)
	}

	var braces, parens, brackets int
	sawGroup := false
	for _, t := range tokens[i+1:] {
		switch t.kind {
		case tokPunct:
			switch t.text {
			case "{":
				braces++
				sawGroup = true
			case "}":
				braces--
				if braces < 0 {
					return nil, fmt.Errorf("line %d: unmatched '}'", t.line)
				}
			case "(":
				parens++
			case ")":
				parens--
				if parens < 0 {
					return nil, fmt.Errorf("line %d: unmatched ')'", t.line)
				}
			case "[":
				brackets++
			case "]":
				brackets--
				if brackets < 0 {
					return nil, fmt.Errorf("line %d: unmatched ']'", t.line)
				}
			}
		case tokPName:
			name := t.text[:strings.Index(t.text, ":")]
			if _, declared := q.Prefixes[name]; !declared {
				return nil, fmt.Errorf("line %d: undeclared prefix %q in %q", t.line, name, t.text)
			}
		case tokWord:
			if strings.EqualFold(t.text, "PREFIX") || strings.EqualFold(t.text, "BASE") {
				return nil, fmt.Errorf("line %d: %s declaration must precede the query form", t.line, strings.ToUpper(t.text))
			}
		}
	}

	switch {
	case braces != 0:
		return nil, fmt.Errorf("unbalanced '{' '}' groups")
	case parens != 0:
		return nil, fmt.Errorf("unbalanced '(' ')' pairs")
	case brackets != 0:
		return nil, fmt.Errorf("unbalanced '[' ']' pairs")
	}

	if !sawGroup && q.Form != FormDescribe {
		return nil, fmt.Errorf("%s query has no group graph pattern", strings.ToUpper(head.text))
	}

	return q, nil
}

func lex(text string) ([]token, error) {
	runes := []rune(text)
	n := len(runes)
	var tokens []token
	line := 1
	i := 0

	for i < n {
		r := runes[i]
		switch {
		case r == '\n':
			line++
			i++

		case unicode.IsSpace(r):
			i++

		case r == '#':
			for i < n && runes[i] != '\n' {
				i++
			}

		case r == '<':
			// An IRI runs to '>' without whitespace; otherwise '<' is a
			// comparison operator.
			j := i + 1
			for j < n && runes[j] != '>' && runes[j] != '<' && !unicode.IsSpace(runes[j]) {
				j++
			}
			if j < n && runes[j] == '>' {
				tokens = append(tokens, token{tokIRI, string(runes[i+1 : j]), line})
				i = j + 1
			} else {
				tokens = append(tokens, token{tokPunct, "<", line})
				i++
			}

		case r == '"' || r == '\'':
			tok, next, err := lexString(runes, i, &line)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next

		case r == '?' || r == '$':
			j := i + 1
			for j < n && isNameRune(runes[j]) {
				j++
			}
			if j > i+1 {
				tokens = append(tokens, token{tokVar, string(runes[i:j]), line})
			} else {
				tokens = append(tokens, token{tokPunct, string(r), line})
			}
			i = j

		case unicode.IsDigit(r):
			j := i + 1
			for j < n && (unicode.IsDigit(runes[j]) || runes[j] == 'e' || runes[j] == 'E') {
				j++
			}
			if j < n && runes[j] == '.' && j+1 < n && unicode.IsDigit(runes[j+1]) {
				j += 2
				for j < n && unicode.IsDigit(runes[j]) {
					j++
				}
			}
			tokens = append(tokens, token{tokNumber, string(runes[i:j]), line})
			i = j

		case isNameStartRune(r) || r == ':':
			tok, next := lexName(runes, i, line)
			tokens = append(tokens, tok)
			i = next

		default:
			tokens = append(tokens, token{tokPunct, string(r), line})
			i++
		}
	}

	return tokens, nil
}

// lexName scans a bare word, a prefixed name ("foaf:name", ":x", "dc:"), or
// a blank node label ("_:b0").
func lexName(runes []rune, start, line int) (token, int) {
	n := len(runes)
	j := start
	for j < n && isNamePartRune(runes, j) {
		j++
	}

	if j >= n || runes[j] != ':' {
		return token{tokWord, string(runes[start:j]), line}, j
	}

	// Consume ':' and the local part, which may itself contain ':', '%'
	// escapes, and '\'-escaped punctuation.
	j++
	for j < n {
		switch {
		case runes[j] == '\\' && j+1 < n:
			j += 2
		case isNamePartRune(runes, j) || runes[j] == ':' || runes[j] == '%':
			j++
		default:
			text := string(runes[start:j])
			return classifyName(text, line), j
		}
	}
	return classifyName(string(runes[start:j]), line), j
}

func classifyName(text string, line int) token {
	if strings.HasPrefix(text, "_:") {
		return token{tokBlankNode, text, line}
	}
	return token{tokPName, text, line}
}

// lexString scans a short or long quoted literal starting at runes[start].
func lexString(runes []rune, start int, line *int) (token, int, error) {
	n := len(runes)
	quote := runes[start]
	startLine := *line

	if start+2 < n && runes[start+1] == quote && runes[start+2] == quote {
		j := start + 3
		for j <= n-3 {
			switch {
			case runes[j] == '\\':
				j += 2
			case runes[j] == quote && runes[j+1] == quote && runes[j+2] == quote:
				return token{tokString, string(runes[start+3 : j]), startLine}, j + 3, nil
			default:
				if runes[j] == '\n' {
					*line++
				}
				j++
			}
		}
		return token{}, 0, fmt.Errorf("line %d: unterminated long string literal", startLine)
	}

	j := start + 1
	for j < n {
		switch {
		case runes[j] == '\\':
			j += 2
		case runes[j] == quote:
			return token{tokString, string(runes[start+1 : j]), startLine}, j + 1, nil
		case runes[j] == '\n':
			return token{}, 0, fmt.Errorf("line %d: unterminated string literal", startLine)
		default:
			j++
		}
	}
	return token{}, 0, fmt.Errorf("line %d: unterminated string literal", startLine)
}

func isNameStartRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// isNamePartRune reports whether the rune at position j continues a name.
// A '.' continues a name only when followed by another name rune, so
// statement-terminating dots stay separate tokens.
func isNamePartRune(runes []rune, j int) bool {
	r := runes[j]
	if isNameRune(r) {
		return true
	}
	return r == '.' && j+1 < len(runes) && isNameRune(runes[j+1])
}
