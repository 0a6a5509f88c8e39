package calc

import (
	"strconv"
	"unicode"

	"github.com/pkg/errors"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokInt
	tokIdent
	tokIn
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokComma
	tokPlus
	tokMinus
	tokStar
	tokHash
	tokAssign
	tokPlusAssign
	tokMinusAssign
	tokStarAssign
	tokLessEq
	tokEq
)

var tokenNames = map[tokenKind]string{
	tokEOF:         "end of input",
	tokInt:         "integer",
	tokIdent:       "name",
	tokIn:          "in",
	tokLBrace:      "{",
	tokRBrace:      "}",
	tokLParen:      "(",
	tokRParen:      ")",
	tokComma:       ",",
	tokPlus:        "+",
	tokMinus:       "-",
	tokStar:        "*",
	tokHash:        "#",
	tokAssign:      "=",
	tokPlusAssign:  "+=",
	tokMinusAssign: "-=",
	tokStarAssign:  "*=",
	tokLessEq:      "<=",
	tokEq:          "==",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

type token struct {
	kind tokenKind
	text string
	num  int
	pos  int
}

var twoCharTokens = map[string]tokenKind{
	"+=": tokPlusAssign,
	"-=": tokMinusAssign,
	"*=": tokStarAssign,
	"<=": tokLessEq,
	"==": tokEq,
}

var oneCharTokens = map[rune]tokenKind{
	'{': tokLBrace,
	'}': tokRBrace,
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'#': tokHash,
	'=': tokAssign,
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// tokenize splits input into tokens. Positions are rune offsets.
func tokenize(input string) ([]token, error) {
	src := []rune(input)
	var tokens []token

	for i := 0; i < len(src); {
		r := src[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case isDigit(r):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			text := string(src[start:i])
			n, err := strconv.Atoi(text)
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "integer %s at %d is out of range", text, start)
			}
			tokens = append(tokens, token{kind: tokInt, text: text, num: n, pos: start})

		case r == '_' || unicode.IsLetter(r):
			start := i
			for i < len(src) && (src[i] == '_' || unicode.IsLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			text := string(src[start:i])
			kind := tokIdent
			if text == "in" {
				kind = tokIn
			}
			tokens = append(tokens, token{kind: kind, text: text, pos: start})

		default:
			if i+1 < len(src) {
				if kind, ok := twoCharTokens[string(src[i:i+2])]; ok {
					tokens = append(tokens, token{kind: kind, text: string(src[i : i+2]), pos: i})
					i += 2
					continue
				}
			}

			kind, ok := oneCharTokens[r]
			if !ok {
				return nil, errors.Wrapf(ErrSyntax, "unexpected character %q at %d", r, i)
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(src)}), nil
}
