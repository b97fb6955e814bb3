// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package token classifies the words of an assembly line.
//
//	@name    label
//	$name    variable
//	#123     number (optional '#', Python style integer literal)
//	[X]      memory index of X
package token

import (
	"math/big"
	"regexp"
	"strings"

	"go.starlark.net/syntax"
)

var (
	labelRe    = regexp.MustCompile(`^@[A-Za-z_]\w*$`)
	variableRe = regexp.MustCompile(`^\$[A-Za-z_]\w*$`)
)

// Tokenize splits a line on whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// IsLabel returns true for a label reference or definition, like "@loop".
func IsLabel(word string) bool {
	return labelRe.MatchString(word)
}

// IsVariable returns true for a variable, like "$count".
func IsVariable(word string) bool {
	return variableRe.MatchString(word)
}

// IsNumber returns true for a numeric literal, like "#12", "0x1f" or "#-3".
func IsNumber(word string) bool {
	_, err := NumberValue(word)
	return err == nil
}

// IsConstant returns true for a label, variable or number.
func IsConstant(word string) bool {
	return IsLabel(word) || IsVariable(word) || IsNumber(word)
}

// NumberValue strips the optional '#' and parses an integer literal.
//
// The literal follows the Python grammar: decimal, 0x, 0o or 0b prefixed,
// optionally signed.
func NumberValue(word string) (value int, err error) {
	text := strings.TrimPrefix(word, "#")
	if len(text) == 0 || strings.ContainsAny(text, " \t\n") {
		err = ErrNumber(word)
		return
	}

	opts := syntax.FileOptions{}
	expr, perr := opts.ParseExpr("number", text, 0)
	if perr != nil {
		err = ErrNumber(word)
		return
	}

	negate := false
	if unary, ok := expr.(*syntax.UnaryExpr); ok {
		switch unary.Op {
		case syntax.MINUS:
			negate = true
		case syntax.PLUS:
		default:
			err = ErrNumber(word)
			return
		}
		expr = unary.X
	}

	lit, ok := expr.(*syntax.Literal)
	if !ok || lit.Token != syntax.INT {
		err = ErrNumber(word)
		return
	}

	var v64 int64
	switch v := lit.Value.(type) {
	case int64:
		v64 = v
	case *big.Int:
		if !v.IsInt64() {
			err = ErrNumber(word)
			return
		}
		v64 = v.Int64()
	default:
		err = ErrNumber(word)
		return
	}

	if negate {
		v64 = -v64
	}

	value = int(v64)
	return
}

// IsMemoryIndex returns true for a word wrapped in brackets, like "[A]".
func IsMemoryIndex(word string) bool {
	return len(word) > 2 && word[0] == '[' && word[len(word)-1] == ']'
}

// MemoryPosition returns the inside of a memory index word.
func MemoryPosition(word string) string {
	if !IsMemoryIndex(word) {
		return ""
	}
	return word[1 : len(word)-1]
}
