package ast

import (
	"strings"
	"unicode"
)

// SQL reserved words that must be quoted when used as identifiers.
var reservedWords = map[string]bool{
	// A-C
	"all":               true,
	"and":               true,
	"any":               true,
	"array":             true,
	"as":                true,
	"asymmetric":        true,
	"authorization":     true,
	"between":           true,
	"bigint":            true,
	"binary":            true,
	"boolean":           true,
	"both":              true,
	"by":                true,
	"case":              true,
	"cast":              true,
	"char":              true,
	"character":         true,
	"check":             true,
	"collate":           true,
	"collation":         true,
	"column":            true,
	"constraint":        true,
	"create":            true,
	"cross":             true,
	"current_date":      true,
	"current_time":      true,
	"current_timestamp": true,
	"current_user":      true,
	// D-F
	"date":      true,
	"decimal":   true,
	"default":   true,
	"delete":    true,
	"distinct":  true,
	"double":    true,
	"else":      true,
	"end":       true,
	"except":    true,
	"exists":    true,
	"false":     true,
	"fetch":     true,
	"float":     true,
	"for":       true,
	"foreign":   true,
	"from":      true,
	// G-L
	"grant":     true,
	"group":     true,
	"having":    true,
	"in":        true,
	"inner":     true,
	"insert":    true,
	"integer":   true,
	"intersect": true,
	"into":      true,
	"is":        true,
	"join":      true,
	"left":      true,
	"like":      true,
	// N-P
	"natural":   true,
	"not":       true,
	"null":      true,
	"of":        true,
	"on":        true,
	"or":        true,
	"order":     true,
	"outer":     true,
	"primary":   true,
	// R-S
	"real":       true,
	"references": true,
	"right":      true,
	"row":        true,
	"select":     true,
	"set":        true,
	"smallint":   true,
	"some":       true,
	"symmetric":  true,
	// T-W
	"table":     true,
	"then":      true,
	"time":      true,
	"timestamp": true,
	"tinyint":   true,
	"to":        true,
	"true":      true,
	"union":     true,
	"unique":    true,
	"update":    true,
	"user":      true,
	"using":     true,
	"varbinary": true,
	"varchar":   true,
	"when":      true,
	"where":     true,
	"with":      true,
}

// NeedsQuoting reports whether name must be written as a quoted identifier
// to be read back unchanged.
func NeedsQuoting(name string) bool {
	if name == "" {
		return true
	}

	if reservedWords[strings.ToLower(name)] {
		return true
	}

	for i, r := range name {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return true
		}
	}

	return false
}
