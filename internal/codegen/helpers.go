package codegen

import (
	"strings"
	"unicode"
)

func fileHeader(comment string) string {
	return comment + " Code generated by padlink codegen. DO NOT EDIT."
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func toSnake(s string) string {
	return strings.ToLower(strings.Join(words(s), "_"))
}

func toUpperSnake(s string) string {
	return strings.ToUpper(strings.Join(words(s), "_"))
}

func toPascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}
