package console

import (
	"errors"
	"strings"
	"unicode"
)

// splitArgs разбивает строку на токены, уважая одинарные и двойные кавычки
func splitArgs(s string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		quoted  bool // Был ли токен в кавычках (пустая строка в кавычках - тоже токен)
	)

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			quoted = true
		case unicode.IsSpace(r):
			if quoted || current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
				quoted = false
			}
		default:
			current.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, errors.New("unclosed quote")
	}
	if quoted || current.Len() > 0 {
		args = append(args, current.String())
	}
	return args, nil
}
