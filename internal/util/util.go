package util

import (
	"fmt"
	"io"
	"net/url"
	"strings"
)

// ParseForm читает тело запроса целиком и разбирает его как
// application/x-www-form-urlencoded независимо от Content-Type.
// Ошибку возвращает только чтение тела: разбор не отвергает ни ";",
// ни некорректные %-последовательности.
func ParseForm(body io.Reader) (url.Values, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read form body: %w", err)
	}
	return ParseQuery(string(raw)), nil
}

// ParseQuery делит строку только по "&", пары без "=" и с пустым
// значением пропускает.
func ParseQuery(query string) url.Values {
	values := make(url.Values)
	for _, pair := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		k := Unescape(key)
		values[k] = append(values[k], Unescape(value))
	}
	return values
}

// Unescape заменяет "+" на пробел и декодирует корректные %XX.
// Некорректные последовательности остаются в тексте как есть.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// FirstValue returns the first non-empty value of key.
// Поле, у которого все значения пустые, считается отсутствующим.
func FirstValue(values url.Values, key string) (string, bool) {
	for _, v := range values[key] {
		if v != "" {
			return v, true
		}
	}
	return "", false
}
