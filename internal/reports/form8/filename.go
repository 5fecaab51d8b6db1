package form8

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const fileTimeLayout = "20060102_150405"

// FileName - form8_<подразделение>_<YYYYMMDD_HHMMSS>.<ext>.
func FileName(department string, at time.Time, ext string) string {
	department = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(department))
	return fmt.Sprintf("form8_%s_%s.%s", department, at.Format(fileTimeLayout), ext)
}

// ASCIIFileName - запасное имя для старых клиентов: диакритика снимается,
// все, что не ASCII, выбрасывается вместе с кавычками и обратной косой чертой.
func ASCIIFileName(name string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return r > unicode.MaxASCII || r < 0x20 || r == 0x7f || r == '"' || r == '\\'
		})),
	)
	out, _, err := transform.String(t, name)
	if err != nil {
		return "form8"
	}
	return out
}

// ContentDisposition отдает оба варианта имени сразу (RFC 6266).
func ContentDisposition(name string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, ASCIIFileName(name), encodeRFC5987(name))
}

// encodeRFC5987 оставляет как есть только attr-char, остальное - %XX по байтам UTF-8.
func encodeRFC5987(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
