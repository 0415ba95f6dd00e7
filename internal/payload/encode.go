package payload

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way ECMAScript encodeURIComponent
// does: only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are left as-is, every other
// UTF-8 byte becomes %XX.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

var (
	wifiEscaper  = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)
	vcardEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, "\r\n", `\n`, "\n", `\n`)
)

// EscapeWiFi escapes the characters reserved by the WIFI: QR convention.
func EscapeWiFi(s string) string { return wifiEscaper.Replace(s) }

// EscapeVCard escapes a vCard 3.0 text value.
func EscapeVCard(s string) string { return vcardEscaper.Replace(s) }
