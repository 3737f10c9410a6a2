package codec

import (
	"errors"
	"fmt"
	"strings"

	"qrd/internal/models"
)

// ErrNoEncoding is returned for field sets that have no wire format.
// Location payloads are classify-only: they can be scanned but not generated.
var ErrNoEncoding = errors.New("codec: no encoding for field set")

// Encode formats a field set into the exact payload string of its scheme.
// It is a pure formatting function: field contents are not validated, so
// malformed input yields a well-formed payload with invalid content.
//
// Wi-Fi and vCard fields are deliberately not escaped (;, , and \ pass
// through verbatim) to stay bit-compatible with existing payloads.
func Encode(fields models.FieldSet) (string, error) {
	switch f := fields.(type) {
	case models.URLFields:
		if strings.HasPrefix(f.URL, "http") {
			return f.URL, nil
		}
		return "https://" + f.URL, nil

	case models.EmailFields:
		return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			f.Email, escapeComponent(f.Subject), escapeComponent(f.Body)), nil

	case models.PhoneFields:
		return "tel:" + f.Number, nil

	case models.SMSFields:
		return fmt.Sprintf("sms:%s?body=%s", f.Number, escapeComponent(f.Message)), nil

	case models.WifiFields:
		return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%t;;",
			f.Security, f.SSID, f.Password, f.Hidden), nil

	case models.ContactFields:
		lines := []string{
			"BEGIN:VCARD",
			"VERSION:3.0",
			"FN:" + f.FirstName + " " + f.LastName,
			"ORG:" + f.Organization,
			"TEL:" + f.Phone,
			"EMAIL:" + f.Email,
			"END:VCARD",
		}
		return strings.Join(lines, "\n"), nil

	case models.TextFields:
		return f.Text, nil

	default:
		return "", ErrNoEncoding
	}
}

const upperhex = "0123456789ABCDEF"

// escapeComponent percent-encodes a string the way JS encodeURIComponent
// does: ALPHA / DIGIT / - _ . ! ~ * ' ( ) stay literal, everything else is
// encoded byte-wise as %XX. url.QueryEscape encodes space as "+" and
// url.PathEscape leaves & and = literal, so neither matches the scheme
// readers expect in mailto:/sms: query parts.
func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
