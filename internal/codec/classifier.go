package codec

import (
	"strings"

	"qrd/internal/models"
)

// Classify resolves raw scanned text to its intent type. It is total:
// anything unrecognized degrades to Text, never an error.
//
// Prefix checks are case-sensitive except wifi:, which is matched
// case-insensitively so that generated WIFI: payloads classify back to
// their own type.
func Classify(raw string) models.IntentType {
	switch {
	case strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://"):
		return models.IntentURL
	case strings.HasPrefix(raw, "mailto:"):
		return models.IntentEmail
	case strings.HasPrefix(raw, "tel:"):
		return models.IntentPhone
	case strings.HasPrefix(raw, "sms:"):
		return models.IntentSMS
	case len(raw) >= 5 && strings.EqualFold(raw[:5], "wifi:"):
		return models.IntentWifi
	case strings.HasPrefix(raw, "geo:"):
		return models.IntentLocation
	case strings.Contains(raw, "BEGIN:VCARD"):
		return models.IntentContact
	default:
		return models.IntentText
	}
}
