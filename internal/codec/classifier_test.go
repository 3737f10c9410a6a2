package codec

import (
	"testing"

	"qrd/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Prefixes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want models.IntentType
	}{
		{"http url", "http://example.com", models.IntentURL},
		{"https url", "https://example.com/path?x=1", models.IntentURL},
		{"mailto", "mailto:a@b.com?subject=Hi", models.IntentEmail},
		{"tel", "tel:+1234567890", models.IntentPhone},
		{"sms", "sms:+1234567890?body=hello", models.IntentSMS},
		{"wifi lowercase", "wifi:T:WPA;S:Home;;", models.IntentWifi},
		{"wifi uppercase", "WIFI:T:WPA;S:Home;P:secret;H:false;;", models.IntentWifi},
		{"wifi mixed case", "WiFi:T:WEP;S:x;;", models.IntentWifi},
		{"geo", "geo:52.52,13.405", models.IntentLocation},
		{"vcard", "BEGIN:VCARD\nFN:Jane\nEND:VCARD", models.IntentContact},
		{"vcard embedded", "some prefix BEGIN:VCARD rest", models.IntentContact},
		{"plain text", "hello world", models.IntentText},
		{"empty", "", models.IntentText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.raw))
		})
	}
}

func TestClassify_CaseSensitivePrefixes(t *testing.T) {
	// Only wifi: is matched case-insensitively; the rest fall through to Text.
	assert.Equal(t, models.IntentText, Classify("HTTP://example.com"))
	assert.Equal(t, models.IntentText, Classify("MAILTO:a@b.com"))
	assert.Equal(t, models.IntentText, Classify("TEL:123"))
	assert.Equal(t, models.IntentText, Classify("GEO:1,2"))
}

func TestClassify_PrecedenceOverVcard(t *testing.T) {
	// Prefix rules win over the BEGIN:VCARD substring check.
	raw := "https://example.com/?vcard=BEGIN:VCARD"
	assert.Equal(t, models.IntentURL, Classify(raw))
}

func TestClassify_Deterministic(t *testing.T) {
	raw := "sms:123?body=x"
	first := Classify(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(raw))
	}
}
