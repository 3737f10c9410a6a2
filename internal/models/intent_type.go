package models

import (
	"fmt"
	"strings"
)

// IntentType is the closed set of semantic categories a scanned or
// generated payload can belong to.
type IntentType int

const (
	IntentText IntentType = iota
	IntentURL
	IntentEmail
	IntentPhone
	IntentSMS
	IntentWifi
	IntentContact
	IntentLocation
)

// AllIntentTypes lists every type in enum order. Iteration over this slice
// is the stable tie-break order used by the analytics rankings.
var AllIntentTypes = []IntentType{
	IntentText,
	IntentURL,
	IntentEmail,
	IntentPhone,
	IntentSMS,
	IntentWifi,
	IntentContact,
	IntentLocation,
}

var intentNames = map[IntentType]string{
	IntentText:     "Text",
	IntentURL:      "URL",
	IntentEmail:    "Email",
	IntentPhone:    "Phone",
	IntentSMS:      "SMS",
	IntentWifi:     "WiFi",
	IntentContact:  "Contact",
	IntentLocation: "Location",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "Text"
}

// ParseIntentType resolves a display name to its IntentType. Matching is
// case-insensitive to tolerate clients sending lowercased tags.
func ParseIntentType(name string) (IntentType, bool) {
	for _, t := range AllIntentTypes {
		if strings.EqualFold(intentNames[t], name) {
			return t, true
		}
	}
	return IntentText, false
}

// MarshalText serializes the type as its display name so that JSON objects
// and map keys carry "URL", "SMS", etc. instead of raw integers.
func (t IntentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *IntentType) UnmarshalText(data []byte) error {
	parsed, ok := ParseIntentType(string(data))
	if !ok {
		return fmt.Errorf("unknown intent type %q", string(data))
	}
	*t = parsed
	return nil
}
