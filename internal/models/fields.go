package models

// FieldSet is the sealed union of per-type encoder inputs. Each variant
// maps to exactly one IntentType; the codec switches exhaustively over
// the variants, so adding a type here forces the encoder to handle it.
type FieldSet interface {
	Intent() IntentType
}

type URLFields struct {
	URL string `json:"url"`
}

type EmailFields struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type PhoneFields struct {
	Number string `json:"number"`
}

type SMSFields struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

type WifiFields struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
	Security string `json:"security"` // WPA, WEP or nopass
	Hidden   bool   `json:"hidden"`
}

type ContactFields struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

type TextFields struct {
	Text string `json:"text"`
}

func (URLFields) Intent() IntentType     { return IntentURL }
func (EmailFields) Intent() IntentType   { return IntentEmail }
func (PhoneFields) Intent() IntentType   { return IntentPhone }
func (SMSFields) Intent() IntentType     { return IntentSMS }
func (WifiFields) Intent() IntentType    { return IntentWifi }
func (ContactFields) Intent() IntentType { return IntentContact }
func (TextFields) Intent() IntentType    { return IntentText }
