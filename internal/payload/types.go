package payload

import "strings"

// DefaultWiFiEncryption is preselected in the WiFi form.
const DefaultWiFiEncryption = "WPA"

// WiFiEncryptions are the options offered by the encryption selector.
var WiFiEncryptions = []string{"WPA", "WEP", "nopass"}

// URL encodes the raw URL unmodified.
type URL struct {
	URL string
}

func (c *URL) Type() ContentType    { return TypeURL }
func (c *URL) Payload() string      { return c.URL }
func (c *URL) FieldNames() []string { return []string{"url"} }

func (c *URL) Fields() map[string]string {
	return map[string]string{"url": c.URL}
}

func (c *URL) Set(field, value string) error {
	if field != "url" {
		return unknownField(TypeURL, field)
	}
	c.URL = value
	return nil
}

// Text encodes the raw text unmodified.
type Text struct {
	Text string
}

func (c *Text) Type() ContentType    { return TypeText }
func (c *Text) Payload() string      { return c.Text }
func (c *Text) FieldNames() []string { return []string{"text"} }

func (c *Text) Fields() map[string]string {
	return map[string]string{"text": c.Text}
}

func (c *Text) Set(field, value string) error {
	if field != "text" {
		return unknownField(TypeText, field)
	}
	c.Text = value
	return nil
}

// Email produces a mailto: link with a percent-encoded subject.
type Email struct {
	Address string
	Subject string
}

func (c *Email) Type() ContentType    { return TypeEmail }
func (c *Email) FieldNames() []string { return []string{"email", "subject"} }

func (c *Email) Payload() string {
	return "mailto:" + c.Address + "?subject=" + EncodeURIComponent(c.Subject)
}

func (c *Email) Fields() map[string]string {
	return map[string]string{"email": c.Address, "subject": c.Subject}
}

func (c *Email) Set(field, value string) error {
	switch field {
	case "email":
		c.Address = value
	case "subject":
		c.Subject = value
	default:
		return unknownField(TypeEmail, field)
	}
	return nil
}

// Phone produces a tel: link.
type Phone struct {
	Number string
}

func (c *Phone) Type() ContentType    { return TypePhone }
func (c *Phone) Payload() string      { return "tel:" + c.Number }
func (c *Phone) FieldNames() []string { return []string{"phone"} }

func (c *Phone) Fields() map[string]string {
	return map[string]string{"phone": c.Number}
}

func (c *Phone) Set(field, value string) error {
	if field != "phone" {
		return unknownField(TypePhone, field)
	}
	c.Number = value
	return nil
}

// SMS produces an sms: link with a percent-encoded body.
type SMS struct {
	Number  string
	Message string
}

func (c *SMS) Type() ContentType    { return TypeSMS }
func (c *SMS) FieldNames() []string { return []string{"phone", "message"} }

func (c *SMS) Payload() string {
	return "sms:" + c.Number + "?body=" + EncodeURIComponent(c.Message)
}

func (c *SMS) Fields() map[string]string {
	return map[string]string{"phone": c.Number, "message": c.Message}
}

func (c *SMS) Set(field, value string) error {
	switch field {
	case "phone":
		c.Number = value
	case "message":
		c.Message = value
	default:
		return unknownField(TypeSMS, field)
	}
	return nil
}

// WiFi produces a WIFI: network configuration string.
type WiFi struct {
	SSID       string
	Password   string
	Encryption string
}

func (c *WiFi) Type() ContentType    { return TypeWiFi }
func (c *WiFi) FieldNames() []string { return []string{"ssid", "password", "encryption"} }

func (c *WiFi) Payload() string {
	return wifiPayload(c.Encryption, c.SSID, c.Password)
}

// EscapedPayload escapes \ ; , : and " in the SSID and password.
func (c *WiFi) EscapedPayload() string {
	return wifiPayload(c.Encryption, EscapeWiFi(c.SSID), EscapeWiFi(c.Password))
}

func wifiPayload(encryption, ssid, password string) string {
	return "WIFI:T:" + encryption + ";S:" + ssid + ";P:" + password + ";;"
}

func (c *WiFi) Fields() map[string]string {
	return map[string]string{"ssid": c.SSID, "password": c.Password, "encryption": c.Encryption}
}

func (c *WiFi) Set(field, value string) error {
	switch field {
	case "ssid":
		c.SSID = value
	case "password":
		c.Password = value
	case "encryption":
		c.Encryption = value
	default:
		return unknownField(TypeWiFi, field)
	}
	return nil
}

// VCard produces a vCard 3.0 block. Lines are always FN, TEL, EMAIL, ORG.
type VCard struct {
	Name  string
	Phone string
	Email string
	Org   string
}

func (c *VCard) Type() ContentType    { return TypeVCard }
func (c *VCard) FieldNames() []string { return []string{"name", "phone", "email", "org"} }

func (c *VCard) Payload() string {
	return vcardPayload(c.Name, c.Phone, c.Email, c.Org)
}

// EscapedPayload escapes backslash, semicolon, comma and newlines in every value.
func (c *VCard) EscapedPayload() string {
	return vcardPayload(EscapeVCard(c.Name), EscapeVCard(c.Phone), EscapeVCard(c.Email), EscapeVCard(c.Org))
}

func vcardPayload(name, phone, email, org string) string {
	return strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + name,
		"TEL:" + phone,
		"EMAIL:" + email,
		"ORG:" + org,
		"END:VCARD",
	}, "\n")
}

func (c *VCard) Fields() map[string]string {
	return map[string]string{"name": c.Name, "phone": c.Phone, "email": c.Email, "org": c.Org}
}

func (c *VCard) Set(field, value string) error {
	switch field {
	case "name":
		c.Name = value
	case "phone":
		c.Phone = value
	case "email":
		c.Email = value
	case "org":
		c.Org = value
	default:
		return unknownField(TypeVCard, field)
	}
	return nil
}
