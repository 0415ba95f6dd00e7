package payload

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownContentType is returned for tags outside the supported set.
	ErrUnknownContentType = errors.New("unknown content type")
	// ErrUnknownField is returned when a field name does not belong to the content type.
	ErrUnknownField = errors.New("unknown field")
)

// ContentType selects the active field set and payload template.
type ContentType string

const (
	TypeURL   ContentType = "url"
	TypeText  ContentType = "text"
	TypeEmail ContentType = "email"
	TypePhone ContentType = "phone"
	TypeSMS   ContentType = "sms"
	TypeWiFi  ContentType = "wifi"
	TypeVCard ContentType = "vcard"
)

// ContentTypes lists every supported type in the order the form presents them.
var ContentTypes = []ContentType{TypeURL, TypeText, TypeEmail, TypePhone, TypeSMS, TypeWiFi, TypeVCard}

var contentLabels = map[ContentType]string{
	TypeURL:   "URL / Website",
	TypeText:  "Plain Text",
	TypeEmail: "Email",
	TypePhone: "Phone Number",
	TypeSMS:   "SMS Message",
	TypeWiFi:  "WiFi Network",
	TypeVCard: "Contact Card (vCard)",
}

// ParseContentType converts a tag into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	t := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentLabels[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownContentType, s)
	}
	return t, nil
}

// Label is the human readable name shown in the content type selector.
func (t ContentType) Label() string {
	return contentLabels[t]
}

// Content is one variant of the payload field set. Every variant knows how to
// produce its own payload string.
type Content interface {
	Type() ContentType
	// Payload returns the encoded string exactly as the template prescribes.
	Payload() string
	// Set updates a single named field.
	Set(field, value string) error
	// Fields returns a copy of the current field values keyed by field name.
	Fields() map[string]string
	// FieldNames returns the field names in display order.
	FieldNames() []string
}

// Escaper is implemented by variants whose values can be escaped according to
// their format's conventions (WiFi QR and vCard).
type Escaper interface {
	EscapedPayload() string
}

// New returns an empty Content for t.
func New(t ContentType) (Content, error) {
	switch t {
	case TypeURL:
		return &URL{}, nil
	case TypeText:
		return &Text{}, nil
	case TypeEmail:
		return &Email{}, nil
	case TypePhone:
		return &Phone{}, nil
	case TypeSMS:
		return &SMS{}, nil
	case TypeWiFi:
		return &WiFi{Encryption: DefaultWiFiEncryption}, nil
	case TypeVCard:
		return &VCard{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, string(t))
}

// FromFields builds a Content of type t from a field map. Keys that do not
// belong to t are ignored; missing keys stay at their zero value.
func FromFields(t ContentType, fields map[string]string) (Content, error) {
	c, err := New(t)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.Set(k, fields[k]); err != nil && !errors.Is(err, ErrUnknownField) {
			return nil, err
		}
	}
	return c, nil
}

func unknownField(t ContentType, field string) error {
	return fmt.Errorf("%w %q for %s", ErrUnknownField, field, t)
}
