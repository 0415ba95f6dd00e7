// Package payload turns a content type and its form fields into the string
// that gets encoded into a QR symbol.
//
// Each content type is a Content variant (URL, Text, Email, Phone, SMS, WiFi,
// VCard) that formats its own payload:
//
//	url    the raw URL
//	text   the raw text
//	phone  tel:<phone>
//	email  mailto:<email>?subject=<encodeURIComponent(subject)>
//	sms    sms:<phone>?body=<encodeURIComponent(message)>
//	wifi   WIFI:T:<encryption>;S:<ssid>;P:<password>;;
//	vcard  BEGIN:VCARD / VERSION:3.0 / FN / TEL / EMAIL / ORG / END:VCARD
//
// Values are interpolated as given. WiFi and vCard special characters are
// only escaped when Options.EscapeSpecial is set.
//
// Form keeps one Content per type so switching back and forth never loses
// input, and pushes the recomputed payload to a Sink on every change.
package payload
