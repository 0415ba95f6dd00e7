package components

import (
	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/style"
)

// InputKind selects the control used for a field.
type InputKind string

const (
	InputURL      InputKind = "url"
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputTel      InputKind = "tel"
	InputTextarea InputKind = "textarea"
	InputSelect   InputKind = "select"
)

// Option is one entry of a select control.
type Option struct {
	Value string
	Label string
}

// FieldSpec describes how a payload field is presented.
type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Kind        InputKind
	Rows        int
	Options     []Option
}

var fieldSpecs = map[payload.ContentType][]FieldSpec{
	payload.TypeURL: {
		{Name: "url", Label: "Website URL", Placeholder: "https://example.com", Kind: InputURL},
	},
	payload.TypeText: {
		{Name: "text", Label: "Text Content", Placeholder: "Enter any text...", Kind: InputTextarea, Rows: 4},
	},
	payload.TypeEmail: {
		{Name: "email", Label: "Email Address", Placeholder: "example@email.com", Kind: InputEmail},
		{Name: "subject", Label: "Subject (Optional)", Placeholder: "Email subject", Kind: InputText},
	},
	payload.TypePhone: {
		{Name: "phone", Label: "Phone Number", Placeholder: "+1234567890", Kind: InputTel},
	},
	payload.TypeSMS: {
		{Name: "phone", Label: "Phone Number", Placeholder: "+1234567890", Kind: InputTel},
		{Name: "message", Label: "Message (Optional)", Placeholder: "Pre-filled message...", Kind: InputTextarea, Rows: 3},
	},
	payload.TypeWiFi: {
		{Name: "ssid", Label: "Network Name (SSID)", Placeholder: "MyWiFiNetwork", Kind: InputText},
		{Name: "password", Label: "Password", Placeholder: "WiFi password", Kind: InputText},
		{Name: "encryption", Label: "Encryption Type", Kind: InputSelect, Options: []Option{
			{Value: "WPA", Label: "WPA/WPA2"},
			{Value: "WEP", Label: "WEP"},
			{Value: "nopass", Label: "No Password"},
		}},
	},
	payload.TypeVCard: {
		{Name: "name", Label: "Full Name", Placeholder: "John Doe", Kind: InputText},
		{Name: "phone", Label: "Phone Number", Placeholder: "+1234567890", Kind: InputTel},
		{Name: "email", Label: "Email", Placeholder: "john@example.com", Kind: InputEmail},
		{Name: "org", Label: "Organization (Optional)", Placeholder: "Company Name", Kind: InputText},
	},
}

// PresetColors are the quick picks shown under the foreground color.
var PresetColors = []Option{
	{Value: "#000000", Label: "Black"},
	{Value: "#4ADE80", Label: "Green"},
	{Value: "#3B82F6", Label: "Blue"},
	{Value: "#A855F7", Label: "Purple"},
	{Value: "#EF4444", Label: "Red"},
	{Value: "#F97316", Label: "Orange"},
}

// Fields returns the controls for t in display order.
func Fields(t payload.ContentType) []FieldSpec {
	return fieldSpecs[t]
}

// PageData is everything the editor page and its fragments render from.
type PageData struct {
	WorkspaceID string
	Type        payload.ContentType
	Values      map[string]string
	Payload     string
	Style       style.RenderConfig
	// PreviewSVG is the rendered document, inlined as markup.
	PreviewSVG string
}

// WorkspaceURL joins the workspace API path with suffix.
func (d PageData) WorkspaceURL(suffix string) string {
	return "/api/workspaces/" + d.WorkspaceID + suffix
}

// CanDownload is false while the payload is empty.
func (d PageData) CanDownload() bool { return d.Payload != "" }
