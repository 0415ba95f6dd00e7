package payload

// Options tunes payload generation.
type Options struct {
	// EscapeSpecial escapes WiFi and vCard values. Off by default so the
	// templates are reproduced literally.
	EscapeSpecial bool
}

// Build returns the payload for t from a field map. Inputs are opaque: empty
// or missing fields interpolate as empty and nothing is validated.
func Build(t ContentType, fields map[string]string) (string, error) {
	return BuildWith(t, fields, Options{})
}

// BuildWith is Build with explicit options.
func BuildWith(t ContentType, fields map[string]string, opts Options) (string, error) {
	c, err := FromFields(t, fields)
	if err != nil {
		return "", err
	}
	return Encode(c, opts), nil
}

// Encode produces the payload of c honoring opts.
func Encode(c Content, opts Options) string {
	if opts.EscapeSpecial {
		if e, ok := c.(Escaper); ok {
			return e.EscapedPayload()
		}
	}
	return c.Payload()
}
