package payload

import "fmt"

// Sink receives every recomputed payload.
type Sink func(payload string)

// Form holds the active content type and an independent field set per type.
// Every mutation recomputes the payload synchronously and hands it to the sink.
// A Form is not safe for concurrent use.
type Form struct {
	active   ContentType
	contents map[ContentType]Content
	opts     Options
	sink     Sink
	payload  string
}

// NewForm returns a Form with url active and every field set empty.
// A nil sink is allowed.
func NewForm(sink Sink, opts Options) *Form {
	f := &Form{
		active:   TypeURL,
		contents: make(map[ContentType]Content, len(ContentTypes)),
		opts:     opts,
		sink:     sink,
	}
	for _, t := range ContentTypes {
		c, _ := New(t)
		f.contents[t] = c
	}
	f.payload = Encode(f.contents[f.active], f.opts)
	return f
}

// Active returns the selected content type.
func (f *Form) Active() ContentType { return f.active }

// Payload returns the last computed payload.
func (f *Form) Payload() string { return f.payload }

// Content returns the field set kept for t, or nil for an unknown type.
func (f *Form) Content(t ContentType) Content { return f.contents[t] }

// SetType switches the active type and emits its payload, built from the
// fields that type currently holds.
func (f *Form) SetType(t ContentType) error {
	if _, ok := f.contents[t]; !ok {
		return unknownType(t)
	}
	f.active = t
	f.emit()
	return nil
}

// SetField updates a field of the active type and emits the new payload.
func (f *Form) SetField(name, value string) error {
	if err := f.contents[f.active].Set(name, value); err != nil {
		return err
	}
	f.emit()
	return nil
}

func (f *Form) emit() {
	f.payload = Encode(f.contents[f.active], f.opts)
	if f.sink != nil {
		f.sink(f.payload)
	}
}

func unknownType(t ContentType) error {
	return fmt.Errorf("%w: %q", ErrUnknownContentType, string(t))
}
