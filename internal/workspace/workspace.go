package workspace

import (
	"sync"

	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/render"
	"github.com/cristianadrielbraun/qrforge/internal/style"
)

// InitialPayload is shown before the user edits any field.
const InitialPayload = render.Placeholder

// Workspace is the editing state of one page view: the payload form, the
// style, and the last payload the form emitted. All methods are safe for
// concurrent use.
type Workspace struct {
	ID string

	mu      sync.Mutex
	form    *payload.Form
	style   style.RenderConfig
	payload string
}

// Snapshot is a consistent copy of a workspace.
type Snapshot struct {
	ID      string              `json:"id"`
	Type    payload.ContentType `json:"type"`
	Fields  map[string]string   `json:"fields"`
	Payload string              `json:"payload"`
	Style   style.RenderConfig  `json:"style"`
}

func newWorkspace(id string, opts payload.Options) *Workspace {
	w := &Workspace{
		ID:      id,
		style:   style.Default(),
		payload: InitialPayload,
	}
	// The sink runs while w.mu is held by the mutating method.
	w.form = payload.NewForm(func(p string) { w.payload = p }, opts)
	return w
}

// SetType switches the content type and returns the payload it emitted.
func (w *Workspace) SetType(t payload.ContentType) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.form.SetType(t); err != nil {
		return "", err
	}
	return w.payload, nil
}

// SetField updates a field of the active type and returns the new payload.
func (w *Workspace) SetField(name, value string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.form.SetField(name, value); err != nil {
		return "", err
	}
	return w.payload, nil
}

// UpdateStyle applies fn to a copy of the style and keeps it only if fn succeeds.
func (w *Workspace) UpdateStyle(fn func(*style.RenderConfig) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.style
	if err := fn(&next); err != nil {
		return err
	}
	w.style = next
	return nil
}

func (w *Workspace) SetLogo(dataURL string) {
	w.mu.Lock()
	w.style.SetLogoImage(dataURL)
	w.mu.Unlock()
}

func (w *Workspace) ClearLogo() {
	w.mu.Lock()
	w.style.ClearLogo()
	w.mu.Unlock()
}

func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	active := w.form.Active()
	return Snapshot{
		ID:      w.ID,
		Type:    active,
		Fields:  w.form.Content(active).Fields(),
		Payload: w.payload,
		Style:   w.style,
	}
}

// Render draws the current payload and style. The lock is only held while
// copying state.
func (w *Workspace) Render() (*render.Document, error) {
	s := w.Snapshot()
	return render.Render(s.Payload, s.Style)
}
