package workspace_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/style"
	"github.com/cristianadrielbraun/qrforge/internal/workspace"
)

func newStore(ttl time.Duration) *workspace.Store {
	return workspace.NewStore(ttl, time.Minute, payload.Options{}, zap.NewNop())
}

func TestStore_CreateGetDelete(t *testing.T) {
	t.Parallel()

	s := newStore(time.Hour)
	w := s.Create()
	require.NotEmpty(t, w.ID)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(w.ID)
	require.NoError(t, err)
	assert.Same(t, w, got)

	s.Delete(w.ID)
	_, err = s.Get(w.ID)
	assert.ErrorIs(t, err, workspace.ErrNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestStore_UnknownID(t *testing.T) {
	t.Parallel()

	_, err := newStore(time.Hour).Get("nope")
	assert.True(t, errors.Is(err, workspace.ErrNotFound))
}

func TestStore_Expires(t *testing.T) {
	t.Parallel()

	s := newStore(20 * time.Millisecond)
	w := s.Create()
	time.Sleep(60 * time.Millisecond)
	_, err := s.Get(w.ID)
	assert.ErrorIs(t, err, workspace.ErrNotFound)
}

func TestStore_IDsAreUnique(t *testing.T) {
	t.Parallel()

	s := newStore(time.Hour)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.Create().ID
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestWorkspace_InitialState(t *testing.T) {
	t.Parallel()

	snap := newStore(time.Hour).Create().Snapshot()
	assert.Equal(t, payload.TypeURL, snap.Type)
	assert.Equal(t, "https://example.com", snap.Payload)
	assert.Equal(t, map[string]string{"url": ""}, snap.Fields)
	assert.Equal(t, style.Default(), snap.Style)
}

func TestWorkspace_SetTypeRejectsNonCanonicalTags(t *testing.T) {
	t.Parallel()

	w := newStore(time.Hour).Create()
	for _, tag := range []payload.ContentType{"WIFI", " url", "fax"} {
		_, err := w.SetType(tag)
		assert.ErrorIs(t, err, payload.ErrUnknownContentType, "tag %q", tag)
	}
	snap := w.Snapshot()
	assert.Equal(t, payload.TypeURL, snap.Type)
	assert.Equal(t, "https://example.com", snap.Payload)
}

func TestWorkspace_RoundTrip(t *testing.T) {
	t.Parallel()

	w := newStore(time.Hour).Create()

	p, err := w.SetType(payload.TypeWiFi)
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:;P:;;", p)

	_, err = w.SetField("ssid", "Home")
	require.NoError(t, err)
	p, err = w.SetField("password", "secret")
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret;;", p)

	_, err = w.SetField("url", "x")
	assert.ErrorIs(t, err, payload.ErrUnknownField)
	_, err = w.SetType("fax")
	assert.ErrorIs(t, err, payload.ErrUnknownContentType)

	require.NoError(t, w.UpdateStyle(func(c *style.RenderConfig) error {
		c.SetSize(512)
		c.SetDotStyle(style.DotDots)
		return nil
	}))
	w.SetLogo("data:image/png;base64,AA==")

	snap := w.Snapshot()
	assert.Equal(t, payload.TypeWiFi, snap.Type)
	assert.Equal(t, "Home", snap.Fields["ssid"])
	assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret;;", snap.Payload)
	assert.Equal(t, 512, snap.Style.Size)
	assert.Equal(t, style.DotDots, snap.Style.DotStyle)
	assert.True(t, snap.Style.HasLogo())

	w.ClearLogo()
	assert.False(t, w.Snapshot().Style.HasLogo())
}

func TestWorkspace_FailedStyleUpdateIsDiscarded(t *testing.T) {
	t.Parallel()

	w := newStore(time.Hour).Create()
	err := w.UpdateStyle(func(c *style.RenderConfig) error {
		c.SetSize(128)
		return style.ErrInvalidOption
	})
	assert.ErrorIs(t, err, style.ErrInvalidOption)
	assert.Equal(t, 256, w.Snapshot().Style.Size)
}

func TestWorkspace_Render(t *testing.T) {
	t.Parallel()

	w := newStore(time.Hour).Create()
	_, err := w.SetField("url", "https://go.dev")
	require.NoError(t, err)

	doc, err := w.Render()
	require.NoError(t, err)
	assert.Equal(t, 256, doc.Size)
}

func TestWorkspace_ConcurrentMutation(t *testing.T) {
	t.Parallel()

	w := newStore(time.Hour).Create()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = w.SetField("url", "https://example.org")
		}()
		go func() {
			defer wg.Done()
			_ = w.UpdateStyle(func(c *style.RenderConfig) error {
				c.SetLogoSize(70)
				return nil
			})
			_ = w.Snapshot()
		}()
	}
	wg.Wait()

	snap := w.Snapshot()
	assert.Equal(t, "https://example.org", snap.Payload)
	assert.Equal(t, 70, snap.Style.LogoSize)
}
