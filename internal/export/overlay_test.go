package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	t.Parallel()

	mime, data, err := decodeDataURL("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, "hello", string(data))

	mime, data, err = decodeDataURL("data:image/svg+xml;charset=utf-8,%3Csvg%2F%3E")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", mime)
	assert.Equal(t, "<svg/>", string(data))

	for _, bad := range []string{"", "image/png;base64,AA", "data:image/png;base64", "data:image/png;base64,!!!"} {
		_, _, err := decodeDataURL(bad)
		assert.ErrorIs(t, err, errBadDataURL, bad)
	}
}
