package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngImage returns minimal bytes that sniff as image/png.
func pngImage(payload ...byte) []byte {
	header := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	return append(header, payload...)
}

func TestStubTagger_Tag_Deterministic(t *testing.T) {
	t.Parallel()

	tagger := NewStubTagger()
	image := pngImage(0x01, 0x02, 0x03)

	first, err := tagger.Tag(context.Background(), image)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.Category.IsValid())
	assert.InDelta(t, 0.8, first.Confidence, 0.001)

	second, err := tagger.Tag(context.Background(), image)
	require.NoError(t, err)
	assert.Equal(t, first.Category, second.Category)
}

func TestStubTagger_Tag_EmptyImage(t *testing.T) {
	t.Parallel()

	tagger := NewStubTagger()

	result, err := tagger.Tag(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestStubTagger_Tag_UnsupportedContentType(t *testing.T) {
	t.Parallel()

	tagger := NewStubTagger()

	result, err := tagger.Tag(context.Background(), []byte("plain text, not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image content type")
	assert.Nil(t, result)
}
