package poster_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poster-studio/poster"
)

func TestRenderPNG(t *testing.T) {
	doc, err := poster.BuildHTML(fixedParams())
	require.NoError(t, err)

	data, err := poster.RenderPNG(context.Background(), doc, poster.Width, poster.Height)
	if err != nil {
		// Chromium is not available everywhere the tests run
		t.Logf("failed to render poster: %v", err)
		return
	}

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, poster.Width, img.Bounds().Dx())
	assert.Equal(t, poster.Height, img.Bounds().Dy())
}
