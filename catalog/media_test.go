package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/overtone-studio/site-backend/models"
)

func strptr(s string) *string { return &s }

func TestEffectiveThumbnail(t *testing.T) {
	explicit := models.Project{ThumbnailURL: "https://cdn.example.com/cover.jpg", Images: []string{"a.jpg"}}
	assert.Equal(t, "https://cdn.example.com/cover.jpg", EffectiveThumbnail(explicit))

	fallback := models.Project{Images: []string{"first.jpg", "second.jpg"}}
	assert.Equal(t, "first.jpg", EffectiveThumbnail(fallback))

	empty := models.Project{}
	assert.Equal(t, "", EffectiveThumbnail(empty))
}

func TestPrimaryVideo(t *testing.T) {
	// The external-host id takes precedence over the direct URL.
	both := models.Project{VimeoID: strptr("375468729"), VideoURL: strptr("https://example.com/v.mp4")}
	ref, ok := PrimaryVideo(both)
	assert.True(t, ok)
	assert.Equal(t, "375468729", ref.VimeoID)
	assert.Empty(t, ref.URL)

	urlOnly := models.Project{VideoURL: strptr("https://example.com/v.mp4")}
	ref, ok = PrimaryVideo(urlOnly)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/v.mp4", ref.URL)

	none := models.Project{VimeoID: strptr("")}
	_, ok = PrimaryVideo(none)
	assert.False(t, ok)
}
