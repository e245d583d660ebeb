package catalog

import "github.com/overtone-studio/site-backend/models"

// EffectiveThumbnail resolves a project's display thumbnail. A project
// without an explicit thumbnail falls back to its first gallery image; a
// project with neither yields the empty string, which renderers must
// handle themselves.
func EffectiveThumbnail(p models.Project) string {
	if p.ThumbnailURL != "" {
		return p.ThumbnailURL
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// VideoRef identifies a project's primary video, either by external-host
// id or by direct URL.
type VideoRef struct {
	VimeoID string `json:"vimeo_id,omitempty"`
	URL     string `json:"url,omitempty"`
}

// PrimaryVideo resolves a project's primary video reference. The
// external-host identifier takes precedence when both are present. The
// second return is false when the project has no video at all.
func PrimaryVideo(p models.Project) (VideoRef, bool) {
	if p.VimeoID != nil && *p.VimeoID != "" {
		return VideoRef{VimeoID: *p.VimeoID}, true
	}
	if p.VideoURL != nil && *p.VideoURL != "" {
		return VideoRef{URL: *p.VideoURL}, true
	}
	return VideoRef{}, false
}
