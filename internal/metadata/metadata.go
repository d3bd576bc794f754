// Package metadata resolves video titles, thumbnails and encoding formats
// by shelling out to yt-dlp.
package metadata

import "context"

type Format struct {
	FormatID       string
	Ext            string
	URL            string
	Filesize       int64
	FilesizeApprox int64
	AudioChannels  int
}

type Video struct {
	Title     string
	Thumbnail string
	Formats   []Format
}

// Provider is the external metadata collaborator. Calls may be slow and may
// fail; callers surface failures as upstream errors without classification.
type Provider interface {
	Fetch(ctx context.Context, url string) (*Video, error)
}
