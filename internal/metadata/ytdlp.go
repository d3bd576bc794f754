package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// YTDLP invokes the yt-dlp binary with -J and decodes the single-video JSON
// payload. No timeout is applied beyond the request context; no retries.
type YTDLP struct {
	bin string
}

func NewYTDLP(bin string) *YTDLP {
	if bin == "" {
		bin = "yt-dlp"
	}
	return &YTDLP{bin: bin}
}

func (y *YTDLP) Fetch(ctx context.Context, url string) (*Video, error) {
	cmd := exec.CommandContext(ctx, y.bin, "-J", "--no-playlist", url)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("yt-dlp: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}
	return parsePayload(output)
}

type payload struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Formats   []struct {
		FormatID       string  `json:"format_id"`
		Ext            string  `json:"ext"`
		URL            string  `json:"url"`
		Filesize       int64   `json:"filesize"`
		FilesizeApprox float64 `json:"filesize_approx"`
		AudioChannels  int     `json:"audio_channels"`
	} `json:"formats"`
}

func parsePayload(data []byte) (*Video, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}

	video := &Video{
		Title:     p.Title,
		Thumbnail: p.Thumbnail,
		Formats:   make([]Format, 0, len(p.Formats)),
	}
	for _, f := range p.Formats {
		video.Formats = append(video.Formats, Format{
			FormatID:       f.FormatID,
			Ext:            f.Ext,
			URL:            f.URL,
			Filesize:       f.Filesize,
			FilesizeApprox: int64(f.FilesizeApprox),
			AudioChannels:  f.AudioChannels,
		})
	}
	return video, nil
}
