package metadata

import (
	"context"
	"testing"
	"time"
)

const samplePayload = `{
	"title": "Sample Video",
	"thumbnail": "https://img.example.com/thumb.jpg",
	"formats": [
		{"format_id": "18", "ext": "mp4", "url": "https://cdn.example.com/18", "filesize": 1048576, "audio_channels": 2},
		{"format_id": "140", "ext": "m4a", "url": "https://cdn.example.com/140", "filesize": null, "filesize_approx": 524288.7, "audio_channels": 2},
		{"format_id": "sb0", "ext": "mhtml", "url": "https://cdn.example.com/sb0"}
	]
}`

func TestParsePayload(t *testing.T) {
	video, err := parsePayload([]byte(samplePayload))
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	if video.Title != "Sample Video" {
		t.Errorf("Title = %q, want Sample Video", video.Title)
	}
	if video.Thumbnail != "https://img.example.com/thumb.jpg" {
		t.Errorf("Thumbnail = %q", video.Thumbnail)
	}
	if len(video.Formats) != 3 {
		t.Fatalf("got %d formats, want 3", len(video.Formats))
	}

	mp4 := video.Formats[0]
	if mp4.FormatID != "18" || mp4.Ext != "mp4" || mp4.Filesize != 1048576 || mp4.AudioChannels != 2 {
		t.Errorf("unexpected first format: %+v", mp4)
	}

	audio := video.Formats[1]
	if audio.Filesize != 0 {
		t.Errorf("null filesize should decode to 0, got %d", audio.Filesize)
	}
	if audio.FilesizeApprox != 524288 {
		t.Errorf("FilesizeApprox = %d, want 524288", audio.FilesizeApprox)
	}
}

func TestParsePayload_InvalidJSON(t *testing.T) {
	if _, err := parsePayload([]byte("ERROR: not json")); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestNewYTDLP_DefaultBinary(t *testing.T) {
	y := NewYTDLP("")
	if y.bin != "yt-dlp" {
		t.Errorf("bin = %q, want yt-dlp", y.bin)
	}
}

func TestFetch_MissingBinary(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	y := NewYTDLP("/nonexistent/yt-dlp")
	if _, err := y.Fetch(ctx, "https://example.com/watch?v=abc"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
