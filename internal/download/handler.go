// Package download implements the download authorization workflow: quota
// enforcement for non-VIP users, format selection against provider metadata,
// and the append-only attempt ledger used for quota counting.
package download

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yuregl/download-yt/internal/auth"
	"github.com/yuregl/download-yt/internal/database"
	"github.com/yuregl/download-yt/internal/geoip"
	"github.com/yuregl/download-yt/internal/httputil"
	"github.com/yuregl/download-yt/internal/metadata"
	"github.com/yuregl/download-yt/internal/validate"
)

// DefaultDailyLimit is the non-VIP download quota per calendar day.
const DefaultDailyLimit = 10

// validTags is the allow-list returned by get-formats: four video
// resolutions plus the audio-only option.
var validTags = map[string]bool{
	"18": true, "22": true, "37": true, "44": true, "140": true,
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrQuotaExceeded = errors.New("daily download limit reached")
)

type Handler struct {
	db         database.DBTX
	provider   metadata.Provider
	geo        *geoip.Resolver
	dailyLimit int
}

func NewHandler(db database.DBTX, provider metadata.Provider, geo *geoip.Resolver, dailyLimit int) *Handler {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	return &Handler{db: db, provider: provider, geo: geo, dailyLimit: dailyLimit}
}

type createRequest struct {
	URL        string `json:"url"`
	Resolution string `json:"resolution"`
}

type createResponse struct {
	URL string `json:"url"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.CreateDownload(req.URL, req.Resolution); errs != nil {
		httputil.WriteFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	directURL, err := h.authorize(r.Context(), req.URL, req.Resolution, userID, h.attemptMeta(r))
	switch {
	case errors.Is(err, ErrUserNotFound):
		httputil.WriteError(w, http.StatusNotFound, ErrUserNotFound.Error())
		return
	case errors.Is(err, ErrQuotaExceeded):
		httputil.WriteError(w, http.StatusForbidden, ErrQuotaExceeded.Error())
		return
	case err != nil:
		httputil.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httputil.WriteJSON(w, http.StatusOK, createResponse{URL: directURL})
}

// authorize runs the sequential checks for one download attempt. A matching
// format is not required: an unmatched resolution yields an empty direct URL
// while the attempt is still recorded and counted against the quota.
func (h *Handler) authorize(ctx context.Context, url, resolution, userID string, meta attemptMeta) (string, error) {
	var id string
	var vip bool
	err := h.db.QueryRow(ctx, "SELECT id, vip FROM users WHERE id = $1", userID).Scan(&id, &vip)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}

	video, err := h.provider.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch video metadata: %w", err)
	}

	if !vip {
		// Count and insert are separate statements, so two concurrent
		// requests can both pass at count = limit-1. Accepted: the quota
		// is a soft daily cap, not an exact one.
		var count int
		err := h.db.QueryRow(ctx,
			`SELECT COUNT(*) FROM downloads
			 WHERE user_id = $1
			   AND created_at >= CURRENT_DATE
			   AND created_at < CURRENT_DATE + INTERVAL '1 day'`, userID,
		).Scan(&count)
		if err != nil {
			return "", fmt.Errorf("count downloads: %w", err)
		}
		if count >= h.dailyLimit {
			return "", ErrQuotaExceeded
		}
	}

	var directURL string
	for _, f := range video.Formats {
		if f.FormatID == resolution {
			directURL = f.URL
			break
		}
	}

	_, err = h.db.Exec(ctx,
		"INSERT INTO downloads (id, url, user_id, browser, os, country) VALUES ($1, $2, $3, $4, $5, $6)",
		uuid.NewString(), url, userID, meta.browser, meta.os, meta.country,
	)
	if err != nil {
		return "", fmt.Errorf("record download: %w", err)
	}

	return directURL, nil
}

type formatInfo struct {
	FileSize      int64  `json:"fileSize"`
	Extension     string `json:"extension"`
	AudioChannels int    `json:"audioChannels"`
	FormatID      string `json:"formatId"`
	Resolution    string `json:"resolution"`
}

type formatsResponse struct {
	URL       string       `json:"url"`
	Name      string       `json:"name"`
	Thumbnail string       `json:"thumbnail"`
	Formats   []formatInfo `json:"formats"`
}

type getFormatsRequest struct {
	URL string `json:"url"`
}

func (h *Handler) GetFormats(w http.ResponseWriter, r *http.Request) {
	var req getFormatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.GetFormats(req.URL); errs != nil {
		httputil.WriteFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	video, err := h.provider.Fetch(r.Context(), req.URL)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("fetch video metadata: %v", err))
		return
	}

	formats := make([]formatInfo, 0, len(video.Formats))
	for _, f := range video.Formats {
		if !validTags[f.FormatID] {
			continue
		}
		size := f.Filesize
		if size == 0 {
			size = f.FilesizeApprox
		}
		formats = append(formats, formatInfo{
			FileSize:      size,
			Extension:     f.Ext,
			AudioChannels: f.AudioChannels,
			FormatID:      f.FormatID,
			Resolution:    ResolutionForTag(f.FormatID),
		})
	}

	httputil.WriteJSON(w, http.StatusOK, formatsResponse{
		URL:       req.URL,
		Name:      video.Title,
		Thumbnail: video.Thumbnail,
		Formats:   formats,
	})
}
