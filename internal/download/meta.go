package download

import (
	"net/http"

	"github.com/mssola/useragent"
	"github.com/yuregl/download-yt/internal/httputil"
)

// attemptMeta enriches a ledger row with where the request came from.
type attemptMeta struct {
	browser string
	os      string
	country string
}

func (h *Handler) attemptMeta(r *http.Request) attemptMeta {
	ua := useragent.New(r.UserAgent())
	browser, _ := ua.Browser()
	return attemptMeta{
		browser: browser,
		os:      ua.OS(),
		country: h.geo.Country(httputil.ClientIP(r)),
	}
}
