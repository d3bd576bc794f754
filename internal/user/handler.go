package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yuregl/download-yt/internal/auth"
	"github.com/yuregl/download-yt/internal/database"
	"github.com/yuregl/download-yt/internal/httputil"
	"github.com/yuregl/download-yt/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	db database.DBTX
}

func NewHandler(db database.DBTX) *Handler {
	return &Handler{db: db}
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Vip       bool      `json:"vip"`
	CreatedAt time.Time `json:"createdAt"`
}

type createRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type updateVipRequest struct {
	Status *bool `json:"status"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.CreateUser(req.Name, req.Email, req.Password); errs != nil {
		httputil.WriteFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	id := uuid.NewString()
	var vip bool
	var createdAt time.Time
	err = h.db.QueryRow(r.Context(),
		"INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4) RETURNING vip, created_at",
		id, req.Name, req.Email, string(hashedPassword),
	).Scan(&vip, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			httputil.WriteError(w, http.StatusBadRequest, "user already exists")
			return
		}
		httputil.WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, userResponse{
		ID: id, Name: req.Name, Email: req.Email, Vip: vip, CreatedAt: createdAt,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var resp userResponse
	resp.ID = userID
	err := h.db.QueryRow(r.Context(),
		"SELECT name, email, vip, created_at FROM users WHERE id = $1", userID,
	).Scan(&resp.Name, &resp.Email, &resp.Vip, &resp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		httputil.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.UpdateUser(req.Name, req.Password); errs != nil {
		httputil.WriteFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	var resp userResponse
	resp.ID = userID
	resp.Name = req.Name
	err = h.db.QueryRow(r.Context(),
		"UPDATE users SET name = $1, password = $2 WHERE id = $3 RETURNING email, vip, created_at",
		req.Name, string(hashedPassword), userID,
	).Scan(&resp.Email, &resp.Vip, &resp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		httputil.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateVip(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req updateVipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.UpdateVip(req.Status); errs != nil {
		httputil.WriteFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	var resp userResponse
	resp.ID = userID
	resp.Vip = *req.Status
	err := h.db.QueryRow(r.Context(),
		"UPDATE users SET vip = $1 WHERE id = $2 RETURNING name, email, created_at",
		*req.Status, userID,
	).Scan(&resp.Name, &resp.Email, &resp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		httputil.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
