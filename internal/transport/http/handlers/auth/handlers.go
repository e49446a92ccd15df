package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flasherp/internal/domain/auth"
	"flasherp/internal/transport/http/api"
	"flasherp/internal/transport/http/middleware"
)

type Handler struct {
	DB        *pgxpool.Pool
	JWTSecret string
	TokenTTL  time.Duration
}

func NewHandler(db *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{DB: db, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.With(middleware.RequireAuth).Get("/auth/me", h.handleMe)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}
	email := strings.TrimSpace(strings.ToLower(payload.Email))
	if email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password are required", requestID)
		return
	}

	var (
		id           int64
		passwordHash string
		name         string
		role         string
	)
	err := h.DB.QueryRow(r.Context(), `
    SELECT id, password_hash, COALESCE(name, ''), COALESCE(role, 'viewer')
    FROM users
    WHERE email = $1
  `, email).Scan(&id, &passwordHash, &name, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}
	if err != nil {
		slog.Error("login lookup failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
		return
	}

	if err := auth.CheckPassword(passwordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}

	userID := strconv.FormatInt(id, 10)
	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{UserID: userID, Name: name, Role: role}, h.TokenTTL)
	if err != nil {
		slog.Error("token generation failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  userResponse{ID: userID, Email: email, Name: name, Role: role},
	}, requestID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	api.Success(w, map[string]any{
		"id":   user.UserID,
		"name": user.Name,
		"role": user.Role,
	}, middleware.GetRequestID(r.Context()))
}
