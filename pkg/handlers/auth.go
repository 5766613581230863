package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"cardoctor/pkg/claims"
	"cardoctor/pkg/session"
	"cardoctor/pkg/user"
)

// LoginForm is the login and logout body. Password is only read by a
// credential-checking user.Verifier and is never signed into the token.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (f LoginForm) Identity() claims.Identity {
	return claims.Identity{Email: f.Email}
}

type AuthHandler struct {
	Issuer      session.Issuer
	Credentials user.Verifier
	Logger      *slog.Logger
}

func NewAuthHandler(issuer session.Issuer, credentials user.Verifier, logger *slog.Logger) *AuthHandler {
	if credentials == nil {
		credentials = user.TrustAsserted{}
	}
	return &AuthHandler{
		Issuer:      issuer,
		Credentials: credentials,
		Logger:      logger,
	}
}

// Login signs the caller's identity and sets it as the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	identity := req.Identity()
	if err := identity.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if err := h.Credentials.Verify(r.Context(), identity.Email, req.Password); err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			h.Logger.Warn("login", "error", "unauthorized", "email", identity.Email)
			writeError(w, http.StatusUnauthorized, typeMessage, err.Error())
			return
		}
		writeStorageError(w, h.Logger, "login", err)
		return
	}

	s, err := h.Issuer.Issue(identity)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, msgInternal)
		return
	}

	session.SetCookie(w, s)
	if ok := writeJSON(w, h.Logger, map[string]bool{successField: true}); ok {
		h.Logger.Info("user for token", "email", identity.Email, "expires_at", s.ExpiresAt)
	}
}

// Logout drops the session cookie. Tokens already handed out stay valid
// until they expire.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if hasBody(r) {
		if ok := DecodeJSONBody(w, r, &req); !ok {
			return
		}
	}

	session.ClearCookie(w)
	if ok := writeJSON(w, h.Logger, map[string]bool{successField: true}); ok {
		h.Logger.Info("logging out", "email", req.Email)
	}
}
