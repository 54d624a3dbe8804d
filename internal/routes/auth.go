package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tastedive-server/internal/deps"
	"tastedive-server/internal/repos"

	pkghttpx "tastedive-server/pkg/httpx"
)

type authResp struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// Signup handles POST /signup
func Signup(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type signupReq struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		ctx := r.Context()
		var req signupReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(req.Email)
		if req.Username == "" || req.Email == "" || req.Password == "" {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("username, email and password are required", nil))
			return
		}
		if !strings.Contains(req.Email, "@") {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid email address", nil))
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to hash password", err))
			return
		}
		id, err := d.Repo.CreateUser(ctx, req.Username, req.Email, string(hash))
		if err != nil {
			if errors.Is(err, repos.ErrDuplicateUser) {
				pkghttpx.WriteError(w, r, pkghttpx.BadRequest("username or email already in use", err))
				return
			}
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to create user", err))
			return
		}
		tok, err := d.Tokens.Issue(id)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to issue token", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusCreated, authResp{Token: tok, UserID: id})
	}
}

// Login handles POST /login
func Login(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type loginReq struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		ctx := r.Context()
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		if req.Email == "" || req.Password == "" {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("email and password are required", nil))
			return
		}
		// Unknown email and wrong password produce the identical response,
		// so login cannot be used to enumerate accounts.
		user, err := d.Repo.GetUserByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, repos.ErrUserNotFound) {
				pkghttpx.WriteError(w, r, pkghttpx.BadRequest("Invalid email or password", nil))
				return
			}
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to look up user", err))
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("Invalid email or password", nil))
			return
		}
		tok, err := d.Tokens.Issue(user.ID)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to issue token", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, authResp{Token: tok, UserID: user.ID})
	}
}
