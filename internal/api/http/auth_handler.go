package http

import (
	"net/http"
)

func (rt *Router) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Missing JSON in request")
		return
	}
	if req.Email == "" {
		respondMsg(w, http.StatusBadRequest, "Missing email parameter")
		return
	}
	if req.Password == "" {
		respondMsg(w, http.StatusBadRequest, "Missing password parameter")
		return
	}

	token, err := rt.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":       "ok",
		"access_token": token,
	})
}

func (rt *Router) getAuthenticatedUser(w http.ResponseWriter, r *http.Request) {
	user, err := rt.auth.GetAuthenticatedUser(r.Context(), currentUserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// forgotPassword always answers 200 with a neutral body so the endpoint
// cannot be used to probe which emails are registered.
func (rt *Router) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Email == "" {
		respondMsg(w, http.StatusBadRequest, "Missing email parameter")
		return
	}

	if err := rt.auth.ForgotPassword(r.Context(), req.Email); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"msg": "if the address is registered, a reset mail has been sent"})
}

func (rt *Router) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Token == "" || req.Password == "" {
		respondMsg(w, http.StatusBadRequest, "Missing token or password parameter")
		return
	}

	if err := rt.auth.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
