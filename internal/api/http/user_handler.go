package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathID extracts the numeric {id} path variable.
func pathID(r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (rt *Router) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := rt.users.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (rt *Router) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := rt.users.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (rt *Router) createUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		RoleID   int32  `json:"role_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Missing JSON in request")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondMsg(w, http.StatusBadRequest, "Missing email or password parameter")
		return
	}
	if req.RoleID == 0 {
		respondMsg(w, http.StatusBadRequest, "Missing role_id parameter")
		return
	}

	user, err := rt.users.CreateUser(r.Context(), req.Email, req.Password, req.FullName, req.Phone, req.RoleID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (rt *Router) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Missing JSON in request")
		return
	}

	user, err := rt.users.UpdateUser(r.Context(), id, req.Email, req.FullName, req.Phone)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (rt *Router) deactivateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := rt.users.DeactivateUser(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) listHelpers(w http.ResponseWriter, r *http.Request) {
	helpers, err := rt.users.ListHelpers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, helpers)
}

func (rt *Router) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := rt.users.ListRoles(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, roles)
}

func (rt *Router) listStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := rt.orders.ListStatuses(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, statuses)
}
