// internal/api/users.go
//
// HTTP handlers for the /users resource.
//
// Context
// -------
// List and get answer 200 with the {"users": …} / {"user": …} envelopes;
// create answers 201.  A malformed body is 400, a bad or unknown ID is
// 404, and a validation failure is 422 with the JSON:API error document.
// Storage failures are logged and surface as plain 500s.

package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Weburz/burzpage/internal/content"
)

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.store.ListUsers(r.Context())
	if err != nil {
		a.log.Errorw("list users", "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to list users")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]content.User{"users": users})
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "User ID Not Found")
		return
	}

	user, err := a.store.GetUser(r.Context(), id)
	if err == content.ErrNotFound {
		writeError(w, http.StatusNotFound, "User Not Found")
		return
	}
	if err != nil {
		a.log.Errorw("get user", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]*content.User{"user": user})
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	var user content.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(user); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := a.store.CreateUser(r.Context(), &user); err != nil {
		a.log.Errorw("create user", "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to create user")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]content.User{"user": user})
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "User ID Not Found")
		return
	}

	var user content.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(user); err != nil {
		writeValidationError(w, err)
		return
	}

	user.ID = id
	if err := a.store.UpdateUser(r.Context(), &user); err != nil {
		if err == content.ErrNotFound {
			writeError(w, http.StatusNotFound, "User Not Found")
			return
		}
		a.log.Errorw("update user", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to update user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]content.User{"user": user})
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "User ID Not Found")
		return
	}

	if err := a.store.DeleteUser(r.Context(), id); err != nil {
		if err == content.ErrNotFound {
			writeError(w, http.StatusNotFound, "User Not Found")
			return
		}
		a.log.Errorw("delete user", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
