// internal/api/comments.go
//
// HTTP handlers for the /comments resource.  Status-code conventions
// match users.go.

package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Weburz/burzpage/internal/content"
)

func (a *API) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := a.store.ListComments(r.Context())
	if err != nil {
		a.log.Errorw("list comments", "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to list comments")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]content.Comment{"comments": comments})
}

func (a *API) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Comment ID Not Found")
		return
	}

	comment, err := a.store.GetComment(r.Context(), id)
	if err == content.ErrNotFound {
		writeError(w, http.StatusNotFound, "Comment Not Found")
		return
	}
	if err != nil {
		a.log.Errorw("get comment", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to fetch comment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]*content.Comment{"comment": comment})
}

func (a *API) createComment(w http.ResponseWriter, r *http.Request) {
	var comment content.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(comment); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := a.store.CreateComment(r.Context(), &comment); err != nil {
		a.log.Errorw("create comment", "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to create comment")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]content.Comment{"comment": comment})
}

func (a *API) updateComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Comment ID Not Found")
		return
	}

	var comment content.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(comment); err != nil {
		writeValidationError(w, err)
		return
	}

	comment.ID = id
	if err := a.store.UpdateComment(r.Context(), &comment); err != nil {
		if err == content.ErrNotFound {
			writeError(w, http.StatusNotFound, "Comment Not Found")
			return
		}
		a.log.Errorw("update comment", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to update comment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]content.Comment{"comment": comment})
}

func (a *API) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Comment ID Not Found")
		return
	}

	if err := a.store.DeleteComment(r.Context(), id); err != nil {
		if err == content.ErrNotFound {
			writeError(w, http.StatusNotFound, "Comment Not Found")
			return
		}
		a.log.Errorw("delete comment", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to delete comment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
