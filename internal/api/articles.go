// internal/api/articles.go
//
// HTTP handlers for the /articles resource.  Status-code conventions
// match users.go.

package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Weburz/burzpage/internal/content"
)

func (a *API) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.store.ListArticles(r.Context())
	if err != nil {
		a.log.Errorw("list articles", "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to list articles")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]content.Article{"articles": articles})
}

func (a *API) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Article ID Not Found")
		return
	}

	article, err := a.store.GetArticle(r.Context(), id)
	if err == content.ErrNotFound {
		writeError(w, http.StatusNotFound, "Article Not Found")
		return
	}
	if err != nil {
		a.log.Errorw("get article", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to fetch article")
		return
	}
	writeJSON(w, http.StatusOK, map[string]*content.Article{"article": article})
}

func (a *API) createArticle(w http.ResponseWriter, r *http.Request) {
	var article content.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(article); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := a.store.CreateArticle(r.Context(), &article); err != nil {
		a.log.Errorw("create article", "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to create article")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]content.Article{"article": article})
}

func (a *API) updateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Article ID Not Found")
		return
	}

	var article content.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(article); err != nil {
		writeValidationError(w, err)
		return
	}

	article.ID = id
	if err := a.store.UpdateArticle(r.Context(), &article); err != nil {
		if err == content.ErrNotFound {
			writeError(w, http.StatusNotFound, "Article Not Found")
			return
		}
		a.log.Errorw("update article", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to update article")
		return
	}
	writeJSON(w, http.StatusOK, map[string]content.Article{"article": article})
}

func (a *API) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Article ID Not Found")
		return
	}

	if err := a.store.DeleteArticle(r.Context(), id); err != nil {
		if err == content.ErrNotFound {
			writeError(w, http.StatusNotFound, "Article Not Found")
			return
		}
		a.log.Errorw("delete article", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Unable to delete article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
