package http

import (
	"net/http"
)

func (rt *Router) listOrderDocuments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	docs, err := rt.documents.ListOrderDocuments(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, docs)
}

func (rt *Router) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "Invalid document id")
		return
	}

	if err := rt.documents.DeleteDocument(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondMsg(w, http.StatusOK, "Document deleted")
}
