// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package httpapi exposes the clique solver over HTTP: POST a JSON
// edge list, get back a JSON vertex list. No state is persisted
// between requests.
package httpapi

import (
	"encoding/json"
	"net/http"
)

type request struct {
	Edges [][2]int `json:"edges"`
}

type response struct {
	MaxClique []int `json:"max_clique"`
}

type errorBody struct {
	Error string `json:"error"`
}

// NewHandler returns an http.Handler serving POST /api/find-max-clique.
// The request body is {"edges":[[u,v],...]}; the response body is
// {"max_clique":[id,...]}. solve is called with the decoded edge list
// and must return the external ids of a clique. CORS is permissive:
// any origin, method, and header is allowed, and OPTIONS preflight
// requests are answered directly.
func NewHandler(solve func(edges [][2]int) []int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/find-max-clique", func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w, r)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
			return
		}

		clique := solve(req.Edges)
		if clique == nil {
			clique = []int{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response{MaxClique: clique})
	})
	return mux
}

func setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	if m := r.Header.Get("Access-Control-Request-Method"); m != "" {
		h.Set("Access-Control-Allow-Methods", m)
	} else {
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	}
	if hdrs := r.Header.Get("Access-Control-Request-Headers"); hdrs != "" {
		h.Set("Access-Control-Allow-Headers", hdrs)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: msg})
}
