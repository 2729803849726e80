// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// Handler returns the HTTP interface of p:
//
//	GET /objects               one "id type" line per object
//	GET /objects/{id}.png      the object as a PNG image
//	GET /objects/{id}/dump     the recorded drawing commands
//	PUT /objects/{id}/value    set a number variable or object pointer
//	GET /events                websocket of working set revisions
//
// Panics in a handler are recovered and answered with status 500.
func (p *Preview) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/objects", p.handleList).Methods(http.MethodGet)
	r.HandleFunc("/objects/{id:[0-9]+}.png", p.handlePNG).Methods(http.MethodGet)
	r.HandleFunc("/objects/{id:[0-9]+}/dump", p.handleDump).Methods(http.MethodGet)
	r.HandleFunc("/objects/{id:[0-9]+}/value", p.handleValue).Methods(http.MethodPut)
	r.HandleFunc("/events", p.handleEvents).Methods(http.MethodGet)
	return handlers.RecoveryHandler()(r)
}

func (p *Preview) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, id := range p.ws.IDs() {
		if obj, ok := p.ws.Object(id); ok {
			fmt.Fprintf(w, "%d %s\n", id, obj.Type())
		}
	}
}

func (p *Preview) handlePNG(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := p.PNG(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(b)
}

func (p *Preview) handleDump(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := p.WriteDump(&buf, id); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (p *Preview) handleValue(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 64))
	if err != nil {
		writeError(w, errors.Wrap(err, "read body"))
		return
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(body)), 10, 32)
	if err != nil {
		http.Error(w, "value: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !p.ws.SetValue(id, uint32(v)) {
		writeError(w, errors.Wrapf(ErrNotFound, "no value object %d", id))
		return
	}
	isovt.Logger().Info("preview: value set", "id", id, "value", v)
	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (object.ID, error) {
	v, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 16)
	if err != nil {
		return 0, errors.Wrap(err, "object id")
	}
	return object.ID(v), nil
}

// writeError maps preview errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.Cause(err) {
	case ErrNotFound:
		status = http.StatusNotFound
	case ErrNotDrawable, ErrEmpty:
		status = http.StatusUnprocessableEntity
	default:
		if _, ok := errors.Cause(err).(*strconv.NumError); ok {
			status = http.StatusBadRequest
		}
	}
	isovt.Logger().Warn("preview: request failed", "status", status, "err", err)
	http.Error(w, err.Error(), status)
}
