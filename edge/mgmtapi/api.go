// Copyright 2025 Anapaya Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mgmtapi implements the http management API of the edge router.
package mgmtapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/netip"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sixlowpan/edgerouter/edge"
	"github.com/sixlowpan/edgerouter/pkg/log"
	"github.com/sixlowpan/edgerouter/pkg/lowpan"
	api "github.com/sixlowpan/edgerouter/private/mgmtapi"
)

// BaseURL is the prefix of all API routes.
const BaseURL = "/api/v1"

// Router is the part of the edge router the API operates on.
type Router interface {
	Snapshot() (edge.Snapshot, error)
	DefineContext(id uint8, prefix netip.Prefix, lifetime uint16) (lowpan.Context, error)
	AllocateContext(prefix netip.Prefix, lifetime uint16) (lowpan.Context, error)
	AddPrefix(p *lowpan.Prefix) error
}

// Server implements the http management API of the edge router.
type Server struct {
	Router Router
}

// ContextRequest is the body of context definitions and allocations.
type ContextRequest struct {
	Prefix   netip.Prefix `json:"prefix"`
	Lifetime uint16       `json:"lifetime"`
}

// VersionResponse carries the current ABRO version.
type VersionResponse struct {
	Version lowpan.Version `json:"version"`
}

// LogLevel is the body of the log level resource.
type LogLevel struct {
	Level string `json:"level"`
}

// Handler returns the API mounted under BaseURL. Cross origin requests are
// allowed from any origin.
func Handler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
	}))
	r.Route(BaseURL, func(r chi.Router) {
		r.Get("/snapshot", s.GetSnapshot)
		r.Get("/version", s.GetVersion)
		r.Get("/contexts", s.GetContexts)
		r.Post("/contexts", s.AllocateContext)
		r.Get("/contexts/{id}", s.GetContext)
		r.Put("/contexts/{id}", s.DefineContext)
		r.Get("/prefixes", s.GetPrefixes)
		r.Post("/prefixes", s.AddPrefix)
		r.Get("/log/level", s.GetLogLevel)
		r.Put("/log/level", s.SetLogLevel)
	})
	return r
}

// GetSnapshot returns the complete border router state.
func (s *Server) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	api.JSONResponse(w, http.StatusOK, snap)
}

// GetVersion returns the current ABRO version.
func (s *Server) GetVersion(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	api.JSONResponse(w, http.StatusOK, VersionResponse{Version: snap.Version})
}

// GetContexts lists the contexts ordered by ID.
func (s *Server) GetContexts(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	api.JSONResponse(w, http.StatusOK, snap.Contexts)
}

// GetContext returns a single context.
func (s *Server) GetContext(w http.ResponseWriter, r *http.Request) {
	id, ok := contextID(w, r)
	if !ok {
		return
	}
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	for _, c := range snap.Contexts {
		if c.ID == id {
			api.JSONResponse(w, http.StatusOK, c)
			return
		}
	}
	api.ErrorResponse(w, api.Problem{
		Status: http.StatusNotFound,
		Title:  "context not found",
		Type:   api.StringRef(api.NotFound),
	})
}

// DefineContext creates or replaces the context with the ID of the path.
func (s *Server) DefineContext(w http.ResponseWriter, r *http.Request) {
	id, ok := contextID(w, r)
	if !ok {
		return
	}
	var req ContextRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, err := s.Router.DefineContext(id, req.Prefix, req.Lifetime)
	if err != nil {
		errorResponse(w, "defining context", err)
		return
	}
	api.JSONResponse(w, http.StatusOK, ctx)
}

// AllocateContext binds the prefix of the request to a context ID.
func (s *Server) AllocateContext(w http.ResponseWriter, r *http.Request) {
	var req ContextRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, err := s.Router.AllocateContext(req.Prefix, req.Lifetime)
	if err != nil {
		errorResponse(w, "allocating context", err)
		return
	}
	api.JSONResponse(w, http.StatusCreated, ctx)
}

// GetPrefixes lists the prefixes in insertion order.
func (s *Server) GetPrefixes(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	api.JSONResponse(w, http.StatusOK, snap.Prefixes)
}

// AddPrefix appends the prefix of the request.
func (s *Server) AddPrefix(w http.ResponseWriter, r *http.Request) {
	var p lowpan.Prefix
	if !decode(w, r, &p) {
		return
	}
	if err := s.Router.AddPrefix(&p); err != nil {
		errorResponse(w, "adding prefix", err)
		return
	}
	api.JSONResponse(w, http.StatusCreated, p)
}

// GetLogLevel returns the current log level.
func (s *Server) GetLogLevel(w http.ResponseWriter, r *http.Request) {
	api.JSONResponse(w, http.StatusOK, LogLevel{Level: log.CurrentLevel()})
}

// SetLogLevel changes the log level at runtime.
func (s *Server) SetLogLevel(w http.ResponseWriter, r *http.Request) {
	var req LogLevel
	if !decode(w, r, &req) {
		return
	}
	if err := log.SetLevel(req.Level); err != nil {
		api.ErrorResponse(w, api.Problem{
			Detail: api.StringRef(err.Error()),
			Status: http.StatusBadRequest,
			Title:  "invalid log level",
			Type:   api.StringRef(api.BadRequest),
		})
		return
	}
	api.JSONResponse(w, http.StatusOK, LogLevel{Level: log.CurrentLevel()})
}

func (s *Server) snapshot(w http.ResponseWriter) (edge.Snapshot, bool) {
	snap, err := s.Router.Snapshot()
	if err != nil {
		errorResponse(w, "reading state", err)
		return edge.Snapshot{}, false
	}
	return snap, true
}

func contextID(w http.ResponseWriter, r *http.Request) (uint8, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		api.ErrorResponse(w, api.Problem{
			Detail: api.StringRef(err.Error()),
			Status: http.StatusBadRequest,
			Title:  "invalid context id",
			Type:   api.StringRef(api.BadRequest),
		})
		return 0, false
	}
	return uint8(id), true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		api.ErrorResponse(w, api.Problem{
			Detail: api.StringRef(err.Error()),
			Status: http.StatusBadRequest,
			Title:  "malformed request body",
			Type:   api.StringRef(api.BadRequest),
		})
		return false
	}
	return true
}

// errorResponse maps the edge router error kinds to problem responses.
func errorResponse(w http.ResponseWriter, title string, err error) {
	p := api.Problem{
		Detail: api.StringRef(err.Error()),
		Title:  title,
	}
	switch {
	case errors.Is(err, edge.ErrNotInitialized):
		p.Status, p.Type = http.StatusServiceUnavailable, api.StringRef(api.Unavailable)
	case errors.Is(err, edge.ErrCacheFull):
		p.Status, p.Type = http.StatusConflict, api.StringRef(api.Conflict)
	case errors.Is(err, edge.ErrInvalidContextID),
		errors.Is(err, edge.ErrInvalidPrefix),
		errors.Is(err, edge.ErrNullContext),
		errors.Is(err, edge.ErrNullPrefix):
		p.Status, p.Type = http.StatusBadRequest, api.StringRef(api.BadRequest)
	default:
		p.Status, p.Type = http.StatusInternalServerError, api.StringRef(api.InternalError)
	}
	api.ErrorResponse(w, p)
}
