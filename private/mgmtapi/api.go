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

package mgmtapi

import (
	"encoding/json"
	"net/http"
)

// Problem types.
const (
	// BadRequest is the problem type of malformed requests.
	BadRequest = "/problems/bad-request"
	// InternalError is the problem type of unexpected server errors.
	InternalError = "/problems/internal-error"
	// NotFound is the problem type of missing resources.
	NotFound = "/problems/not-found"
	// Unavailable is the problem type of resources that are not ready.
	Unavailable = "/problems/unavailable"
	// Conflict is the problem type of requests that conflict with the
	// current state, like exhausted capacity.
	Conflict = "/problems/conflict"
)

// Problem is an RFC 7807 error response.
type Problem struct {
	// Type is a URI reference that identifies the problem type.
	Type *string `json:"type,omitempty"`
	// Title is a short summary of the problem type.
	Title string `json:"title"`
	// Status is the HTTP status code.
	Status int `json:"status"`
	// Detail explains this occurrence of the problem.
	Detail *string `json:"detail,omitempty"`
}

// StringRef returns a pointer to s.
func StringRef(s string) *string {
	return &s
}

// ErrorResponse writes the problem as response.
func ErrorResponse(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	// no point in catching error here, there is nothing we can do about it anymore.
	_ = enc.Encode(p)
}

// JSONResponse writes v indented as JSON. Encoding failures are reported
// as internal error.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		ErrorResponse(w, Problem{
			Detail: StringRef(err.Error()),
			Status: http.StatusInternalServerError,
			Title:  "unable to marshal response",
			Type:   StringRef(InternalError),
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(raw, '\n'))
}
