package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

// writeError maps a domain error onto a status code and a client-facing
// message. Unclassified errors become a 500 without details.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := http.StatusInternalServerError, "internal server error"

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			code, msg = http.StatusNotFound, notFoundMessage(oe)
		case domain.KindDuplicateKey:
			code, msg = http.StatusConflict, fmt.Sprintf("%s with ID %d already exists", title(oe.Entity), oe.ID)
		case domain.KindInvalidInput:
			code, msg = http.StatusBadRequest, oe.Err.Error()
		}
	}

	if code == http.StatusInternalServerError {
		s.logger.Error("http.error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeMessage(w, code, msg)
}

func notFoundMessage(oe *domain.OpError) string {
	if oe.Entity == "" {
		return "not found"
	}
	return fmt.Sprintf("%s with ID %d was not found", title(oe.Entity), oe.ID)
}

func title(entity string) string {
	if entity == "" {
		return "Entity"
	}
	return strings.ToUpper(entity[:1]) + entity[1:]
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path))
}

// pathID reads a numeric route variable.
func pathID(r *http.Request, name string) (domain.ID, error) {
	id, err := domain.ParseID(mux.Vars(r)[name])
	if err != nil {
		return 0, domain.InvalidInput("httpapi.path", name, "must be a positive integer")
	}
	return id, nil
}

// pathIDs reads several route variables, stopping at the first bad one.
func pathIDs(r *http.Request, names ...string) ([]domain.ID, error) {
	out := make([]domain.ID, 0, len(names))
	for _, n := range names {
		id, err := pathID(r, n)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// decodeBody reads a JSON object. An empty body decodes to the zero value.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.InvalidInput("httpapi.decode", "body", "malformed JSON: "+err.Error())
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return domain.InvalidInput("httpapi.decode", "body", "unexpected data after the JSON object")
	}
	return nil
}
