package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PaesslerAG/jsonpath"

	"github.com/VakaruGIT/NSMS/internal/agency"
)

type apiTest struct {
	t *testing.T
	a *agency.Agency
	h http.Handler
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	a := agency.New()
	return &apiTest{t: t, a: a, h: NewServer(a).Handler()}
}

// do sends a request and decodes the JSON response.
func (at *apiTest) do(method, path string, body any) (int, any) {
	at.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			at.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	at.h.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		at.t.Fatalf("%s %s: expected json content-type, got %q (body=%s)", method, path, ct, rec.Body.String())
	}
	var doc any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		at.t.Fatalf("%s %s: invalid json %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, doc
}

// must is do that fails the test on an unexpected status.
func (at *apiTest) must(want int, method, path string, body any) any {
	at.t.Helper()
	code, doc := at.do(method, path, body)
	if code != want {
		at.t.Fatalf("%s %s: expected status %d, got %d (body=%v)", method, path, want, code, doc)
	}
	return doc
}

// get evaluates a JSONPath expression against a decoded document.
func (at *apiTest) get(doc any, expr string) any {
	at.t.Helper()
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		at.t.Fatalf("jsonpath %s: %v (doc=%v)", expr, err, doc)
	}
	return v
}

// id reads a numeric field as an int64.
func (at *apiTest) id(doc any, expr string) int64 {
	at.t.Helper()
	f, ok := at.get(doc, expr).(float64)
	if !ok {
		at.t.Fatalf("jsonpath %s: expected number in %v", expr, doc)
	}
	return int64(f)
}

func newRecorder(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, body))
	return rec
}
