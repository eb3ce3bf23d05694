package extract

import (
	"testing"
)

func TestApply_EmptyFields(t *testing.T) {
	results := Apply([]byte(`{"name":"alice"}`), nil)
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %v", results)
	}
}

func TestApply_Success(t *testing.T) {
	body := []byte(`{"stats":{"number_subscribers":2,"monthly_revenue":6.28,"message":"ok"}}`)
	fields := []Field{
		{Name: "subscribers", Expr: "$.stats.number_subscribers"},
		{Name: "monthly", Expr: "$.stats.monthly_revenue"},
	}

	res := Apply(body, fields)
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got=%d", len(res))
	}
	for _, r := range res {
		if !r.Success {
			t.Fatalf("expected all success, got fail: %+v", r)
		}
	}
	if res[0].Name != "subscribers" || res[0].Value != "2" {
		t.Fatalf("unexpected first result %+v", res[0])
	}
	if res[1].Value != "6.28" {
		t.Fatalf("expected monthly=6.28, got %q", res[1].Value)
	}
}

func TestApply_KeepsDeclaredOrder(t *testing.T) {
	fields := []Field{
		{Name: "zzz", Expr: "$.a"},
		{Name: "aaa", Expr: "$.b"},
	}
	res := Apply([]byte(`{"a":1,"b":2}`), fields)
	if res[0].Name != "zzz" || res[1].Name != "aaa" {
		t.Fatalf("expected declared order, got %+v", res)
	}
}

func TestApply_NonJSONBody_FailsAll(t *testing.T) {
	res := Apply([]byte("hello"), []Field{{Name: "x", Expr: "$.x"}})
	if len(res) != 1 || res[0].Success {
		t.Fatalf("expected single failure, got %+v", res)
	}
}

func TestApply_Failures(t *testing.T) {
	cases := []struct {
		name string
		body string
		expr string
	}{
		{"invalid jsonpath", `{"token":"abc"}`, "$.token["},
		{"empty expression", `{"name":"alice"}`, ""},
		{"missing value", `{"x":1}`, "$.token"},
		{"null value", `{"name":null}`, "$.name"},
	}
	for _, c := range cases {
		res := Apply([]byte(c.body), []Field{{Name: "f", Expr: c.expr}})
		if len(res) != 1 || res[0].Success {
			t.Fatalf("%s: expected failure, got %+v", c.name, res)
		}
		if res[0].Message == "" {
			t.Fatalf("%s: expected message", c.name)
		}
	}
}

func TestApply_ValueKinds(t *testing.T) {
	body := []byte(`{"active":true,"meta":{"key":"val"},"items":["single"],"big":1200000}`)
	res := Apply(body, []Field{
		{Name: "active", Expr: "$.active"},
		{Name: "meta", Expr: "$.meta"},
		{Name: "item", Expr: "$.items[0]"},
		{Name: "big", Expr: "$.big"},
	})

	want := map[string]string{
		"active": "true",
		"meta":   `{"key":"val"}`,
		"item":   "single",
		"big":    "1200000",
	}
	for _, r := range res {
		if !r.Success {
			t.Fatalf("%s: unexpected failure: %s", r.Name, r.Message)
		}
		if r.Value != want[r.Name] {
			t.Fatalf("%s: expected %q, got %q", r.Name, want[r.Name], r.Value)
		}
	}
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" revenue = $.stats.monthly_revenue ")
	if err != nil {
		t.Fatalf("ParseField error: %v", err)
	}
	if f.Name != "revenue" || f.Expr != "$.stats.monthly_revenue" {
		t.Fatalf("unexpected field %+v", f)
	}

	f, err = ParseField("$.stats")
	if err != nil || f.Name != "$.stats" || f.Expr != "$.stats" {
		t.Fatalf("unexpected bare field %+v (err=%v)", f, err)
	}

	for _, bad := range []string{"", "=$.x", "name="} {
		if _, err := ParseField(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
