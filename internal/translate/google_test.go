package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleWebTranslate(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"sl": r.URL.Query().Get("sl"),
			"tl": r.URL.Query().Get("tl"),
			"q":  r.URL.Query().Get("q"),
		}
		w.Write([]byte(`[[["Привет","Hello",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	g := &GoogleWeb{Endpoint: srv.URL}
	out, err := g.Translate(context.Background(), "Hello", "en", "ru")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "Привет" {
		t.Errorf("got %q, want %q", out, "Привет")
	}
	if gotQuery["sl"] != "en" || gotQuery["tl"] != "ru" || gotQuery["q"] != "Hello" {
		t.Errorf("query params %+v", gotQuery)
	}
}

func TestGoogleWebMapsChineseCode(t *testing.T) {
	var sl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sl = r.URL.Query().Get("sl")
		w.Write([]byte(`[[["hi","你好",null,null,10]],null,"zh-CN"]`))
	}))
	defer srv.Close()

	g := &GoogleWeb{Endpoint: srv.URL}
	if _, err := g.Translate(context.Background(), "你好", "zh", "en"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if sl != "zh-CN" {
		t.Errorf("source lang sent as %q, want zh-CN", sl)
	}
}

func TestGoogleWebJoinsSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["first ","a",null,null,1],["second","b",null,null,1]],null,"en"]`))
	}))
	defer srv.Close()

	g := &GoogleWeb{Endpoint: srv.URL}
	out, err := g.Translate(context.Background(), "a b", "en", "ru")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "first second" {
		t.Errorf("got %q, want %q", out, "first second")
	}
}

func TestGoogleWebErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusTooManyRequests)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"unexpected": true}`))
		}},
		{"empty payload", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[[],null,"en"]`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := &GoogleWeb{Endpoint: srv.URL}
			if _, err := g.Translate(context.Background(), "text", "en", "ru"); err == nil {
				t.Error("Translate succeeded on a broken endpoint")
			}
		})
	}
}

func TestGoogleWebShortCircuits(t *testing.T) {
	// No server at all: local short-circuits must never hit the network.
	g := &GoogleWeb{Endpoint: "http://127.0.0.1:1"}

	out, err := g.Translate(context.Background(), "same", "en", "en")
	if err != nil || out != "same" {
		t.Errorf("same-language: got (%q, %v), want (same, nil)", out, err)
	}

	out, err = g.Translate(context.Background(), "   ", "en", "ru")
	if err != nil || out != "" {
		t.Errorf("blank text: got (%q, %v), want (\"\", nil)", out, err)
	}
}

func TestIdentity(t *testing.T) {
	out, err := Identity{}.Translate(context.Background(), "unchanged", "ja", "ru")
	if err != nil || out != "unchanged" {
		t.Errorf("Identity: got (%q, %v)", out, err)
	}
}

func TestMapLanguage(t *testing.T) {
	if got := mapLanguage("zh"); got != "zh-CN" {
		t.Errorf("mapLanguage(zh) = %q, want zh-CN", got)
	}
	if got := mapLanguage("pt"); got != "pt" {
		t.Errorf("mapLanguage(pt) = %q, want passthrough", got)
	}
}
