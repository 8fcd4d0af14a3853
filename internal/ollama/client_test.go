package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerate_StreamsAndConcatenates(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got)
		fmt.Fprintln(w, `{"model":"llama2","response":"Hello ","done":false}`)
		fmt.Fprintln(w, `not json`)
		fmt.Fprintln(w, `{"model":"llama2","response":"farmer","done":false}`)
		fmt.Fprintln(w, `{"model":"llama2","response":"","done":true,"done_reason":"stop","eval_count":2,"eval_duration":2000000}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/", 5*time.Second)
	res, err := c.Generate(context.Background(), "llama2", "hi", map[string]any{"temperature": 0.0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Text != "Hello farmer" {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if res.Meta.DoneReason != "stop" || res.Meta.EvalCount != 2 || res.Meta.EvalDuration != 2*time.Millisecond {
		t.Fatalf("unexpected meta %+v", res.Meta)
	}
	if got.Model != "llama2" || got.Prompt != "hi" || !got.Stream {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestGenerate_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, time.Second).Generate(context.Background(), "nope", "hi", nil)
	if err == nil || !strings.Contains(err.Error(), "model not found") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestGenerate_StreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"error":"out of memory"}`)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, time.Second).Generate(context.Background(), "m", "hi", nil)
	if err == nil || !strings.Contains(err.Error(), "out of memory") {
		t.Fatalf("expected stream error, got %v", err)
	}
}

func TestGenerate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := NewClient(url, time.Second).Generate(context.Background(), "m", "hi", nil); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestListAndLoadedModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			fmt.Fprint(w, `{"models":[{"name":"llama2:latest"},{"name":"mistral:7b"}]}`)
		case "/api/ps":
			fmt.Fprint(w, `{"models":[{"name":"mistral:7b"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)
	all, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(all) != 2 || all[0] != "llama2:latest" {
		t.Fatalf("unexpected models %v", all)
	}
	loaded, err := c.LoadedModels(context.Background())
	if err != nil {
		t.Fatalf("LoadedModels: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "mistral:7b" {
		t.Fatalf("unexpected loaded models %v", loaded)
	}
}

type stubGenerator struct {
	prompt string
	text   string
	err    error
}

func (s *stubGenerator) Generate(_ context.Context, _, prompt string, _ map[string]any) (Result, error) {
	s.prompt = prompt
	return Result{Text: s.text}, s.err
}

func TestEnhancer(t *testing.T) {
	g := &stubGenerator{text: "  A richer prompt.\n"}
	e := &Enhancer{Client: g, Model: "llama2"}
	res, err := e.Enhance(context.Background(), "base scenario")
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if res.Text != "A richer prompt." {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if !strings.Contains(g.prompt, "\n\nbase scenario\n\nGenerated prompt:") {
		t.Fatalf("instruction not wrapped: %q", g.prompt)
	}
}

func TestEnhancer_EmptyReply(t *testing.T) {
	e := &Enhancer{Client: &stubGenerator{text: "   "}, Model: "llama2"}
	if _, err := e.Enhance(context.Background(), "base"); err == nil {
		t.Fatal("expected error for empty reply")
	}
}
