package interactive

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/farmprompts/internal/ollama"
)

type counterPrompts struct{ n int }

func (c *counterPrompts) Generate() string {
	c.n++
	return "base scenario " + strings.Repeat("#", c.n)
}

type stubEnhancer struct {
	text string
	err  error
}

func (s stubEnhancer) Enhance(_ context.Context, base string) (ollama.Result, error) {
	if s.err != nil {
		return ollama.Result{}, s.err
	}
	return ollama.Result{Text: s.text + " <- " + base, Meta: ollama.Meta{EvalCount: 12}}, nil
}

func newTestModel(e Enhancer) *model {
	m := newModel(Options{Prompts: &counterPrompts{}, Enhancer: e, Host: "http://ollama:11434", Model: "llama2", Debug: true})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestInitStartsLoading(t *testing.T) {
	m := newTestModel(stubEnhancer{text: "rich"})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	if !m.isLoading || m.base == "" {
		t.Fatalf("expected loading with a base prompt; loading=%v base=%q", m.isLoading, m.base)
	}
	if !strings.Contains(m.View(), "Generating prompt...") {
		t.Fatalf("expected spinner text in view:\n%s", m.View())
	}
}

func TestPromptReady_Success(t *testing.T) {
	m := newTestModel(stubEnhancer{text: "rich"})
	m.Init()

	msg := enhanceCmd(m.opts.Enhancer, m.base, time.Second)()
	m2, _ := m.Update(msg)
	m = m2.(*model)

	if m.isLoading || m.err != nil {
		t.Fatalf("expected idle without error; loading=%v err=%v", m.isLoading, m.err)
	}
	if !strings.HasPrefix(m.enhanced, "rich <- base scenario") {
		t.Fatalf("unexpected enhanced prompt %q", m.enhanced)
	}
	view := m.View()
	for _, want := range []string{"Generated Prompt:", "Model: llama2", "1 generated", "12 Tokens"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPromptReady_ErrorFallsBackToBase(t *testing.T) {
	m := newTestModel(stubEnhancer{err: errors.New("connection refused")})
	m.Init()

	m2, _ := m.Update(enhanceCmd(m.opts.Enhancer, m.base, 0)())
	m = m2.(*model)

	if m.err == nil {
		t.Fatal("expected error to be kept")
	}
	if m.enhanced != m.base {
		t.Fatalf("expected fallback to base prompt, got %q", m.enhanced)
	}
	if !strings.Contains(m.View(), "connection refused") {
		t.Fatalf("expected error in view:\n%s", m.View())
	}
}

func TestEnterRegenerates(t *testing.T) {
	m := newTestModel(stubEnhancer{text: "rich"})
	m.Init()
	first := m.base

	// Ignored while a request is in flight.
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.base != first {
		t.Fatal("expected enter to be ignored while loading")
	}

	m.Update(enhanceCmd(m.opts.Enhancer, m.base, 0)())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.isLoading || m.base == first {
		t.Fatalf("expected a new generation; loading=%v base=%q", m.isLoading, m.base)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(stubEnhancer{text: "rich"})
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %s", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %s", key.String())
		}
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := newModel(Options{Prompts: &counterPrompts{}, Enhancer: stubEnhancer{}})
	if m.View() != "Initializing..." {
		t.Fatalf("unexpected view %q", m.View())
	}
}

func TestRunRequiresDependencies(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Fatal("expected error without generator and enhancer")
	}
}
