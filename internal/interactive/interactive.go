// internal/interactive/interactive.go

// Package interactive runs a terminal loop that builds a base farming scenario,
// asks a language model to expand it, and shows the result until the user quits.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mwiater/farmprompts/internal/logging"
	"github.com/mwiater/farmprompts/internal/ollama"
)

// BaseGenerator produces the scenario handed to the model.
type BaseGenerator interface {
	Generate() string
}

// Enhancer expands a base scenario.
type Enhancer interface {
	Enhance(ctx context.Context, base string) (ollama.Result, error)
}

// Options configures the loop.
type Options struct {
	Prompts  BaseGenerator
	Enhancer Enhancer
	// Host and Model are shown in the header.
	Host  string
	Model string
	// Debug shows server timings under each prompt.
	Debug bool
	// Timeout bounds each model call. Zero means no extra bound.
	Timeout time.Duration
}

// promptReadyMsg carries a finished generation. On error the base prompt
// stands in for the enhanced one.
type promptReadyMsg struct {
	base   string
	result ollama.Result
	err    error
}

// tickMsg keeps the elapsed timer moving while a request is in flight.
type tickMsg time.Time

// model is the bubbletea model for the loop.
type model struct {
	opts   Options
	logger zerolog.Logger

	spinner  spinner.Model
	viewport viewport.Model

	isLoading        bool
	requestStartTime time.Time

	base     string
	enhanced string
	meta     ollama.Meta
	err      error
	count    int

	width, height int
}

func newModel(opts Options) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		opts:     opts,
		logger:   logging.Component("interactive"),
		spinner:  s,
		viewport: viewport.New(100, 10),
	}
}

// Run starts the loop and blocks until the user quits.
func Run(opts Options) error {
	if opts.Prompts == nil || opts.Enhancer == nil {
		return errors.New("interactive mode needs a prompt generator and an enhancer")
	}
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init kicks off the first generation.
func (m *model) Init() tea.Cmd {
	return m.startGeneration()
}

// startGeneration draws a new base prompt synchronously, so the random source
// is only touched from Update, and sends it to the model in a command.
func (m *model) startGeneration() tea.Cmd {
	m.base = m.opts.Prompts.Generate()
	m.enhanced = ""
	m.meta = ollama.Meta{}
	m.err = nil
	m.isLoading = true
	m.requestStartTime = time.Now()
	return tea.Batch(m.spinner.Tick, enhanceCmd(m.opts.Enhancer, m.base, m.opts.Timeout), tickCmd())
}

// enhanceCmd calls the enhancer off the UI goroutine.
func enhanceCmd(e Enhancer, base string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		res, err := e.Enhance(ctx, base)
		return promptReadyMsg{base: base, result: res, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles keys, window resizes and finished generations.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter", "n":
			if !m.isLoading {
				return m, m.startGeneration()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 3
		footerHeight := 3
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerHeight-footerHeight)

	case promptReadyMsg:
		m.isLoading = false
		m.count++
		if msg.err != nil {
			m.err = msg.err
			m.enhanced = msg.base
			m.logger.Warn().Err(msg.err).Msg("enhancement failed, showing base prompt")
		} else {
			m.enhanced = msg.result.Text
			m.meta = msg.result.Meta
			m.logger.Debug().Dur("elapsed", msg.result.Elapsed).Msg("prompt enhanced")
		}
		m.viewport.GotoTop()
		return m, nil

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the header, the current prompt pair and the key help.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("Farming Prompts Generator"),
		headerStyle.MarginLeft(1).Render(fmt.Sprintf("Host: %s", m.opts.Host)),
		headerStyle.MarginLeft(1).Render(fmt.Sprintf("Model: %s", m.opts.Model)),
	)
	b.WriteString(status + "\n\n")

	m.viewport.SetContent(m.body())
	b.WriteString(m.viewport.View())

	if m.isLoading {
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		b.WriteString(fmt.Sprintf("\n%s Generating prompt... %ss", m.spinner.View(), timer))
	} else {
		help := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("enter: another prompt  q: quit  (%d generated)", m.count))
		b.WriteString("\n" + help)
	}

	return b.String()
}

func (m *model) body() string {
	wrap := lipgloss.NewStyle().Width(max(20, m.width-2))
	label := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(label.Render("Base scenario:") + "\n")
	b.WriteString(faint.Inherit(wrap).Render(m.base) + "\n\n")

	if m.isLoading {
		return b.String()
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errorStyle.Inherit(wrap).Render(fmt.Sprintf("Error generating prompt with Ollama: %v", m.err)) + "\n\n")
	}

	b.WriteString(label.Foreground(lipgloss.Color("5")).Render("Generated Prompt:") + "\n")
	b.WriteString(wrap.Render(m.enhanced))

	if m.opts.Debug && m.err == nil {
		b.WriteString("\n\n" + formatMeta(m.meta))
	}
	return b.String()
}

// formatMeta renders server timings in one line.
func formatMeta(meta ollama.Meta) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return style.Render(fmt.Sprintf(
		"  >>> [Model Load Duration: %.1fs] [Prompt Eval: %.1fs | %d Tokens] [Response Eval: %.1fs | %d Tokens] [Total Duration: %.1fs]",
		meta.LoadDuration.Seconds(),
		meta.PromptEvalDuration.Seconds(),
		meta.PromptEvalCount,
		meta.EvalDuration.Seconds(),
		meta.EvalCount,
		meta.TotalDuration.Seconds(),
	))
}
