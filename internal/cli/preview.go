package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/graphio"
	"github.com/matzehuels/dotkit/pkg/pipeline"
	"github.com/matzehuels/dotkit/pkg/render"
)

// previewCommand creates the preview command, which compiles a document and
// opens the generated DOT in an interactive pager.
func (c *CLI) previewCommand() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Browse the generated DOT in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := graphio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			dot, err := runner.Build(cmd.Context(), doc, pipeline.Options{
				Style:   style,
				Formats: []string{string(render.FormatDOT)},
			})
			if err != nil {
				return err
			}

			model := newPreviewModel(args[0], dot)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "style profile TOML file")

	return cmd
}

// previewModel is the bubbletea model for the DOT pager.
type previewModel struct {
	title  string
	lines  []string
	offset int
	height int
}

func newPreviewModel(title, dot string) previewModel {
	return previewModel{
		title:  title,
		lines:  strings.Split(strings.TrimRight(dot, "\n"), "\n"),
		height: 20,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "pgup", "b":
			m.offset -= m.height
			if m.offset < 0 {
				m.offset = 0
			}
		case "pgdown", "f", " ":
			m.offset += m.height
			if m.offset > m.maxOffset() {
				m.offset = m.maxOffset()
			}
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 4
		if m.height < 5 {
			m.height = 5
		}
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m previewModel) maxOffset() int {
	max := len(m.lines) - m.height
	if max < 0 {
		return 0
	}
	return max
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("up/down scroll  space page  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(StyleValue.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d-%d/%d]", m.offset+1, end, len(m.lines))))

	return b.String()
}
