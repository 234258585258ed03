package controller

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptCancelled is returned when the user leaves the bump prompt
// without selecting a version.
var ErrPromptCancelled = errors.New("version selection cancelled")

// runBumpPrompt shows the cursor-driven version picker and blocks until a
// choice is made or the prompt is cancelled.
func runBumpPrompt(current string, choices []BumpChoice, output io.Writer) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no version choices to prompt for")
	}

	program := tea.NewProgram(newBumpModel(current, choices), tea.WithOutput(output))

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	model, ok := final.(bumpModel)
	if !ok || !model.chosen {
		return "", ErrPromptCancelled
	}

	return model.choices[model.cursor].Version, nil
}

// bumpModel is the Bubble Tea model for the version picker.
type bumpModel struct {
	current string
	choices []BumpChoice
	cursor  int
	chosen  bool
	done    bool
}

func newBumpModel(current string, choices []BumpChoice) bumpModel {
	return bumpModel{
		current: current,
		choices: choices,
	}
}

func (bm bumpModel) Init() tea.Cmd {
	return nil
}

func (bm bumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return bm, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		bm.done = true
		return bm, tea.Quit

	case tea.KeyEnter:
		bm.chosen = true
		bm.done = true

		return bm, tea.Quit
	default:
	}

	switch keyMsg.String() {
	case "q":
		bm.done = true
		return bm, tea.Quit

	case "down", "j":
		if bm.cursor < len(bm.choices)-1 {
			bm.cursor++
		}

	case "up", "k":
		if bm.cursor > 0 {
			bm.cursor--
		}
	}

	return bm, nil
}

func (bm bumpModel) View() string {
	if bm.done {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Current version: %s\n", bm.current)
	b.WriteString("Select the next version:\n\n")

	for i, choice := range bm.choices {
		marker := "  "
		if i == bm.cursor {
			marker = "> "
		}

		fmt.Fprintf(&b, "%s%s (%s)\n", marker, choice.Version, choice.Label)
	}

	b.WriteString("\n↑/k: up | ↓/j: down | enter: select | q: cancel\n")

	return b.String()
}
