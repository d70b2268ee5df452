package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jasonfuller/relic-quest/internal/session"
	"github.com/jasonfuller/relic-quest/pkg/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mapStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	playerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	relicStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	villainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	fogStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	lossStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var titleCaser = cases.Title(language.English)

// ConsoleUI is the bubbletea model for an active play session.
type ConsoleUI struct {
	client *apiClient
	view   *session.View

	log    viewport.Model
	width  int
	status string
	err    error
	busy   bool
}

func NewConsoleUI(client *apiClient, view *session.View) *ConsoleUI {
	ui := &ConsoleUI{
		client: client,
		view:   view,
		log:    viewport.New(76, 6),
		width:  80,
	}
	ui.refreshLog()
	return ui
}

// refreshLog rewrites the event-log pane and keeps it scrolled to the
// newest entry.
func (ui *ConsoleUI) refreshLog() {
	events := ui.view.Save.State.EventLog
	ui.log.SetContent(wordwrap.String(strings.Join(events, "\n"), ui.log.Width))
	ui.log.GotoBottom()
}

type sessionMsg struct {
	view *session.View
	err  error
}

func (ui *ConsoleUI) Init() tea.Cmd {
	return nil
}

func (ui *ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.log.Width = max(msg.Width-4, 20)
		ui.refreshLog()
		return ui, nil

	case sessionMsg:
		ui.busy = false
		if msg.err != nil {
			ui.err = msg.err
			return ui, nil
		}
		ui.err = nil
		ui.view = msg.view
		ui.refreshLog()
		return ui, nil

	case tea.KeyMsg:
		return ui.handleKey(msg)
	}

	var cmd tea.Cmd
	ui.log, cmd = ui.log.Update(msg)
	return ui, cmd
}

func (ui *ConsoleUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ui, tea.Quit

	case "up", "k":
		return ui.moveCmd("north")
	case "down", "j":
		return ui.moveCmd("south")
	case "left", "h":
		return ui.moveCmd("west")
	case "right", "l":
		return ui.moveCmd("east")

	case "r":
		if ui.busy {
			return ui, nil
		}
		ui.busy = true
		levelID := ui.view.Save.LevelID
		return ui, func() tea.Msg {
			view, err := ui.client.restartSession(levelID)
			return sessionMsg{view: view, err: err}
		}

	case "c":
		log := strings.Join(ui.view.Save.State.EventLog, "\n")
		if err := clipboard.WriteAll(log); err != nil {
			ui.status = "Copy failed"
		} else {
			ui.status = "Event log copied"
		}
		return ui, nil
	}

	return ui, nil
}

func (ui *ConsoleUI) moveCmd(direction string) (tea.Model, tea.Cmd) {
	if ui.busy || ui.view.Save.State.Status.IsTerminal() {
		return ui, nil
	}
	ui.busy = true
	ui.status = ""
	return ui, func() tea.Msg {
		view, err := ui.client.move(direction)
		return sessionMsg{view: view, err: err}
	}
}

func (ui *ConsoleUI) View() string {
	if ui.view == nil {
		return "Loading..."
	}

	state := ui.view.Save.State
	var b strings.Builder

	b.WriteString(titleStyle.Render("Relic Quest"))
	b.WriteString("\n\n")
	b.WriteString(mapStyle.Render(renderGrid(ui.view.Level)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Room: %s   Moves: %d   Relics: %d\n",
		state.Player.Location, state.MoveCount, len(state.CollectedItems)))

	switch state.Status {
	case game.StatusCompleted:
		b.WriteString(winStyle.Render(statusLine(ui.view)) + "\n")
	case game.StatusGameOver:
		b.WriteString(lossStyle.Render(statusLine(ui.view)) + "\n")
	}

	if state.Message != "" {
		b.WriteString(messageStyle.Render(wordwrap.String(state.Message, ui.width-2)) + "\n")
	}
	if ui.err != nil {
		b.WriteString(lossStyle.Render(ui.err.Error()) + "\n")
	}
	if ui.status != "" {
		b.WriteString(helpStyle.Render(ui.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(mapStyle.Render(ui.log.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows/hjkl move · r restart · c copy log · q quit"))
	return b.String()
}

func statusLine(view *session.View) string {
	state := view.Save.State
	line := titleCaser.String(strings.ReplaceAll(string(state.Status), "_", " "))
	if view.Score != nil {
		line += fmt.Sprintf(" — Score: %d", *view.Score)
	}
	return line
}

// renderGrid draws the level view as a coordinate grid. Hidden rooms show
// as fog; the projection already redacted anything the player may not see.
func renderGrid(view game.LevelView) string {
	cells := make(map[[2]int]string)
	for _, room := range view.Rooms {
		cells[[2]int{room.X, room.Y}] = room.Render
	}

	var rows []string
	for y := 0; y < view.Grid.Height; y++ {
		var row []string
		for x := 0; x < view.Grid.Width; x++ {
			render, ok := cells[[2]int{x, y}]
			if !ok {
				row = append(row, "  ")
				continue
			}
			row = append(row, renderCell(render))
		}
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

func renderCell(render string) string {
	switch render {
	case game.RenderPlayer:
		return playerStyle.Render("@ ")
	case game.RenderVillain:
		return villainStyle.Render("V ")
	case game.RenderRelic:
		return relicStyle.Render("* ")
	case game.RenderHidden:
		return fogStyle.Render("░░")
	default:
		return emptyStyle.Render("· ")
	}
}
