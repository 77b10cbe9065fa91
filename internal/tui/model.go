// Package tui is the full-screen front end over an inventory session.
package tui

import (
	"fmt"

	"shoestock/internal/backup"
	"shoestock/internal/inventory"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

type Screen int

const (
	MenuScreen Screen = iota
	CaptureScreen
	ViewScreen
	ValueScreen
	SearchScreen
	RestockScreen
	SaleScreen
	BackupScreen
	RestoreScreen
)

// Options carries the settings the screens need besides the session.
type Options struct {
	File         string
	BackupDir    string
	BackupFormat string
	Backups      *backup.Service
}

type Model struct {
	svc           *inventory.Service
	opts          Options
	currentScreen Screen
	menuModel     *MenuModel
	captureModel  *CaptureModel
	tableModel    *TableModel
	searchModel   *SearchModel
	adviceModel   *AdviceModel
	backupModel   *BackupModel
	restoreModel  *RestoreModel
	status        string
	err           error
	quitting      bool
	width         int
	height        int
}

func NewModel(svc *inventory.Service, opts Options) Model {
	if opts.Backups == nil {
		opts.Backups = backup.NewService()
	}
	if opts.BackupFormat == "" {
		opts.BackupFormat = backup.FormatJSON
	}
	return Model{
		svc:           svc,
		opts:          opts,
		currentScreen: MenuScreen,
		menuModel:     NewMenuModel(),
		captureModel:  NewCaptureModel(svc, opts.File),
		tableModel:    NewTableModel(svc),
		searchModel:   NewSearchModel(svc),
		adviceModel:   NewAdviceModel(svc),
		backupModel:   NewBackupModel(svc, opts),
		restoreModel:  NewRestoreModel(svc, opts),
	}
}

// Init imports the backing file, as the console does on start.
func (m Model) Init() tea.Cmd {
	return RequestImport()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuModel.SetSize(msg.Width, msg.Height)
		m.captureModel.SetSize(msg.Width, msg.Height)
		m.tableModel.SetSize(msg.Width, msg.Height)
		m.searchModel.SetSize(msg.Width, msg.Height)
		m.adviceModel.SetSize(msg.Width, msg.Height)
		m.backupModel.SetSize(msg.Width, msg.Height)
		m.restoreModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			// Other screens take q as text.
			if m.currentScreen == MenuScreen {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if m.currentScreen != MenuScreen {
				m.currentScreen = MenuScreen
				return m, nil
			}
		}

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		m.status = ""
		m.err = nil
		return m, m.enter(msg.Screen)

	case importRequestMsg:
		m.importInventory()
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		m.err = nil
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case BackupCompleteMsg:
		_, cmd = m.backupModel.Update(msg)
		return m, cmd

	case RestoreCompleteMsg:
		_, cmd = m.restoreModel.Update(msg)
		return m, cmd
	}

	switch m.currentScreen {
	case MenuScreen:
		newMenuModel, cmd := m.menuModel.Update(msg)
		m.menuModel = newMenuModel.(*MenuModel)
		return m, cmd
	case CaptureScreen:
		newCaptureModel, cmd := m.captureModel.Update(msg)
		m.captureModel = newCaptureModel.(*CaptureModel)
		return m, cmd
	case ViewScreen, ValueScreen:
		newTableModel, cmd := m.tableModel.Update(msg)
		m.tableModel = newTableModel.(*TableModel)
		return m, cmd
	case SearchScreen:
		newSearchModel, cmd := m.searchModel.Update(msg)
		m.searchModel = newSearchModel.(*SearchModel)
		return m, cmd
	case RestockScreen, SaleScreen:
		newAdviceModel, cmd := m.adviceModel.Update(msg)
		m.adviceModel = newAdviceModel.(*AdviceModel)
		return m, cmd
	case BackupScreen:
		newBackupModel, cmd := m.backupModel.Update(msg)
		m.backupModel = newBackupModel.(*BackupModel)
		return m, cmd
	case RestoreScreen:
		newRestoreModel, cmd := m.restoreModel.Update(msg)
		m.restoreModel = newRestoreModel.(*RestoreModel)
		return m, cmd
	}

	return m, cmd
}

// enter prepares a screen with the current store contents.
func (m Model) enter(screen Screen) tea.Cmd {
	switch screen {
	case CaptureScreen:
		return m.captureModel.Reset()
	case ViewScreen:
		m.tableModel.Load(false)
	case ValueScreen:
		m.tableModel.Load(true)
	case SearchScreen:
		return m.searchModel.Reset()
	case RestockScreen:
		return m.adviceModel.Restock()
	case SaleScreen:
		m.adviceModel.Sale()
	case BackupScreen:
		m.backupModel.Reset()
	case RestoreScreen:
		m.restoreModel.Reset()
	}
	return nil
}

func (m *Model) importInventory() {
	n, err := m.svc.Import()
	if err != nil {
		log.Warn().Err(err).Msg("tui import failed")
		m.status = ""
		m.err = fmt.Errorf("cannot import stock from file: %w", err)
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("Inventory successfully imported from '%s' (%d records)", m.opts.File, n)
}

func (m Model) View() string {
	if m.quitting {
		return "Bye bye!\n"
	}

	var content string
	switch m.currentScreen {
	case MenuScreen:
		content = m.menuModel.View()
	case CaptureScreen:
		content = m.captureModel.View()
	case ViewScreen, ValueScreen:
		content = m.tableModel.View()
	case SearchScreen:
		content = m.searchModel.View()
	case RestockScreen, SaleScreen:
		content = m.adviceModel.View()
	case BackupScreen:
		content = m.backupModel.View()
	case RestoreScreen:
		content = m.restoreModel.View()
	}

	if m.status != "" {
		content += "\n" + successStyle.Margin(1, 0).Render(m.status)
	}
	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Margin(1, 0)
		content += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return content
}

type ScreenChangeMsg struct {
	Screen Screen
}

type ErrorMsg struct {
	Err error
}

type StatusMsg struct {
	Text string
}

type importRequestMsg struct{}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// RequestImport asks the root model to import the backing file. The import
// runs inside Update so the store is only touched from one goroutine.
func RequestImport() tea.Cmd {
	return func() tea.Msg {
		return importRequestMsg{}
	}
}
