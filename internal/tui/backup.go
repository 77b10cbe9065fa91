package tui

import (
	"fmt"
	"strings"

	"shoestock/internal/backup"
	"shoestock/internal/inventory"
	"shoestock/internal/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type BackupModel struct {
	svc             *inventory.Service
	backups         *backup.Service
	outputDir       string
	state           BackupState
	formatSelection int
	formats         []string
	result          BackupResult
	width           int
	height          int
}

type BackupState int

const (
	BackupFormatSelectState BackupState = iota
	BackupProgressState
	BackupResultState
)

type BackupResult struct {
	RecordCount int
	FilePath    string
	Error       error
}

type BackupCompleteMsg struct {
	Result BackupResult
}

func NewBackupModel(svc *inventory.Service, opts Options) *BackupModel {
	m := &BackupModel{
		svc:       svc,
		backups:   opts.Backups,
		outputDir: opts.BackupDir,
		formats:   []string{"JSON", "BSON"},
	}
	for i, format := range m.formats {
		if strings.EqualFold(format, opts.BackupFormat) {
			m.formatSelection = i
		}
	}
	return m
}

func (m *BackupModel) Init() tea.Cmd {
	return nil
}

func (m *BackupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *BackupModel) Reset() {
	m.state = BackupFormatSelectState
	m.result = BackupResult{}
}

func (m *BackupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case BackupFormatSelectState:
			return m.updateFormatSelectState(msg)
		case BackupProgressState:
			return m, nil
		case BackupResultState:
			if msg.String() == "enter" || msg.String() == " " {
				m.Reset()
				return m, nil
			}
		}

	case BackupCompleteMsg:
		m.result = msg.Result
		m.state = BackupResultState
		return m, nil
	}

	return m, nil
}

func (m *BackupModel) updateFormatSelectState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.formatSelection > 0 {
			m.formatSelection--
		}
	case "down", "j":
		if m.formatSelection < len(m.formats)-1 {
			m.formatSelection++
		}
	case "enter":
		return m.startBackup()
	}
	return m, nil
}

func (m *BackupModel) format() string {
	return strings.ToLower(m.formats[m.formatSelection])
}

func (m *BackupModel) startBackup() (tea.Model, tea.Cmd) {
	m.state = BackupProgressState
	// The snapshot is taken here so the write does not touch the store.
	return m, m.performBackup(m.svc.Store().Snapshot(), m.format())
}

func (m *BackupModel) performBackup(shoes []models.Shoe, format string) tea.Cmd {
	backups, outputDir := m.backups, m.outputDir
	return func() tea.Msg {
		path, err := backups.Backup(shoes, outputDir, format)
		return BackupCompleteMsg{Result: BackupResult{
			RecordCount: len(shoes),
			FilePath:    path,
			Error:       err,
		}}
	}
}

func (m *BackupModel) View() string {
	switch m.state {
	case BackupProgressState:
		return m.renderProgress()
	case BackupResultState:
		return m.renderResult()
	}
	return m.renderFormatSelector()
}

func (m *BackupModel) renderFormatSelector() string {
	title := titleStyle.Render("💾 Backup Inventory")

	info := fmt.Sprintf("%d records will be written to %s", m.svc.Store().Len(), m.outputDir)

	var formatList string
	for i, format := range m.formats {
		cursor := " "
		style := menuItemStyle
		if i == m.formatSelection {
			cursor = ">"
			style = selectedMenuItemStyle
		}
		formatList += fmt.Sprintf("%s %s\n", cursor, style.Render(format))
	}

	help := helpStyle.Render("↑/↓: Navigate • Enter: Start backup • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, info, formatList, help)
}

func (m *BackupModel) renderProgress() string {
	title := titleStyle.Render("💾 Creating Backup...")
	help := helpStyle.Render("Please wait while the backup is being written...")
	return lipgloss.JoinVertical(lipgloss.Left, title, help)
}

func (m *BackupModel) renderResult() string {
	title := titleStyle.Render("💾 Backup Complete")

	if m.result.Error != nil {
		status := errorStyle.Render(fmt.Sprintf("❌ Backup failed: %v", m.result.Error))
		help := helpStyle.Render("Enter: Try again • Esc: Back to menu")
		return lipgloss.JoinVertical(lipgloss.Left, title, status, help)
	}

	status := successStyle.Render("✅ Backup completed successfully!")
	stats := fmt.Sprintf(
		"📊 Backup Information:\n"+
			"   Output file: %s\n"+
			"   Format: %s\n"+
			"   Records: %d",
		m.result.FilePath,
		m.formats[m.formatSelection],
		m.result.RecordCount,
	)

	help := helpStyle.Render("Enter: Create another backup • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, status, stats, help)
}
