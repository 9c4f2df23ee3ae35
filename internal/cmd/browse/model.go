package browse

import (
	"context"
	"fmt"
	"strings"

	"s3cli/internal/shared/s3ops"
	"s3cli/internal/shared/ui"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	client  *s3.Client
	bucket  string
	prefix  string
	entries []s3ops.Entry
	cursor  int
	offset  int
	width   int
	height  int
	loading bool
	err     error
	status  string

	propMeta *s3ops.ObjectMetadata

	spinner spinner.Model
	help    help.Model
	keys    keyMap
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Delete, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Delete, k.Refresh, k.Quit},
	}
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
	Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("back", "up one level")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func initialModel(client *s3.Client, bucket string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return model{
		client:  client,
		bucket:  bucket,
		loading: true,
		spinner: s,
		help:    help.New(),
		keys:    keys,
	}
}

type entriesMsg []s3ops.Entry
type propsMsg struct{ meta *s3ops.ObjectMetadata }
type deletedMsg struct {
	key string
	err error
}

func (m model) loadEntries() tea.Msg {
	entries, err := s3ops.ListEntries(context.Background(), m.client, m.bucket, m.prefix)
	if err != nil {
		return err
	}
	return entriesMsg(entries)
}

func (m model) loadProps(key string) tea.Cmd {
	return func() tea.Msg {
		meta, err := s3ops.HeadObject(context.Background(), m.client, m.bucket, key)
		if err != nil {
			return err
		}
		return propsMsg{meta}
	}
}

func (m model) deleteObject(key string) tea.Cmd {
	return func() tea.Msg {
		err := s3ops.DeleteObject(context.Background(), m.client, m.bucket, key)
		return deletedMsg{key: key, err: err}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadEntries, m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.propMeta != nil {
			if msg.String() == "esc" || msg.String() == "q" || msg.String() == "enter" {
				m.propMeta = nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.viewHeight() {
					m.offset = m.cursor - m.viewHeight() + 1
				}
			}

		case key.Matches(msg, m.keys.Enter):
			if m.cursor >= len(m.entries) {
				break
			}
			entry := m.entries[m.cursor]
			if entry.IsDir {
				m.prefix = entry.Key
				m.cursor = 0
				m.offset = 0
				m.loading = true
				return m, m.loadEntries
			}
			return m, m.loadProps(entry.Key)

		case key.Matches(msg, m.keys.Back):
			if m.prefix == "" {
				break
			}
			m.prefix = parentPrefix(m.prefix)
			m.cursor = 0
			m.offset = 0
			m.loading = true
			return m, m.loadEntries

		case key.Matches(msg, m.keys.Delete):
			if m.cursor >= len(m.entries) {
				break
			}
			entry := m.entries[m.cursor]
			if entry.IsDir {
				m.status = "folders cannot be deleted"
				break
			}
			m.loading = true
			return m, m.deleteObject(entry.Key)

		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadEntries
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case entriesMsg:
		m.entries = msg
		m.loading = false
		m.err = nil
		if m.cursor >= len(m.entries) {
			m.cursor = 0
			m.offset = 0
		}

	case propsMsg:
		m.propMeta = msg.meta

	case deletedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		m.status = "deleted " + msg.key
		m.loading = true
		return m, m.loadEntries

	case error:
		m.err = msg
		m.loading = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) viewHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 10
	}
	return h
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("s3://%s/%s", m.bucket, m.prefix)))
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteByte('\n')
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " loading...\n")
	case m.propMeta != nil:
		b.WriteString(m.renderProps())
	case len(m.entries) == 0:
		b.WriteString(itemStyle.Render("(empty)") + "\n")
	default:
		b.WriteString(m.renderEntries())
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m model) renderEntries() string {
	var b strings.Builder

	end := m.offset + m.viewHeight()
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		label := entry.Name
		if entry.IsDir {
			label = dirStyle.Render(label)
		} else {
			label = fileStyle.Render(fmt.Sprintf("%s  %s", label, ui.FormatSize(entry.Size)))
		}

		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + label))
		} else {
			b.WriteString(itemStyle.Render(label))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (m model) renderProps() string {
	meta := m.propMeta
	lines := []string{
		"Key:          " + meta.Key,
		"Size:         " + ui.FormatSize(meta.Size),
		"ContentType:  " + meta.ContentType,
		"ETag:         " + meta.ETag,
	}
	if !meta.LastModified.IsZero() {
		lines = append(lines, "LastModified: "+meta.LastModified.Format("2006-01-02 15:04:05"))
	}
	return dialogStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// parentPrefix strips the last path segment: "a/b/" -> "a/", "a/" -> "".
func parentPrefix(prefix string) string {
	trimmed := strings.TrimSuffix(prefix, "/")
	idx := strings.LastIndexByte(trimmed, '/')
	if idx == -1 {
		return ""
	}
	return trimmed[:idx+1]
}
