package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petrack/internal/engine"
	"petrack/internal/storage"
	"petrack/internal/ui"
)

// The dashboard refreshes on every mutation it performs itself and on a
// low-frequency poll, so changes made by other processes (CLI runs, the
// HTTP server) become visible without any cross-process signaling.
type dashboardModel struct {
	ctx  context.Context
	svc  *engine.Service
	poll time.Duration

	width  int
	height int

	overview *engine.Overview
	subjects []storage.Subject

	selected int
	showShop bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	overview *engine.Overview
	subjects []storage.Subject
	err      error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type usedMsg struct {
	res *engine.UseResult
	err error
}

type boughtMsg struct {
	res *engine.PurchaseResult
	err error
}

type pollMsg time.Time

func newDashboardModel(ctx context.Context, svc *engine.Service, poll time.Duration) dashboardModel {
	if poll <= 0 {
		poll = 5 * time.Second
	}
	return dashboardModel{
		ctx:     ctx,
		svc:     svc,
		poll:    poll,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.pollCmd())
}

func (m dashboardModel) pollCmd() tea.Cmd {
	return tea.Tick(m.poll, func(t time.Time) tea.Msg { return pollMsg(t) })
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.svc.Overview(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		subjects, err := m.svc.Subjects().List(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{overview: overview, subjects: subjects}
	}
}

func (m dashboardModel) completeCmd(subjectID, taskID int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, subjectID, taskID)
		return completedMsg{res: res, err: err}
	}
}

func (m dashboardModel) useCmd(itemID int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.UseItem(m.ctx, itemID)
		return usedMsg{res: res, err: err}
	}
}

func (m dashboardModel) buyCmd(itemID int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Purchase(m.ctx, itemID)
		return boughtMsg{res: res, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case pollMsg:
		return m, tea.Batch(m.loadCmd(), m.pollCmd())
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.overview = msg.overview
		m.subjects = msg.subjects
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		if msg.res.LevelUp {
			m.lastLog = fmt.Sprintf("%s +%d XP, %s! +%d coins", ui.IconDone, msg.res.XPAwarded, ui.BadgeLevelUp, msg.res.CoinBonus)
		} else {
			m.lastLog = fmt.Sprintf("%s +%d XP (level %d, %d to next)", ui.IconDone, msg.res.XPAwarded, msg.res.LevelAfter, engine.NextLevelXP(msg.res.XPTotal)-msg.res.XPTotal)
		}
		return m, m.loadCmd()
	case usedMsg:
		if msg.err != nil {
			m.lastLog = "Use failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("%s Used %s: health %d → %d", ui.CategoryIcon(msg.res.Item.Category), msg.res.Item.Name, msg.res.HealthBefore, msg.res.HealthAfter)
		return m, m.loadCmd()
	case boughtMsg:
		if msg.err != nil {
			m.lastLog = "Purchase failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("%s Bought %s for %d coins (%d left)", ui.IconShop, msg.res.Item.Name, msg.res.Item.Price, msg.res.Coins)
		return m, m.loadCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "s":
		m.showShop = !m.showShop
		m.selected = 0
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < m.lineCount()-1 {
			m.selected++
		}
		return m, nil
	case "c", " ", "enter":
		return m.activateSelected()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Number keys consume the nth inventory item.
		if m.overview == nil {
			return m, nil
		}
		n := int(msg.String()[0] - '1')
		if n >= len(m.overview.Inventory) {
			m.lastLog = "No such item slot."
			return m, nil
		}
		return m, m.useCmd(m.overview.Inventory[n].ID)
	}
	return m, nil
}

func (m dashboardModel) activateSelected() (tea.Model, tea.Cmd) {
	if m.showShop {
		catalog := engine.Catalog()
		if m.selected < 0 || m.selected >= len(catalog) {
			return m, nil
		}
		return m, m.buyCmd(catalog[m.selected].ID)
	}

	lines := m.taskLines()
	if m.selected < 0 || m.selected >= len(lines) {
		return m, nil
	}
	line := lines[m.selected]
	if line.taskID == 0 {
		m.lastLog = "Select a task to complete."
		return m, nil
	}
	if line.completed {
		m.lastLog = "Already done."
		return m, nil
	}
	m.lastLog = "Completing…"
	return m, m.completeCmd(line.subjectID, line.taskID)
}

func (m dashboardModel) lineCount() int {
	if m.showShop {
		return len(engine.Catalog())
	}
	return len(m.taskLines())
}

type taskLine struct {
	subjectID  int64
	taskID     int64
	label      string
	difficulty string
	completed  bool
}

func (m dashboardModel) taskLines() []taskLine {
	var out []taskLine
	for _, sub := range m.subjects {
		out = append(out, taskLine{subjectID: sub.ID, label: sub.Title})
		for _, t := range sub.Tasks {
			out = append(out, taskLine{
				subjectID:  sub.ID,
				taskID:     t.ID,
				label:      t.Content,
				difficulty: t.Difficulty,
				completed:  t.Completed,
			})
		}
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading && m.overview == nil {
		return "Petrack — loading…\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	var main string
	if m.showShop {
		main = m.renderShop()
	} else {
		main = m.renderTasks()
	}
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	o := m.overview
	name := o.PetName
	if name == "" {
		name = "your pet"
	}
	toNext := o.NextLevelXP - o.XP
	return fmt.Sprintf("%s %s (%s) | Level %d | XP %d (%d to next) | %s %d",
		ui.IconPet, name, ui.HealthMood(o.Health), o.Level, o.XP, toNext, ui.IconCoin, o.Coins)
}

func (m dashboardModel) renderSidebar() string {
	o := m.overview
	lines := []string{
		"Pet",
		fmt.Sprintf("- %s Health %s", ui.IconHeart, ui.HealthText(o.Health)),
		"  " + ui.HealthBar(o.Health, 18),
		fmt.Sprintf("- %s Streak: %d day(s)", ui.IconFire, o.Streak),
		fmt.Sprintf("- %s Today: %d task(s)", ui.IconDone, o.TasksToday),
		"",
		"Backpack (press 1-9 to use)",
	}
	if len(o.Inventory) == 0 {
		lines = append(lines, "(empty)")
	} else {
		for i, it := range o.Inventory {
			lines = append(lines, fmt.Sprintf("%d. %s %s x%d", i+1, ui.CategoryIcon(it.Category), it.Name, it.Quantity))
		}
	}
	lines = append(lines,
		"",
		"Keys",
		"- ↑/↓ or j/k: move",
		"- c/space: complete task",
		"- s: toggle shop",
		"- 1-9: use item",
		"- r: refresh",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderTasks() string {
	var out []string
	out = append(out, "Tasks")

	lines := m.taskLines()
	if len(lines) == 0 {
		out = append(out, "(no subjects yet; add one with `petrack add subject`)")
		return strings.Join(out, "\n")
	}
	for i, tl := range lines {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		if tl.taskID == 0 {
			out = append(out, fmt.Sprintf("%s%s %s", cursor, ui.IconBook, tl.label))
			continue
		}
		mark := "[ ]"
		if tl.completed {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s  %s %s (%s)", cursor, mark, tl.label, ui.DifficultyText(tl.difficulty)))
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderShop() string {
	var out []string
	out = append(out, fmt.Sprintf("Shop (you have %s %d)", ui.IconCoin, m.overview.Coins))
	for i, it := range engine.Catalog() {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%s %s — %d coins", cursor, ui.CategoryIcon(it.Category), it.Name, it.Price))
	}
	out = append(out, "", "enter/c: buy selected, s: back to tasks")
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderFooter() string {
	if note := m.svc.Notifier().Current(); note != nil {
		return "\n" + ui.Gold.Render(note.Message) + "  " + m.lastLog
	}
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
