package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/azgeda96/secure-pass-vault/internal/service"
	"github.com/azgeda96/secure-pass-vault/models"
)

// remoteCallTimeout bounds every operation dispatched from the UI so a hung
// server never leaves the interface busy forever.
const remoteCallTimeout = 15 * time.Second

const toastDuration = 2 * time.Second

type screen int

const (
	screenAuth screen = iota
	screenList
	screenDetail
	screenForm
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen
	auth          authModel
	list          listModel
	detail        detailModel
	form          formModel

	session *service.FormSession
	confirm *service.DeleteConfirmation

	showConfirm bool
	confirmView confirmModel

	toast     string
	toastFail bool
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenAuth,
		auth:          newAuthModel(),
		list:          newListModel(),
		session:       service.NewFormSession(),
		confirm:       service.NewDeleteConfirmation(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// visibleRecords derives the display sequence for the list screen from the
// repository snapshot and the current list controls.
func (m appModel) visibleRecords() []models.Credential {
	return service.BuildListView(m.services.CredentialService.Snapshot(), m.list.query())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case toastMsg:
		m.toast = msg.text
		m.toastFail = msg.failure
		return m, cmdClearToast()
	case clearToastMsg:
		m.toast = ""
		m.detail.status = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.toast = "Erreur lors de la copie"
			m.toastFail = true
		} else {
			m.detail.status = "Copié !"
		}
		return m, cmdClearToast()
	case authDoneMsg:
		m.auth.submitting = false
		if msg.err != nil {
			m.auth.errMsg = service.AuthErrorMessage(msg.err)
			return m, nil
		}
		m.auth.errMsg = ""
		m.auth.inputs[1].SetValue("")
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case listLoadedMsg:
		// Load failures are already reported through the notifier.
		m.list.loading = false
		if visible := m.visibleRecords(); m.list.idx >= len(visible) {
			m.list.idx = max(len(visible)-1, 0)
		}
		return m, nil
	case recordSavedMsg:
		// The form closes regardless of outcome; the repository already
		// reported the result through the notifier.
		m.session.Cancel()
		m.currentScreen = screenList
		return m, nil
	case recordDeletedMsg:
		m.currentScreen = screenList
		if visible := m.visibleRecords(); m.list.idx >= len(visible) {
			m.list.idx = max(len(visible)-1, 0)
		}
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenAuth:
		return m.updateAuth(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenAuth:
		body = m.auth.View()
	case screenList:
		visible := m.visibleRecords()
		body = m.list.view(visible, len(m.services.CredentialService.Snapshot()))
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.view(m.session.Busy())
	}

	if m.showConfirm {
		body += "\n\n" + m.confirmView.View()
	}
	if m.toast != "" {
		style := toastStyle
		if m.toastFail {
			style = toastErrorStyle
		}
		body += "\n\n" + style.Render(m.toast)
	}

	return appStyle.Render(body)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		id, ok := m.confirm.Confirm()
		if !ok {
			return m, nil
		}
		return m, m.cmdDeleteRecord(id)
	case key.Matches(msg, keys.no):
		m.showConfirm = false
		m.confirm.Decline()
	}
	return m, nil
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
			m.auth.tab = 1 - m.auth.tab
			m.auth.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.auth.inputs[m.auth.focus].Blur()
			m.auth.focus = 1 - m.auth.focus
			m.auth.inputs[m.auth.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.auth.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.auth.inputs[0].Value())
			password := m.auth.inputs[1].Value()
			m.auth.submitting = true
			if m.auth.tab == authTabSignUp {
				return m, m.cmdSignUp(email, password)
			}
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		m.list.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.services.AuthService.SignOut()
		m.auth = newAuthModel()
		m.list = newListModel()
		m.currentScreen = screenAuth
		return m, nil
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
		return m, nil
	case key.Matches(keyMsg, keys.filter):
		m.list.statusIdx = (m.list.statusIdx + 1) % len(statusFilters)
		m.list.idx = 0
		return m, nil
	case key.Matches(keyMsg, keys.sortKey):
		m.list.sortIdx = (m.list.sortIdx + 1) % len(sortKeys)
		m.list.idx = 0
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case key.Matches(keyMsg, keys.newItem):
		m.session.OpenForCreate()
		m.form = newFormModel(m.session)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.visibleRecords())-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		record, ok := m.currentRecord()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{record: record}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.edit):
		record, ok := m.currentRecord()
		if !ok {
			return m, nil
		}
		m.session.OpenForEdit(record)
		m.form = newFormModel(m.session)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		record, ok := m.currentRecord()
		if !ok {
			return m, nil
		}
		m.stageDelete(record)
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
	case key.Matches(keyMsg, keys.copyPass):
		return m, cmdCopyToClipboard(m.detail.record.Password)
	case key.Matches(keyMsg, keys.copyUser):
		return m, cmdCopyToClipboard(m.detail.record.Username)
	case key.Matches(keyMsg, keys.copyIP):
		return m, cmdCopyToClipboard(m.detail.record.IPAddress)
	case key.Matches(keyMsg, keys.edit):
		m.session.OpenForEdit(m.detail.record)
		m.form = newFormModel(m.session)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.stageDelete(m.detail.record)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.session.Busy() {
				return m, nil
			}
			wasEdit := m.form.editing
			m.session.Cancel()
			if wasEdit {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextFormField(m.form, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusNextFormField(m.form, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.session.Busy() {
				return m, nil
			}
			m.form.applyToDraft(m.session)
			if err := m.session.Draft().Validate(); err != nil {
				m.toast = "La machine et le service sont requis"
				m.toastFail = true
				return m, cmdClearToast()
			}
			submission, ok := m.session.BeginSubmit()
			if !ok {
				return m, nil
			}
			return m, m.cmdSubmitForm(submission)
		}

		if m.form.focus == formStatusField {
			switch {
			case key.Matches(keyMsg, keys.left):
				m.form.statusIdx = (m.form.statusIdx - 1 + len(formStatuses)) % len(formStatuses)
			case key.Matches(keyMsg, keys.right):
				m.form.statusIdx = (m.form.statusIdx + 1) % len(formStatuses)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) currentRecord() (models.Credential, bool) {
	visible := m.visibleRecords()
	if len(visible) == 0 || m.list.idx < 0 || m.list.idx >= len(visible) {
		return models.Credential{}, false
	}
	return visible[m.list.idx], true
}

func (m *appModel) stageDelete(record models.Credential) {
	m.confirm.Stage(record.ID)
	m.confirmView = confirmModel{service: record.Service}
	m.showConfirm = true
}

func focusNextFormField(m formModel, dir int) formModel {
	if m.focus < formStatusField {
		m.inputs[m.focus].Blur()
	}
	fieldCount := len(m.inputs) + 1
	m.focus = (m.focus + dir + fieldCount) % fieldCount
	if m.focus < formStatusField {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
		defer cancel()
		return authDoneMsg{err: auth.SignIn(callCtx, email, password)}
	}
}

func (m appModel) cmdSignUp(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
		defer cancel()
		return authDoneMsg{err: auth.SignUp(callCtx, email, password)}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	credentials := m.services.CredentialService
	return func() tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
		defer cancel()
		return listLoadedMsg{err: credentials.Load(callCtx)}
	}
}

// cmdSubmitForm and cmdDeleteRecord capture everything they need by value
// before dispatch: the goroutine only talks to the repository, never to the
// session or confirmation state owned by the event loop.
func (m appModel) cmdSubmitForm(submission service.Submission) tea.Cmd {
	ctx := m.ctx
	credentials := m.services.CredentialService
	return func() tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
		defer cancel()
		return recordSavedMsg{err: submission.Run(callCtx, credentials)}
	}
}

func (m appModel) cmdDeleteRecord(id string) tea.Cmd {
	ctx := m.ctx
	credentials := m.services.CredentialService
	return func() tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
		defer cancel()
		return recordDeletedMsg{err: credentials.Delete(callCtx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearToast() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}
