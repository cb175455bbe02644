package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/azgeda96/secure-pass-vault/internal/service"
	"github.com/azgeda96/secure-pass-vault/models"
)

const formStatusField = 8

// formStatuses is the cycle order of the status selector inside the form.
var formStatuses = []string{models.StatusLocal, models.StatusOnline, models.StatusOffline}

type formModel struct {
	inputs    []textinput.Model
	statusIdx int
	focus     int
	editing   bool
}

// newFormModel builds the form fields from the session's draft. The session
// stays the owner of the draft; the inputs are copied back on submit.
func newFormModel(session *service.FormSession) formModel {
	labels := []string{"machine", "service", "personne", "utilisateur", "mot de passe", "adresse IP", "port", "URL"}
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = labels[i]
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	draft := session.Draft()
	inputs[0].SetValue(draft.Machine)
	inputs[1].SetValue(draft.Service)
	inputs[2].SetValue(draft.Person)
	inputs[3].SetValue(draft.Username)
	inputs[4].SetValue(draft.Password)
	inputs[5].SetValue(draft.IPAddress)
	inputs[6].SetValue(draft.Port)
	inputs[7].SetValue(draft.URL)

	statusIdx := 0
	for i, s := range formStatuses {
		if s == draft.Status {
			statusIdx = i
		}
	}

	return formModel{
		inputs:    inputs,
		statusIdx: statusIdx,
		editing:   session.IsEdit(),
	}
}

// applyToDraft copies the current field values back into the session draft.
func (m formModel) applyToDraft(session *service.FormSession) {
	draft := session.Draft()
	draft.Machine = m.inputs[0].Value()
	draft.Service = m.inputs[1].Value()
	draft.Person = m.inputs[2].Value()
	draft.Username = m.inputs[3].Value()
	draft.Password = m.inputs[4].Value()
	draft.IPAddress = m.inputs[5].Value()
	draft.Port = m.inputs[6].Value()
	draft.URL = m.inputs[7].Value()
	draft.Status = formStatuses[m.statusIdx]
}

func (m formModel) view(busy bool) string {
	title := "Nouvel accès"
	if m.editing {
		title = "Modifier l'accès"
	}
	out := titleStyle.Render(title) + "\n\n"

	labels := []string{
		"Machine *:     ",
		"Service *:     ",
		"Personne:      ",
		"Utilisateur:   ",
		"Mot de passe:  ",
		"Adresse IP:    ",
		"Port:          ",
		"URL:           ",
	}
	for i, label := range labels {
		out += label + m.inputs[i].View() + "\n"
	}

	statusLine := "Statut:        " + formStatuses[m.statusIdx]
	if m.focus == formStatusField {
		statusLine += "  ←/→ changer"
	}
	out += statusLine + "\n"

	if busy {
		out += "\nEnregistrement...\n"
	}

	out += "\n" + helpStyle.Render("tab champ suivant  enter enregistrer  esc annuler")
	return out
}
