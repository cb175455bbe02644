package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/azgeda96/secure-pass-vault/internal/app"
)

const (
	authTabSignIn = iota
	authTabSignUp
)

type authModel struct {
	tab        int
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newAuthModel() authModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "email"
	inputs[1].Placeholder = "mot de passe"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	return authModel{inputs: inputs}
}

func (m authModel) View() string {
	out := titleStyle.Render(app.UITitle) + "\n"
	out += subtitleStyle.Render(app.UISubtitle) + "\n\n"

	tabs := [2]string{"Connexion", "Inscription"}
	tabs[m.tab] = "[" + tabs[m.tab] + "]"
	out += fmt.Sprintf("%s    %s\n\n", tabs[0], tabs[1])

	out += "Email:        " + m.inputs[0].View() + "\n"
	out += "Mot de passe: " + m.inputs[1].View() + "\n"

	if m.errMsg != "" {
		out += "\n" + toastErrorStyle.Render(m.errMsg) + "\n"
	}
	if m.submitting {
		out += "\nConnexion en cours...\n"
	}

	out += "\n" + helpStyle.Render("tab champ suivant  ←/→ changer d'onglet  enter valider  ctrl+c quitter")
	return out
}
