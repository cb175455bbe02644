package tui

import (
	"fmt"

	"github.com/azgeda96/secure-pass-vault/models"
)

type detailModel struct {
	record models.Credential
	reveal bool
	status string
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.record.Machine) + "\n"
	out += subtitleStyle.Render(m.record.Service) + "\n\n"

	password := "—"
	if m.record.Password != "" {
		password = "••••••••"
		if m.reveal {
			password = m.record.Password
		}
	}

	out += fmt.Sprintf("Personne:     %s\n", orDash(m.record.Person))
	out += fmt.Sprintf("Utilisateur:  %s\n", orDash(m.record.Username))
	out += fmt.Sprintf("Mot de passe: %s\n", password)
	out += fmt.Sprintf("Adresse IP:   %s\n", orDash(m.record.IPAddress))
	out += fmt.Sprintf("Port:         %s\n", orDash(m.record.Port))
	out += fmt.Sprintf("URL:          %s\n", orDash(m.record.URL))
	if m.record.Status != "" {
		out += fmt.Sprintf("Statut:       %s\n", statusBadge(m.record.Status))
	}

	if m.status != "" {
		out += "\n" + toastStyle.Render(m.status)
	}

	out += "\n\n" + helpStyle.Render("v afficher/masquer  c copier mdp  u copier utilisateur  i copier IP  e modifier  d supprimer  esc retour")
	return out
}
