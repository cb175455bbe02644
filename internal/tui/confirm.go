package tui

type confirmModel struct {
	service string
}

func (m confirmModel) View() string {
	content := "Supprimer \"" + m.service + "\" ?\n\n"
	content += "o oui    n non"
	return overlayBoxStyle.Render(content)
}
