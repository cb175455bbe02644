package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/azgeda96/secure-pass-vault/internal/app"
	"github.com/azgeda96/secure-pass-vault/internal/service"
	"github.com/azgeda96/secure-pass-vault/models"
)

// statusFilters is the cycle order of the status filter control.
var statusFilters = []string{
	service.StatusFilterAll,
	models.StatusOnline,
	models.StatusLocal,
	models.StatusOffline,
}

// sortKeys is the cycle order of the sort control.
var sortKeys = []service.SortKey{
	service.SortByMachine,
	service.SortByService,
	service.SortByPerson,
	service.SortByRecent,
}

var sortLabels = map[service.SortKey]string{
	service.SortByMachine: "machine",
	service.SortByService: "service",
	service.SortByPerson:  "personne",
	service.SortByRecent:  "récent",
}

type listModel struct {
	search    textinput.Model
	searching bool
	statusIdx int
	sortIdx   int
	idx       int
	loading   bool
	spinner   spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "rechercher..."
	search.Width = 30

	return listModel{search: search, spinner: s}
}

func (m listModel) query() service.ListQuery {
	return service.ListQuery{
		Search: m.search.Value(),
		Status: statusFilters[m.statusIdx],
		Sort:   sortKeys[m.sortIdx],
	}
}

func (m listModel) filterLabel() string {
	status := statusFilters[m.statusIdx]
	if status == service.StatusFilterAll {
		status = "tous"
	}
	return status
}

// view renders the list screen. visible is the already filtered and sorted
// record set; total is the size of the unfiltered snapshot, used to pick the
// right empty-state message.
func (m listModel) view(visible []models.Credential, total int) string {
	out := titleStyle.Render(app.UITitle) + "\n"
	out += subtitleStyle.Render(app.UISubtitle) + "\n\n"

	searchView := m.search.View()
	if m.searching {
		searchView += "  (esc pour quitter la recherche)"
	}
	out += "Recherche: " + searchView + "\n"
	out += fmt.Sprintf("Statut: %s    Tri: %s\n\n", m.filterLabel(), sortLabels[sortKeys[m.sortIdx]])

	switch {
	case m.loading:
		out += m.spinner.View() + " Chargement...\n"
	case total == 0:
		out += "Aucun accès trouvé\n"
		out += helpStyle.Render("Commencez par ajouter votre premier accès") + "\n"
	case len(visible) == 0:
		out += "Aucun accès trouvé\n"
		out += helpStyle.Render("Essayez de modifier vos filtres") + "\n"
	default:
		out += fmt.Sprintf("%d accès\n\n", len(visible))
		for i, record := range visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s · %s", cursor, record.Machine, record.Service)
			if record.Status != "" {
				line += "  " + statusBadge(record.Status)
			}
			out += line + "\n"
		}
	}

	out += "\n" + helpStyle.Render("n nouveau  / recherche  f statut  t tri  r recharger  enter ouvrir  x déconnexion  q quitter")
	return out
}
