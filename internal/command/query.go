package command

import (
	"strings"

	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/state"
)

// FindPerson shows persons whose name contains any keyword as a whole word.
type FindPerson struct {
	keywords []string
}

func NewFindPerson(keywords []string) *FindPerson {
	return &FindPerson{keywords: append([]string(nil), keywords...)}
}

func (c *FindPerson) Name() string { return "find" }

func (c *FindPerson) Execute(m state.Model) (Result, error) {
	m.UpdatePersonFilter(NameContainsKeywords(c.keywords))
	return feedback(ViewPersons, MessagePersonsListed, len(m.FilteredPersons())), nil
}

// NameContainsKeywords matches persons with at least one name word equal to
// a keyword, ignoring case.
func NameContainsKeywords(keywords []string) state.PersonPredicate {
	want := normalizedSet(keywords)
	return func(p *models.Person) bool {
		return anyWordIn(p.Name().Words(), want)
	}
}

type ListPersons struct{}

func NewListPersons() *ListPersons { return &ListPersons{} }

func (c *ListPersons) Name() string { return "list" }

func (c *ListPersons) Execute(m state.Model) (Result, error) {
	m.UpdatePersonFilter(state.ShowAllPersons)
	return feedback(ViewPersons, MessageAllPersons), nil
}

// FindProject shows projects whose name contains any keyword as a whole word.
type FindProject struct {
	keywords []string
}

func NewFindProject(keywords []string) *FindProject {
	return &FindProject{keywords: append([]string(nil), keywords...)}
}

func (c *FindProject) Name() string { return "project find" }

func (c *FindProject) Execute(m state.Model) (Result, error) {
	m.UpdateProjectFilter(ProjectNameContainsKeywords(c.keywords))
	return feedback(ViewProjects, MessageProjectsListed, len(m.FilteredProjects())), nil
}

func ProjectNameContainsKeywords(keywords []string) state.ProjectPredicate {
	want := normalizedSet(keywords)
	return func(p *models.Project) bool {
		return anyWordIn(strings.Fields(p.Name().String()), want)
	}
}

type ListProjects struct{}

func NewListProjects() *ListProjects { return &ListProjects{} }

func (c *ListProjects) Name() string { return "project list" }

func (c *ListProjects) Execute(m state.Model) (Result, error) {
	m.UpdateProjectFilter(state.ShowAllProjects)
	return feedback(ViewProjects, MessageAllProjects), nil
}

func normalizedSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if k := models.Normalize(w); k != "" {
			set[k] = true
		}
	}
	return set
}

func anyWordIn(words []string, set map[string]bool) bool {
	for _, w := range words {
		if set[models.Normalize(w)] {
			return true
		}
	}
	return false
}
