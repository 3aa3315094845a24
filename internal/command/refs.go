package command

import (
	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/state"
)

// PersonRef points at a person either by displayed index or by name.
type PersonRef struct {
	index *Index
	name  *models.Name
}

func PersonAt(i Index) PersonRef { return PersonRef{index: &i} }

func PersonNamed(n models.Name) PersonRef { return PersonRef{name: &n} }

func (r PersonRef) String() string {
	if r.index != nil {
		return r.index.String()
	}
	if r.name != nil {
		return r.name.String()
	}
	return ""
}

// resolve finds the person. Indices address the filtered list; names are
// matched against the whole book ignoring case and spacing.
func (r PersonRef) resolve(m state.Model) (*models.Person, error) {
	if r.index != nil {
		p, ok := pick(m.FilteredPersons(), *r.index)
		if !ok {
			return nil, newError(KindInvalidIndex, MessageInvalidPersonIndex)
		}
		return p, nil
	}
	if r.name == nil {
		return nil, newError(KindNotFound, MessagePersonNotFound, "")
	}
	matches := m.PersonsNamed(*r.name)
	switch len(matches) {
	case 0:
		return nil, newError(KindNotFound, MessagePersonNotFound, r.name)
	case 1:
		return matches[0], nil
	default:
		return nil, newError(KindAmbiguous, MessageAmbiguousPerson, len(matches), r.name)
	}
}

// ProjectRef points at a project either by displayed index or by name.
type ProjectRef struct {
	index *Index
	name  string
}

func ProjectAt(i Index) ProjectRef { return ProjectRef{index: &i} }

func ProjectNamed(name string) ProjectRef { return ProjectRef{name: name} }

func (r ProjectRef) String() string {
	if r.index != nil {
		return r.index.String()
	}
	return r.name
}

func (r ProjectRef) resolve(m state.Model) (*models.Project, error) {
	if r.index != nil {
		p, ok := pick(m.FilteredProjects(), *r.index)
		if !ok {
			return nil, newError(KindInvalidIndex, MessageInvalidProjectIndex)
		}
		return p, nil
	}
	p, ok := m.FindProject(r.name)
	if !ok {
		return nil, newError(KindNotFound, MessageProjectNotFound, r.name)
	}
	return p, nil
}
