package book

import (
	"errors"

	"github.com/mmynk/projectbook/internal/models"
)

var (
	ErrDuplicatePerson  = errors.New("duplicate person")
	ErrPersonNotFound   = errors.New("person not found")
	ErrDuplicateProject = errors.New("duplicate project")
	ErrProjectNotFound  = errors.New("project not found")
)

// UniquePersonList holds persons that are pairwise not strongly equal.
type UniquePersonList struct {
	list uniqueList[*models.Person, models.PersonID]
}

func NewUniquePersonList() *UniquePersonList {
	return &UniquePersonList{list: uniqueList[*models.Person, models.PersonID]{
		key:  (*models.Person).ID,
		same: (*models.Person).Equal,
	}}
}

// Contains reports whether a strongly equal person is present.
func (l *UniquePersonList) Contains(p *models.Person) bool { return l.list.contains(p) }

func (l *UniquePersonList) Get(id models.PersonID) (*models.Person, bool) { return l.list.get(id) }

func (l *UniquePersonList) Add(p *models.Person) error { return l.list.add(p, ErrDuplicatePerson) }

// SetPerson replaces target with edited at the same position.
func (l *UniquePersonList) SetPerson(target, edited *models.Person) error {
	return l.list.replace(target.ID(), edited, ErrPersonNotFound, ErrDuplicatePerson)
}

func (l *UniquePersonList) Remove(p *models.Person) error {
	return l.list.remove(p.ID(), ErrPersonNotFound)
}

// SetPersons replaces the whole list; on ErrDuplicatePerson nothing changes.
func (l *UniquePersonList) SetPersons(persons []*models.Person) error {
	return l.list.setAll(persons, ErrDuplicatePerson)
}

// All returns a snapshot of the list in order.
func (l *UniquePersonList) All() []*models.Person { return l.list.all() }

func (l *UniquePersonList) Len() int { return len(l.list.items) }

// UniqueProjectList holds projects whose names are pairwise distinct after
// normalisation.
type UniqueProjectList struct {
	list uniqueList[*models.Project, models.ProjectID]
}

func NewUniqueProjectList() *UniqueProjectList {
	return &UniqueProjectList{list: uniqueList[*models.Project, models.ProjectID]{
		key:  (*models.Project).ID,
		same: (*models.Project).IsSameProject,
	}}
}

// Contains reports whether a project with the same normalised name is present.
func (l *UniqueProjectList) Contains(p *models.Project) bool { return l.list.contains(p) }

func (l *UniqueProjectList) Get(id models.ProjectID) (*models.Project, bool) { return l.list.get(id) }

func (l *UniqueProjectList) Add(p *models.Project) error { return l.list.add(p, ErrDuplicateProject) }

// SetProject replaces the project with the same ID as updated.
func (l *UniqueProjectList) SetProject(updated *models.Project) error {
	return l.list.replace(updated.ID(), updated, ErrProjectNotFound, ErrDuplicateProject)
}

func (l *UniqueProjectList) Remove(p *models.Project) error {
	return l.list.remove(p.ID(), ErrProjectNotFound)
}

// SetProjects replaces the whole list; on ErrDuplicateProject nothing changes.
func (l *UniqueProjectList) SetProjects(projects []*models.Project) error {
	return l.list.setAll(projects, ErrDuplicateProject)
}

// FindByName looks a project up by raw name. Surrounding and repeated
// whitespace and letter case are ignored.
func (l *UniqueProjectList) FindByName(raw string) (*models.Project, bool) {
	key := models.Normalize(raw)
	for _, p := range l.list.items {
		if p.Name().Key() == key {
			return p, true
		}
	}
	return nil, false
}

func (l *UniqueProjectList) All() []*models.Project { return l.list.all() }

func (l *UniqueProjectList) Len() int { return len(l.list.items) }
