// Package book holds the ProjectBook aggregate: the unique person and project
// lists plus the membership table that relates them.
package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/projectbook/internal/models"
)

var (
	ErrAlreadyMember = errors.New("already a member of the project")
	ErrNotMember     = errors.New("not a member of the project")
)

// ReadOnlyBook is the read side of a ProjectBook.
type ReadOnlyBook interface {
	Persons() []*models.Person
	Projects() []*models.Project
	MembersOf(project *models.Project) []*models.Person
	ProjectsOf(person *models.Person) []*models.Project
}

var _ ReadOnlyBook = (*ProjectBook)(nil)

// ProjectBook is the aggregate root. It is the only owner of memberships:
// a person's projects and a project's members are both derived from the same
// table, so the two sides cannot disagree.
type ProjectBook struct {
	persons     *UniquePersonList
	projects    *UniqueProjectList
	memberships []models.Membership
}

// New returns an empty book.
func New() *ProjectBook {
	return &ProjectBook{
		persons:  NewUniquePersonList(),
		projects: NewUniqueProjectList(),
	}
}

// Clone returns an independent copy. Persons are immutable and shared,
// projects are deep-copied.
func (b *ProjectBook) Clone() *ProjectBook {
	c := New()
	c.persons.list.items = b.persons.All()
	for _, p := range b.projects.list.items {
		c.projects.list.items = append(c.projects.list.items, p.Clone())
	}
	c.memberships = append([]models.Membership(nil), b.memberships...)
	return c
}

// Clear removes every person, project and membership.
func (b *ProjectBook) Clear() {
	*b = *New()
}

func (b *ProjectBook) Persons() []*models.Person   { return b.persons.All() }
func (b *ProjectBook) Projects() []*models.Project { return b.projects.All() }

// Memberships returns the relationship table in insertion order.
func (b *ProjectBook) Memberships() []models.Membership {
	return append([]models.Membership(nil), b.memberships...)
}

// HasPerson reports whether a strongly equal person is in the book.
func (b *ProjectBook) HasPerson(p *models.Person) bool { return b.persons.Contains(p) }

// FindSimilarPerson returns a person in the book that IsSamePerson as p,
// ignoring the person with ID exclude.
func (b *ProjectBook) FindSimilarPerson(p *models.Person, exclude models.PersonID) (*models.Person, bool) {
	for _, existing := range b.persons.list.items {
		if existing.ID() != exclude && existing.IsSamePerson(p) {
			return existing, true
		}
	}
	return nil, false
}

func (b *ProjectBook) AddPerson(p *models.Person) error { return b.persons.Add(p) }

// SetPerson swaps target for edited. Memberships follow the swap.
func (b *ProjectBook) SetPerson(target, edited *models.Person) error {
	if err := b.persons.SetPerson(target, edited); err != nil {
		return err
	}
	if target.ID() != edited.ID() {
		for i := range b.memberships {
			if b.memberships[i].PersonID == target.ID() {
				b.memberships[i].PersonID = edited.ID()
			}
		}
	}
	return nil
}

// RemovePerson deletes p and every membership that references it, logging
// the removal on each affected project.
func (b *ProjectBook) RemovePerson(p *models.Person, at time.Time) error {
	if err := b.persons.Remove(p); err != nil {
		return err
	}
	kept := b.memberships[:0:0]
	for _, m := range b.memberships {
		if m.PersonID != p.ID() {
			kept = append(kept, m)
			continue
		}
		if project, ok := b.projects.Get(m.ProjectID); ok {
			project.Record(removedMessage(p), at)
		}
	}
	b.memberships = kept
	return nil
}

// SetPersons replaces all persons. Memberships of persons that are no longer
// present are dropped.
func (b *ProjectBook) SetPersons(persons []*models.Person) error {
	if err := b.persons.SetPersons(persons); err != nil {
		return err
	}
	b.pruneMemberships()
	return nil
}

// HasProject reports whether a project with the same normalised name exists.
func (b *ProjectBook) HasProject(p *models.Project) bool { return b.projects.Contains(p) }

func (b *ProjectBook) AddProject(p *models.Project) error { return b.projects.Add(p) }

func (b *ProjectBook) SetProject(updated *models.Project) error {
	return b.projects.SetProject(updated)
}

// RemoveProject deletes p together with all of its memberships.
func (b *ProjectBook) RemoveProject(p *models.Project) error {
	if err := b.projects.Remove(p); err != nil {
		return err
	}
	kept := b.memberships[:0:0]
	for _, m := range b.memberships {
		if m.ProjectID != p.ID() {
			kept = append(kept, m)
		}
	}
	b.memberships = kept
	return nil
}

// SetProjects replaces all projects. Memberships of projects that are no
// longer present are dropped.
func (b *ProjectBook) SetProjects(projects []*models.Project) error {
	if err := b.projects.SetProjects(projects); err != nil {
		return err
	}
	b.pruneMemberships()
	return nil
}

// FindProject looks a project up by name, ignoring case and spacing.
func (b *ProjectBook) FindProject(name string) (*models.Project, bool) {
	return b.projects.FindByName(name)
}

// IsMember reports whether project has a member that IsSamePerson as person.
func (b *ProjectBook) IsMember(project *models.Project, person *models.Person) bool {
	_, ok := b.memberIndex(project, person)
	return ok
}

// Assign adds person to project and logs it. Both must already be in the
// book. This is the only path that creates memberships for live edits.
func (b *ProjectBook) Assign(project *models.Project, person *models.Person, at time.Time) error {
	if err := b.Link(project, person); err != nil {
		return err
	}
	stored, _ := b.projects.Get(project.ID())
	stored.Record(addedMessage(person), at)
	return nil
}

// Link adds the membership without logging. It is used when rebuilding a
// book from storage, where the log is restored separately.
func (b *ProjectBook) Link(project *models.Project, person *models.Person) error {
	if _, err := b.checkPresent(project, person); err != nil {
		return err
	}
	if b.IsMember(project, person) {
		return fmt.Errorf("%w: %s in %s", ErrAlreadyMember, person.Name(), project.Name())
	}
	b.memberships = append(b.memberships, models.Membership{
		ProjectID: project.ID(),
		PersonID:  person.ID(),
	})
	return nil
}

// Unassign removes person from project and logs it.
func (b *ProjectBook) Unassign(project *models.Project, person *models.Person, at time.Time) error {
	stored, err := b.checkPresent(project, person)
	if err != nil {
		return err
	}
	i, ok := b.memberIndex(project, person)
	if !ok {
		return fmt.Errorf("%w: %s in %s", ErrNotMember, person.Name(), project.Name())
	}
	b.memberships = append(b.memberships[:i:i], b.memberships[i+1:]...)
	stored.Record(removedMessage(person), at)
	return nil
}

// MembersOf returns the members of project in the order they were assigned.
func (b *ProjectBook) MembersOf(project *models.Project) []*models.Person {
	var members []*models.Person
	for _, m := range b.memberships {
		if m.ProjectID != project.ID() {
			continue
		}
		if p, ok := b.persons.Get(m.PersonID); ok {
			members = append(members, p)
		}
	}
	return members
}

// ProjectsOf returns the projects person belongs to, in assignment order.
func (b *ProjectBook) ProjectsOf(person *models.Person) []*models.Project {
	var projects []*models.Project
	for _, m := range b.memberships {
		if m.PersonID != person.ID() {
			continue
		}
		if p, ok := b.projects.Get(m.ProjectID); ok {
			projects = append(projects, p)
		}
	}
	return projects
}

func (b *ProjectBook) memberIndex(project *models.Project, person *models.Person) (int, bool) {
	for i, m := range b.memberships {
		if m.ProjectID != project.ID() {
			continue
		}
		member, ok := b.persons.Get(m.PersonID)
		if ok && member.IsSamePerson(person) {
			return i, true
		}
	}
	return -1, false
}

// checkPresent returns the book's own instance of project.
func (b *ProjectBook) checkPresent(project *models.Project, person *models.Person) (*models.Project, error) {
	stored, ok := b.projects.Get(project.ID())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, project.Name())
	}
	if _, ok := b.persons.Get(person.ID()); !ok {
		return nil, fmt.Errorf("%w: %s", ErrPersonNotFound, person.Name())
	}
	return stored, nil
}

func (b *ProjectBook) pruneMemberships() {
	kept := b.memberships[:0:0]
	for _, m := range b.memberships {
		_, personOK := b.persons.Get(m.PersonID)
		_, projectOK := b.projects.Get(m.ProjectID)
		if personOK && projectOK {
			kept = append(kept, m)
		}
	}
	b.memberships = kept
}

func addedMessage(p *models.Person) string   { return "Added member: " + p.Name().String() }
func removedMessage(p *models.Person) string { return "Removed member: " + p.Name().String() }
