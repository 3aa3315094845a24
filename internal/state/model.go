// Package state is the facade commands operate on. It owns the project book,
// the active list filters and the user preferences, and holds no business
// rules of its own.
package state

import (
	"time"

	"github.com/mmynk/projectbook/internal/book"
	"github.com/mmynk/projectbook/internal/config"
	"github.com/mmynk/projectbook/internal/models"
)

// PersonPredicate selects persons for the filtered view.
type PersonPredicate func(*models.Person) bool

// ProjectPredicate selects projects for the filtered view.
type ProjectPredicate func(*models.Project) bool

// ShowAllPersons and ShowAllProjects are the default filters.
func ShowAllPersons(*models.Person) bool   { return true }
func ShowAllProjects(*models.Project) bool { return true }

// Model is the only surface commands may touch.
type Model interface {
	Prefs() config.Prefs
	SetPrefs(prefs config.Prefs)
	DataFilePath() string
	SetDataFilePath(path string)

	// Book exposes the read side of the project book.
	Book() book.ReadOnlyBook
	SetBook(b *book.ProjectBook)
	ClearBook()

	// Now is the clock used for creation times and update logs.
	Now() time.Time

	HasPerson(p *models.Person) bool
	FindSimilarPerson(p *models.Person, exclude models.PersonID) (*models.Person, bool)
	AddPerson(p *models.Person) error
	DeletePerson(p *models.Person) error
	SetPerson(target, edited *models.Person) error
	PersonsNamed(name models.Name) []*models.Person
	FilteredPersons() []*models.Person
	UpdatePersonFilter(pred PersonPredicate)

	HasProject(p *models.Project) bool
	AddProject(p *models.Project) error
	DeleteProject(p *models.Project) error
	SetProject(p *models.Project) error
	FindProject(name string) (*models.Project, bool)
	FilteredProjects() []*models.Project
	UpdateProjectFilter(pred ProjectPredicate)

	AssignToProject(project *models.Project, person *models.Person) error
	RemoveFromProject(project *models.Project, person *models.Person) error
	IsMember(project *models.Project, person *models.Person) bool
	MembersOf(project *models.Project) []*models.Person
	ProjectsOf(person *models.Person) []*models.Project
}
