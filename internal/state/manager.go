package state

import (
	"time"

	"github.com/mmynk/projectbook/internal/book"
	"github.com/mmynk/projectbook/internal/config"
	"github.com/mmynk/projectbook/internal/models"
)

// Ensure Manager implements Model
var _ Model = (*Manager)(nil)

// Manager implements Model over a single ProjectBook. It is not safe for
// concurrent use; hosts that share it must serialise access.
type Manager struct {
	book          *book.ProjectBook
	prefs         config.Prefs
	personFilter  PersonPredicate
	projectFilter ProjectPredicate
	now           func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager copies b so that later changes to b do not leak into the model.
func NewManager(b *book.ProjectBook, prefs config.Prefs, opts ...Option) *Manager {
	if b == nil {
		b = book.New()
	}
	m := &Manager{
		book:          b.Clone(),
		prefs:         prefs,
		personFilter:  ShowAllPersons,
		projectFilter: ShowAllProjects,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Prefs() config.Prefs         { return m.prefs }
func (m *Manager) SetPrefs(prefs config.Prefs) { m.prefs = prefs }
func (m *Manager) DataFilePath() string        { return m.prefs.DataFile }
func (m *Manager) SetDataFilePath(path string) { m.prefs.DataFile = path }

func (m *Manager) Book() book.ReadOnlyBook { return m.book }

// ProjectBook returns the live book for persistence.
func (m *Manager) ProjectBook() *book.ProjectBook { return m.book }

func (m *Manager) SetBook(b *book.ProjectBook) { m.book = b.Clone() }
func (m *Manager) ClearBook()                  { m.book.Clear() }

func (m *Manager) Now() time.Time { return m.now() }

func (m *Manager) HasPerson(p *models.Person) bool {
	_, ok := m.book.FindSimilarPerson(p, "")
	return ok
}

func (m *Manager) FindSimilarPerson(p *models.Person, exclude models.PersonID) (*models.Person, bool) {
	return m.book.FindSimilarPerson(p, exclude)
}

func (m *Manager) AddPerson(p *models.Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.personFilter = ShowAllPersons
	return nil
}

func (m *Manager) DeletePerson(p *models.Person) error { return m.book.RemovePerson(p, m.now()) }

func (m *Manager) SetPerson(target, edited *models.Person) error {
	return m.book.SetPerson(target, edited)
}

// PersonsNamed returns every person in the book whose name matches name
// ignoring case and spacing.
func (m *Manager) PersonsNamed(name models.Name) []*models.Person {
	var matches []*models.Person
	for _, p := range m.book.Persons() {
		if p.Name().EqualFold(name) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FilteredPersons evaluates the current filter against the current book, so
// the result always reflects the latest mutation.
func (m *Manager) FilteredPersons() []*models.Person {
	var out []*models.Person
	for _, p := range m.book.Persons() {
		if m.personFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) UpdatePersonFilter(pred PersonPredicate) {
	if pred == nil {
		pred = ShowAllPersons
	}
	m.personFilter = pred
}

func (m *Manager) HasProject(p *models.Project) bool { return m.book.HasProject(p) }

func (m *Manager) AddProject(p *models.Project) error {
	if err := m.book.AddProject(p); err != nil {
		return err
	}
	m.projectFilter = ShowAllProjects
	return nil
}

func (m *Manager) DeleteProject(p *models.Project) error { return m.book.RemoveProject(p) }
func (m *Manager) SetProject(p *models.Project) error    { return m.book.SetProject(p) }

func (m *Manager) FindProject(name string) (*models.Project, bool) {
	return m.book.FindProject(name)
}

func (m *Manager) FilteredProjects() []*models.Project {
	var out []*models.Project
	for _, p := range m.book.Projects() {
		if m.projectFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) UpdateProjectFilter(pred ProjectPredicate) {
	if pred == nil {
		pred = ShowAllProjects
	}
	m.projectFilter = pred
}

func (m *Manager) AssignToProject(project *models.Project, person *models.Person) error {
	return m.book.Assign(project, person, m.now())
}

func (m *Manager) RemoveFromProject(project *models.Project, person *models.Person) error {
	return m.book.Unassign(project, person, m.now())
}

func (m *Manager) IsMember(project *models.Project, person *models.Person) bool {
	return m.book.IsMember(project, person)
}

func (m *Manager) MembersOf(project *models.Project) []*models.Person {
	return m.book.MembersOf(project)
}

func (m *Manager) ProjectsOf(person *models.Person) []*models.Project {
	return m.book.ProjectsOf(person)
}
