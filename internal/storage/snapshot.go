package storage

import (
	"time"

	"github.com/mmynk/projectbook/internal/book"
	"github.com/mmynk/projectbook/internal/models"
)

// SnapshotVersion is written into every snapshot.
const SnapshotVersion = 1

// Snapshot is the flat, storage-neutral form of a project book. Persons are
// keyed by email and projects by name; no IDs are persisted.
type Snapshot struct {
	Version  int             `json:"version"`
	Persons  []PersonRecord  `json:"persons"`
	Projects []ProjectRecord `json:"projects"`
}

type PersonRecord struct {
	Role         string         `json:"role"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	Telegram     string         `json:"telegram,omitempty"`
	Committee    string         `json:"committee,omitempty"`
	Organisation string         `json:"organisation,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Remarks      []RemarkRecord `json:"remarks,omitempty"`

	// Projects names the person's projects for readers of the file. Loading
	// ignores it; memberships come from ProjectRecord.Members.
	Projects []string `json:"projects,omitempty"`
}

type RemarkRecord struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}

type ProjectRecord struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	Updates     []UpdateRecord `json:"updates,omitempty"`

	// Members lists member emails in assignment order.
	Members []string `json:"members"`
}

type UpdateRecord struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// FromBook captures b as a snapshot.
func FromBook(b book.ReadOnlyBook) *Snapshot {
	s := &Snapshot{
		Version:  SnapshotVersion,
		Persons:  []PersonRecord{},
		Projects: []ProjectRecord{},
	}
	for _, p := range b.Persons() {
		s.Persons = append(s.Persons, personRecord(p, b.ProjectsOf(p)))
	}
	for _, p := range b.Projects() {
		s.Projects = append(s.Projects, projectRecord(p, b.MembersOf(p)))
	}
	return s
}

func personRecord(p *models.Person, projects []*models.Project) PersonRecord {
	r := PersonRecord{
		Role:  p.Role().String(),
		Name:  p.Name().String(),
		Email: p.Email().String(),
	}
	if v, ok := p.Phone(); ok {
		r.Phone = v.String()
	}
	if v, ok := p.Telegram(); ok {
		r.Telegram = v.String()
	}
	if v, ok := p.Committee(); ok {
		r.Committee = v.String()
	}
	if v, ok := p.Organisation(); ok {
		r.Organisation = v.String()
	}
	for _, t := range p.Tags() {
		r.Tags = append(r.Tags, t.String())
	}
	for _, rm := range p.Remarks() {
		r.Remarks = append(r.Remarks, RemarkRecord{Content: rm.Content(), Status: rm.Status().String()})
	}
	for _, project := range projects {
		r.Projects = append(r.Projects, project.Name().String())
	}
	return r
}

func projectRecord(p *models.Project, members []*models.Person) ProjectRecord {
	r := ProjectRecord{
		Name:        p.Name().String(),
		Description: p.Description().String(),
		CreatedAt:   p.CreatedAt().UTC(),
		Members:     []string{},
	}
	for _, u := range p.Updates() {
		r.Updates = append(r.Updates, UpdateRecord{Message: u.Message, At: u.At.UTC()})
	}
	for _, m := range members {
		r.Members = append(r.Members, m.Email().String())
	}
	return r
}
