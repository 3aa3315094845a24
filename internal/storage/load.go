package storage

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/projectbook/internal/book"
	"github.com/mmynk/projectbook/internal/models"
)

// ToBook rebuilds a project book in two passes. The first pass materialises
// every person and project and fails on any malformed record. The second
// links members by email; an email that matches no person, or that names a
// person already in the project, is logged and skipped.
func (s *Snapshot) ToBook(logger *slog.Logger) (*book.ProjectBook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := book.New()

	byEmail := make(map[string]*models.Person, len(s.Persons))
	for i, r := range s.Persons {
		p, err := r.toPerson()
		if err != nil {
			return nil, fmt.Errorf("%w: person %d (%s): %v", ErrMalformedRecord, i+1, r.Email, err)
		}
		key := p.Email().Key()
		if _, dup := byEmail[key]; dup {
			return nil, fmt.Errorf("%w: person %d: email %s appears more than once", ErrMalformedRecord, i+1, r.Email)
		}
		if err := b.AddPerson(p); err != nil {
			return nil, fmt.Errorf("%w: person %d: %v", ErrMalformedRecord, i+1, err)
		}
		byEmail[key] = p
	}

	projects := make([]*models.Project, len(s.Projects))
	for i, r := range s.Projects {
		p, err := r.toProject()
		if err != nil {
			return nil, fmt.Errorf("%w: project %d (%s): %v", ErrMalformedRecord, i+1, r.Name, err)
		}
		if err := b.AddProject(p); err != nil {
			return nil, fmt.Errorf("%w: project %d: %v", ErrMalformedRecord, i+1, err)
		}
		projects[i] = p
	}

	for i, r := range s.Projects {
		for _, email := range r.Members {
			e, err := models.NewEmail(email)
			if err != nil {
				logger.Warn("Skipping invalid member email", "project", r.Name, "email", email)
				continue
			}
			person, ok := byEmail[e.Key()]
			if !ok {
				logger.Warn("Skipping unknown project member", "project", r.Name, "email", email)
				continue
			}
			if err := b.Link(projects[i], person); err != nil {
				if errors.Is(err, book.ErrAlreadyMember) {
					logger.Warn("Skipping repeated project member", "project", r.Name, "email", email)
					continue
				}
				return nil, fmt.Errorf("failed to link %s to %s: %w", email, r.Name, err)
			}
		}
	}
	return b, nil
}

func (r PersonRecord) toPerson() (*models.Person, error) {
	var (
		f   models.PersonFields
		err error
	)
	if f.Role, err = models.ParseRole(r.Role); err != nil {
		return nil, err
	}
	if f.Name, err = models.NewName(r.Name); err != nil {
		return nil, err
	}
	if f.Email, err = models.NewEmail(r.Email); err != nil {
		return nil, err
	}
	if f.Phone, err = optional(r.Phone, models.NewPhone); err != nil {
		return nil, err
	}
	if f.Telegram, err = optional(r.Telegram, models.NewTelegram); err != nil {
		return nil, err
	}
	if f.Committee, err = optional(r.Committee, models.NewCommittee); err != nil {
		return nil, err
	}
	if f.Organisation, err = optional(r.Organisation, models.NewOrganisation); err != nil {
		return nil, err
	}
	for _, raw := range r.Tags {
		t, err := models.NewTag(raw)
		if err != nil {
			return nil, err
		}
		f.Tags = append(f.Tags, t)
	}
	for _, rr := range r.Remarks {
		status, err := models.ParseRemarkStatus(rr.Status)
		if err != nil {
			return nil, err
		}
		rm, err := models.RestoreRemark(rr.Content, status)
		if err != nil {
			return nil, err
		}
		f.Remarks = append(f.Remarks, rm)
	}
	return models.NewPerson(f)
}

func (r ProjectRecord) toProject() (*models.Project, error) {
	name, err := models.NewProjectName(r.Name)
	if err != nil {
		return nil, err
	}
	description, err := models.NewDescription(r.Description)
	if err != nil {
		return nil, err
	}
	if r.CreatedAt.IsZero() {
		return nil, errors.New("missing created_at")
	}
	updates := make([]models.ProjectUpdate, 0, len(r.Updates))
	for _, u := range r.Updates {
		updates = append(updates, models.ProjectUpdate{Message: u.Message, At: u.At})
	}
	return models.RestoreProject(name, description, r.CreatedAt, updates), nil
}

// optional parses raw unless it is empty.
func optional[T any](raw string, parse func(string) (T, error)) (*T, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
