// Package testutil provides fixture builders shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/projectbook/internal/models"
)

// Epoch is the fixed creation time used by fixture projects.
var Epoch = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// Clock returns a deterministic clock that advances one minute per call,
// starting at Epoch.
func Clock() func() time.Time {
	next := Epoch
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

// PersonOption adjusts fields before a fixture person is built.
type PersonOption func(t testing.TB, f *models.PersonFields)

func WithPhone(raw string) PersonOption {
	return func(t testing.TB, f *models.PersonFields) {
		p, err := models.NewPhone(raw)
		require.NoError(t, err)
		f.Phone = &p
	}
}

func WithTelegram(raw string) PersonOption {
	return func(t testing.TB, f *models.PersonFields) {
		tg, err := models.NewTelegram(raw)
		require.NoError(t, err)
		f.Telegram = &tg
	}
}

func WithTags(raw ...string) PersonOption {
	return func(t testing.TB, f *models.PersonFields) {
		for _, r := range raw {
			tag, err := models.NewTag(r)
			require.NoError(t, err)
			f.Tags = append(f.Tags, tag)
		}
	}
}

func WithRemarks(contents ...string) PersonOption {
	return func(t testing.TB, f *models.PersonFields) {
		for _, c := range contents {
			f.Remarks = append(f.Remarks, Remark(t, c))
		}
	}
}

func Volunteer(t testing.TB, name, email string, opts ...PersonOption) *models.Person {
	t.Helper()
	return person(t, models.RoleVolunteer, name, email, opts)
}

func TeamMember(t testing.TB, name, email, committee string, opts ...PersonOption) *models.Person {
	t.Helper()
	c, err := models.NewCommittee(committee)
	require.NoError(t, err)
	opts = append([]PersonOption{func(_ testing.TB, f *models.PersonFields) { f.Committee = &c }}, opts...)
	return person(t, models.RoleTeamMember, name, email, opts)
}

func OrgMember(t testing.TB, name, email, organisation string, opts ...PersonOption) *models.Person {
	t.Helper()
	o, err := models.NewOrganisation(organisation)
	require.NoError(t, err)
	opts = append([]PersonOption{func(_ testing.TB, f *models.PersonFields) { f.Organisation = &o }}, opts...)
	return person(t, models.RoleOrgMember, name, email, opts)
}

func person(t testing.TB, role models.Role, name, email string, opts []PersonOption) *models.Person {
	t.Helper()
	f := models.PersonFields{Role: role, Name: Name(t, name)}
	e, err := models.NewEmail(email)
	require.NoError(t, err)
	f.Email = e
	for _, opt := range opts {
		opt(t, &f)
	}
	p, err := models.NewPerson(f)
	require.NoError(t, err)
	return p
}

func Name(t testing.TB, raw string) models.Name {
	t.Helper()
	n, err := models.NewName(raw)
	require.NoError(t, err)
	return n
}

func ProjectName(t testing.TB, raw string) models.ProjectName {
	t.Helper()
	n, err := models.NewProjectName(raw)
	require.NoError(t, err)
	return n
}

func Remark(t testing.TB, content string) models.Remark {
	t.Helper()
	r, err := models.NewRemark(content)
	require.NoError(t, err)
	return r
}

// Project returns a project created at Epoch.
func Project(t testing.TB, name, description string) *models.Project {
	t.Helper()
	d, err := models.NewDescription(description)
	require.NoError(t, err)
	return models.NewProject(ProjectName(t, name), d, Epoch)
}
