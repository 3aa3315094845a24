package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/testutil"
)

func TestUniquePersonList(t *testing.T) {
	alice := testutil.Volunteer(t, "Alice Tan", "alice@x.com")
	bob := testutil.Volunteer(t, "Bob Lee", "bob@x.com")

	t.Run("add rejects strong duplicate", func(t *testing.T) {
		l := NewUniquePersonList()
		require.NoError(t, l.Add(alice))
		twin := testutil.Volunteer(t, "Alice Tan", "alice@x.com")
		assert.ErrorIs(t, l.Add(twin), ErrDuplicatePerson)
		assert.ErrorIs(t, l.Add(alice), ErrDuplicatePerson)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("set replaces in place", func(t *testing.T) {
		l := NewUniquePersonList()
		require.NoError(t, l.Add(alice))
		require.NoError(t, l.Add(bob))

		f := alice.Fields()
		f.Name = testutil.Name(t, "Alice Lim")
		edited, err := alice.With(f)
		require.NoError(t, err)

		require.NoError(t, l.SetPerson(alice, edited))
		all := l.All()
		assert.Equal(t, "Alice Lim", all[0].Name().String())
		assert.Equal(t, bob, all[1])
	})

	t.Run("set rejects clash with another element", func(t *testing.T) {
		l := NewUniquePersonList()
		require.NoError(t, l.Add(alice))
		require.NoError(t, l.Add(bob))

		edited, err := alice.With(bob.Fields())
		require.NoError(t, err)
		assert.ErrorIs(t, l.SetPerson(alice, edited), ErrDuplicatePerson)
	})

	t.Run("set and remove of absent target", func(t *testing.T) {
		l := NewUniquePersonList()
		assert.ErrorIs(t, l.SetPerson(alice, alice), ErrPersonNotFound)
		assert.ErrorIs(t, l.Remove(alice), ErrPersonNotFound)
	})

	t.Run("bulk replace is all or nothing", func(t *testing.T) {
		l := NewUniquePersonList()
		require.NoError(t, l.Add(bob))

		twin := testutil.Volunteer(t, "Alice Tan", "alice@x.com")
		assert.ErrorIs(t, l.SetPersons(append(l.All(), alice, twin)), ErrDuplicatePerson)
		assert.Equal(t, 1, l.Len())

		require.NoError(t, l.SetPersons([]*models.Person{alice}))
		assert.Equal(t, []*models.Person{alice}, l.All())
	})

	t.Run("view is a copy", func(t *testing.T) {
		l := NewUniquePersonList()
		require.NoError(t, l.Add(alice))
		view := l.All()
		view[0] = bob
		assert.Equal(t, alice, l.All()[0])
	})
}

func TestUniqueProjectList(t *testing.T) {
	web := testutil.Project(t, "Website Revamp", "")
	fund := testutil.Project(t, "Fundraiser", "")

	t.Run("add rejects normalised name clash", func(t *testing.T) {
		l := NewUniqueProjectList()
		require.NoError(t, l.Add(web))
		assert.ErrorIs(t, l.Add(testutil.Project(t, "website  REVAMP", "other")), ErrDuplicateProject)
	})

	t.Run("find by name", func(t *testing.T) {
		l := NewUniqueProjectList()
		require.NoError(t, l.Add(web))
		require.NoError(t, l.Add(fund))

		got, ok := l.FindByName("  WEBSITE    revamp ")
		require.True(t, ok)
		assert.Equal(t, web, got)

		_, ok = l.FindByName("Website")
		assert.False(t, ok)
	})

	t.Run("rename onto another project fails", func(t *testing.T) {
		l := NewUniqueProjectList()
		require.NoError(t, l.Add(web))
		require.NoError(t, l.Add(fund))

		renamed := web.WithDetails(fund.Name(), web.Description())
		assert.ErrorIs(t, l.SetProject(renamed), ErrDuplicateProject)

		relaunched := web.WithDetails(testutil.ProjectName(t, "Website Relaunch"), web.Description())
		require.NoError(t, l.SetProject(relaunched))
		_, found := l.FindByName("website relaunch")
		assert.True(t, found)
	})

	t.Run("bulk replace is all or nothing", func(t *testing.T) {
		l := NewUniqueProjectList()
		require.NoError(t, l.Add(fund))
		clash := testutil.Project(t, "FUNDRAISER", "")
		assert.ErrorIs(t, l.SetProjects([]*models.Project{web, fund, clash}), ErrDuplicateProject)
		assert.Equal(t, []*models.Project{fund}, l.All())
	})

	t.Run("remove absent", func(t *testing.T) {
		l := NewUniqueProjectList()
		assert.ErrorIs(t, l.Remove(web), ErrProjectNotFound)
	})
}
