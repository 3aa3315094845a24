package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/projectbook/internal/book"
	"github.com/mmynk/projectbook/internal/storage"
	"github.com/mmynk/projectbook/internal/testutil"
)

func sampleSnapshot(t *testing.T) *storage.Snapshot {
	t.Helper()
	clock := testutil.Clock()
	b := book.New()

	alice := testutil.Volunteer(t, "Alice Tan", "alice@x.com",
		testutil.WithPhone("+6591234567"), testutil.WithTags("lead"), testutil.WithRemarks("call back"))
	bob := testutil.TeamMember(t, "Bob Lee", "bob@x.com", "Events", testutil.WithTelegram("boblee"))
	require.NoError(t, b.AddPerson(alice))
	require.NoError(t, b.AddPerson(bob))

	web := testutil.Project(t, "Website Revamp", "new look")
	web.Record("Project created", clock())
	require.NoError(t, b.AddProject(web))
	require.NoError(t, b.Assign(web, alice, clock()))
	require.NoError(t, b.Assign(web, bob, clock()))

	return storage.FromBook(b)
}

func TestEncodeGolden(t *testing.T) {
	data, err := Encode(sampleSnapshot(t))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "snapshot", data)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "book.json")
	store := New(path)
	defer store.Close()

	want := sampleSnapshot(t)
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent.json"))

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{persons: ["},
		{"wrong type", `{"version": 1, "persons": {"a": 1}}`},
		{"future version", `{"version": 99, "persons": [], "projects": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "book.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := New(path).Load(context.Background())
			assert.ErrorIs(t, err, storage.ErrMalformedRecord)
		})
	}
}

func TestSavePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := New(filepath.Join(dir, "book.json")).Save(context.Background(), sampleSnapshot(t))
	assert.ErrorIs(t, err, storage.ErrPermissionDenied)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := New(filepath.Join(t.TempDir(), "book.json"))

	assert.ErrorIs(t, store.Save(ctx, sampleSnapshot(t)), context.Canceled)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
