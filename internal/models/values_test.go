package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "Alice Tan", want: "Alice Tan"},
		{raw: "  Alice   Tan  ", want: "Alice Tan"},
		{raw: "Jean-Luc O'Neil Jr.", want: "Jean-Luc O'Neil Jr."},
		{raw: "Zoë", want: "Zoë"},
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
		{raw: "-Alice", wantErr: true},
		{raw: "Alice*", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NewName(tt.raw)
			if tt.wantErr {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
				assert.Equal(t, "name", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestName_EqualFold(t *testing.T) {
	a, err := NewName("Alex Tan")
	require.NoError(t, err)
	b, err := NewName("alex   TAN")
	require.NoError(t, err)
	c, err := NewName("Alex Tang")
	require.NoError(t, err)

	assert.True(t, a.EqualFold(b))
	assert.False(t, a.EqualFold(c))
}

func TestNewEmail(t *testing.T) {
	e, err := NewEmail(" Alice@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Alice@Example.com", e.String())
	assert.Equal(t, "alice@example.com", e.Key())

	other, err := NewEmail("alice@example.COM")
	require.NoError(t, err)
	assert.True(t, e.Equal(other))

	for _, raw := range []string{"", "alice", "alice@", "@example.com"} {
		_, err := NewEmail(raw)
		assert.Error(t, err, "email %q should be rejected", raw)
	}
}

func TestNewPhone(t *testing.T) {
	p, err := NewPhone("+65 9123-4567")
	require.NoError(t, err)
	assert.Equal(t, "+6591234567", p.String())

	for _, raw := range []string{"", "12", "phone", "+", "1234567890123456"} {
		_, err := NewPhone(raw)
		assert.Error(t, err, "phone %q should be rejected", raw)
	}
}

func TestNewTelegram(t *testing.T) {
	tg, err := NewTelegram("alice_tan")
	require.NoError(t, err)
	assert.Equal(t, "@alice_tan", tg.String())

	same, err := NewTelegram("@Alice_Tan")
	require.NoError(t, err)
	assert.True(t, tg.Equal(same))

	for _, raw := range []string{"", "@", "@abc", "@has space", "@has-dash"} {
		_, err := NewTelegram(raw)
		assert.Error(t, err, "telegram %q should be rejected", raw)
	}
}

func TestProjectName_Key(t *testing.T) {
	a, err := NewProjectName("  Website   Revamp ")
	require.NoError(t, err)
	assert.Equal(t, "Website Revamp", a.String())

	b, err := NewProjectName("website revamp")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	_, err = NewProjectName("   ")
	assert.Error(t, err)
}

func TestNewDescription(t *testing.T) {
	d, err := NewDescription("")
	require.NoError(t, err)
	assert.Equal(t, "", d.String())

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	_, err = NewDescription(string(long))
	assert.Error(t, err)
}

func TestNewTag(t *testing.T) {
	_, err := NewTag("first-aid")
	assert.NoError(t, err)

	for _, raw := range []string{"", "two words", "-lead", "emoji🙂"} {
		_, err := NewTag(raw)
		assert.Error(t, err, "tag %q should be rejected", raw)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "website revamp", Normalize("  Website \t Revamp "))
	assert.Equal(t, Normalize("Caf\u00e9"), Normalize("CAFE\u0301"))
}
