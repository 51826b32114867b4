package service

import (
	"testing"

	"github.com/starthobby/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHobbyEntryRepo struct {
	entries map[string]*model.HobbyEntry
	order   []string
}

func newFakeHobbyEntryRepo() *fakeHobbyEntryRepo {
	return &fakeHobbyEntryRepo{entries: map[string]*model.HobbyEntry{}}
}

func (f *fakeHobbyEntryRepo) Upsert(normalized, label string) (*model.HobbyEntry, error) {
	if entry, ok := f.entries[normalized]; ok {
		entry.Count++
		return entry, nil
	}
	entry := &model.HobbyEntry{Normalized: normalized, Label: label, Count: 1}
	f.entries[normalized] = entry
	f.order = append(f.order, normalized)
	return entry, nil
}

func (f *fakeHobbyEntryRepo) FindTop(limit int) ([]model.HobbyEntry, error) {
	var out []model.HobbyEntry
	for _, key := range f.order {
		if len(out) == limit {
			break
		}
		out = append(out, *f.entries[key])
	}
	return out, nil
}

func TestNormalizeHobby(t *testing.T) {
	assert.Equal(t, "chess", NormalizeHobby("Chess"))
	assert.Equal(t, "chess", NormalizeHobby("  chess "))
	assert.Equal(t, "rock climbing", NormalizeHobby("Rock Climbing"))
	assert.Equal(t, "", NormalizeHobby("   "))
}

func TestSubmitCollapsesCaseAndWhitespaceVariants(t *testing.T) {
	repo := newFakeHobbyEntryRepo()
	svc := NewHobbyEntryService(repo)

	first, err := svc.Submit("Chess")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count)

	second, err := svc.Submit("chess ")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Count)

	assert.Len(t, repo.entries, 1, "variants of the same word must share one row")
	// The first-seen casing is the display label.
	assert.Equal(t, "Chess", second.Hobby)
}

func TestSubmitRejectsBlankHobby(t *testing.T) {
	svc := NewHobbyEntryService(newFakeHobbyEntryRepo())

	_, err := svc.Submit("   ")
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestTopEntries(t *testing.T) {
	repo := newFakeHobbyEntryRepo()
	svc := NewHobbyEntryService(repo)

	_, err := svc.Submit("Painting")
	require.NoError(t, err)
	_, err = svc.Submit("painting")
	require.NoError(t, err)
	_, err = svc.Submit("Hiking")
	require.NoError(t, err)

	entries, err := svc.TopEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Painting", entries[0].Hobby)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, "Hiking", entries[1].Hobby)
	assert.Equal(t, 1, entries[1].Count)
}
