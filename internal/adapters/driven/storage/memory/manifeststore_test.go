package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

func TestManifestStore_LoadMissing(t *testing.T) {
	s := NewManifestStore()

	_, err := s.Load("Bargo.toml")

	assert.ErrorIs(t, err, domain.ErrManifestMissing)
}

func TestManifestStore_SaveSortsAndCopies(t *testing.T) {
	s := NewManifestStore()
	m := domain.NewManifest(domain.DefaultPackage("game", ""))
	m.Dependencies = []domain.Dependency{{Name: "zed"}, {Name: "alpha"}}

	require.NoError(t, s.Save("Bargo.toml", m))
	m.Dependencies[0].Name = "mutated"

	loaded, err := s.Load("Bargo.toml")
	require.NoError(t, err)
	assert.Equal(t, []domain.Dependency{{Name: "alpha"}, {Name: "zed"}}, loaded.Dependencies)

	loaded.Dependencies[0].Source = "https://x"
	again, err := s.Load("Bargo.toml")
	require.NoError(t, err)
	assert.Empty(t, again.Dependencies[0].Source)
}
