package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   Source
	}{
		{
			name:   "default branch",
			source: "github:owner/repo/gfx.bas",
			want:   Source{Owner: "owner", Repo: "repo", Path: "gfx.bas"},
		},
		{
			name:   "nested path with tag",
			source: "github:owner/repo/lib/gfx.bas@v1.2.0",
			want:   Source{Owner: "owner", Repo: "repo", Path: "lib/gfx.bas", Ref: "v1.2.0"},
		},
		{
			name:   "commit sha",
			source: "github:o/r/a/b/c.bas@3f2a9c1",
			want:   Source{Owner: "o", Repo: "r", Path: "a/b/c.bas", Ref: "3f2a9c1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSource(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.source, got.String())
		})
	}
}

func TestParseSource_Invalid(t *testing.T) {
	for _, source := range []string{
		"https://github.com/o/r/x.bas",
		"github:",
		"github:owner",
		"github:owner/repo",
		"github:owner//x.bas",
		"github:owner/repo/x.bas@",
	} {
		t.Run(source, func(t *testing.T) {
			_, err := ParseSource(source)
			assert.ErrorIs(t, err, ErrInvalidSource)
		})
	}
}
