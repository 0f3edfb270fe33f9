package slug

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Grand Soir", "grand-soir"},
		{"already lowercase", "premiere", "premiere"},
		{"strips diacritics", "Répétition générale à l'Opéra", "repetition-generale-a-lopera"},
		{"collapses whitespace runs", "Un   long\t titre", "un-long-titre"},
		{"collapses hyphen runs", "avant -- apres", "avant-apres"},
		{"drops punctuation", "Qui a peur ? (création 2026)", "qui-a-peur-creation-2026"},
		{"trims outer hyphens", " - entracte - ", "entracte"},
		{"keeps digits", "Saison 2025/2026", "saison-20252026"},
		{"empty title", "", ""},
		{"only punctuation", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}

	t.Run("output alphabet is always lowercase ascii, digits and hyphens", func(t *testing.T) {
		valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
		titles := []string{
			"Grand Soir", "L'Étranger", "noël en décembre", "日本語のタイトル mixed avec français",
			"A B C", "---", "éàüöñ", strings.Repeat("Très long titre ", 30),
		}
		for _, title := range titles {
			s := Make(title)
			if s == "" {
				continue
			}
			assert.True(t, valid.MatchString(s), "slug %q from title %q", s, title)
			assert.LessOrEqual(t, len(s), MaxLength)
		}
	})

	t.Run("truncates to max length without trailing hyphen", func(t *testing.T) {
		s := Make(strings.Repeat("abcde ", 40))
		assert.LessOrEqual(t, len(s), MaxLength)
		assert.False(t, strings.HasSuffix(s, "-"))
	})
}

func TestMakeWithFallback(t *testing.T) {
	t.Run("substitutes fixed base for empty result", func(t *testing.T) {
		assert.Equal(t, FallbackBase, MakeWithFallback("???"))
	})

	t.Run("keeps non-empty slug", func(t *testing.T) {
		assert.Equal(t, "grand-soir", MakeWithFallback("Grand Soir"))
	})
}

type fakeChecker struct {
	taken map[string]bool
	err   error
}

func (f *fakeChecker) SlugTaken(_ context.Context, slug string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.taken[slug], nil
}

func TestResolverUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("returns base slug when free", func(t *testing.T) {
		r := NewResolver(&fakeChecker{taken: map[string]bool{}})

		got, err := r.Unique(ctx, "Grand Soir")
		require.NoError(t, err)
		assert.Equal(t, "grand-soir", got)
	})

	t.Run("appends -2 on first collision", func(t *testing.T) {
		r := NewResolver(&fakeChecker{taken: map[string]bool{"grand-soir": true}})

		got, err := r.Unique(ctx, "Grand Soir")
		require.NoError(t, err)
		assert.Equal(t, "grand-soir-2", got)
	})

	t.Run("increments until free", func(t *testing.T) {
		r := NewResolver(&fakeChecker{taken: map[string]bool{
			"premiere":   true,
			"premiere-2": true,
			"premiere-3": true,
		}})

		got, err := r.Unique(ctx, "Première")
		require.NoError(t, err)
		assert.Equal(t, "premiere-4", got)
	})

	t.Run("uses fallback base for empty titles", func(t *testing.T) {
		r := NewResolver(&fakeChecker{taken: map[string]bool{"actualite": true}})

		got, err := r.Unique(ctx, "???")
		require.NoError(t, err)
		assert.Equal(t, "actualite-2", got)
	})

	t.Run("propagates probe errors", func(t *testing.T) {
		r := NewResolver(&fakeChecker{err: errors.New("connection lost")})

		_, err := r.Unique(ctx, "Grand Soir")
		assert.Error(t, err)
	})
}
