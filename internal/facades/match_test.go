package facades

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viagemtrack/travelog/internal/models"
)

func candidates(names ...string) []models.GeoCountry {
	out := make([]models.GeoCountry, 0, len(names))
	for _, n := range names {
		out = append(out, models.GeoCountry{Code: n[:2], Name: n})
	}
	return out
}

func TestMatchCountry_ExactMatch(t *testing.T) {
	list := []models.GeoCountry{
		{Code: "BA", Name: "Bosnia and Herzegovina"},
		{Code: "BR", Name: "Brazil"},
	}

	got := MatchCountry("brazil", list)
	assert.NotNil(t, got)
	assert.Equal(t, "BR", got.Code)

	// Exact match is case-insensitive and ignores surrounding whitespace
	got = MatchCountry("  BRAZIL ", list)
	assert.NotNil(t, got)
	assert.Equal(t, "BR", got.Code)
}

func TestMatchCountry_ExactMatchIgnoresOrder(t *testing.T) {
	forward := []models.GeoCountry{
		{Code: "AU", Name: "Austria"},
		{Code: "AL", Name: "Australia"},
	}
	reversed := []models.GeoCountry{forward[1], forward[0]}

	got := MatchCountry("austria", forward)
	assert.NotNil(t, got)
	assert.Equal(t, "Austria", got.Name)

	got = MatchCountry("austria", reversed)
	assert.NotNil(t, got)
	assert.Equal(t, "Austria", got.Name)
}

func TestMatchCountry_PrefixMatch(t *testing.T) {
	list := candidates("Portugal", "Poland")

	got := MatchCountry("portu", list)
	assert.NotNil(t, got)
	assert.Equal(t, "Portugal", got.Name)
}

func TestMatchCountry_PrefixTiesAreOrderDependent(t *testing.T) {
	// Within a tier, the first candidate in input order wins. There is
	// no "best" answer for "United"; the tie-break is input order and
	// that behavior is deliberate.
	first := []models.GeoCountry{
		{Code: "US", Name: "United States"},
		{Code: "GB", Name: "United Kingdom"},
	}
	second := []models.GeoCountry{first[1], first[0]}

	got := MatchCountry("United", first)
	assert.NotNil(t, got)
	assert.Equal(t, "United States", got.Name)

	got = MatchCountry("United", second)
	assert.NotNil(t, got)
	assert.Equal(t, "United Kingdom", got.Name)
}

func TestMatchCountry_WordMatch(t *testing.T) {
	list := []models.GeoCountry{
		{Code: "ZA", Name: "South Africa"},
		{Code: "KR", Name: "South Korea"},
	}

	// "africa" is not a prefix of any candidate, but is a word of one
	got := MatchCountry("africa", list)
	assert.NotNil(t, got)
	assert.Equal(t, "South Africa", got.Name)

	// word-prefix also counts
	got = MatchCountry("kor", list)
	assert.NotNil(t, got)
	assert.Equal(t, "South Korea", got.Name)
}

func TestMatchCountry_TierPrecedence(t *testing.T) {
	// A prefix-match candidate beats a substring-only candidate even
	// when the substring candidate comes first in input order.
	list := []models.GeoCountry{
		{Code: "NI", Name: "India"},      // substring match only for "ind"... also prefix
		{Code: "ID", Name: "Indonesia"},  // prefix match for "ind"
		{Code: "GQ", Name: "New Guinea"}, // word match for "guine"
		{Code: "GN", Name: "Guinea"},     // prefix match for "guine"
	}

	got := MatchCountry("guine", list)
	assert.NotNil(t, got)
	assert.Equal(t, "GN", got.Code, "prefix tier must beat the word tier")
}

func TestMatchCountry_SubstringGuard(t *testing.T) {
	// "chi" is contained in "Chile" (5 runes < 9) but the guard rejects
	// any candidate whose name is at least three times the query length.
	list := []models.GeoCountry{
		{Code: "MX", Name: "Machinostan"}, // 11 runes >= 3*3, contains "chi"
	}
	assert.Nil(t, MatchCountry("chi", list))

	got := MatchCountry("hil", []models.GeoCountry{{Code: "CL", Name: "Chile"}})
	assert.NotNil(t, got)
	assert.Equal(t, "CL", got.Code)

	// Exactly 3x the query length is rejected: the guard is strict
	assert.Nil(t, MatchCountry("abc", []models.GeoCountry{{Code: "XX", Name: "zzzabczzz"}}))
}

func TestMatchCountry_EmptyCandidateList(t *testing.T) {
	assert.Nil(t, MatchCountry("brazil", nil))
	assert.Nil(t, MatchCountry("", []models.GeoCountry{}))
}

func TestMatchCountry_NoMatchIsNotAnError(t *testing.T) {
	list := candidates("Brazil", "Portugal")
	assert.Nil(t, MatchCountry("atlantis", list))
}
