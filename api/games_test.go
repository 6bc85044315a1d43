package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	if raw == "" {
		return url.Values{}
	}
	values, err := url.ParseQuery(raw[1:])
	require.NoError(t, err)
	return values
}

func TestListGamesParams_SingleCategorySetsBothKeys(t *testing.T) {
	q := mustParseQuery(t, ListGamesParams{AgeCategoryIDs: []int64{3}}.query())

	assert.Equal(t, "3", q.Get("age_category_id"))
	assert.Equal(t, "3", q.Get("age"))
}

func TestListGamesParams_MultipleCategoriesUseAliasOnly(t *testing.T) {
	q := mustParseQuery(t, ListGamesParams{EducationCategoryIDs: []int64{1, 4, 9}}.query())

	assert.Empty(t, q.Get("education_category_id"))
	assert.Equal(t, "1,4,9", q.Get("education"))
}

func TestListGamesParams_InvalidIDsDropped(t *testing.T) {
	q := mustParseQuery(t, ListGamesParams{AgeCategoryIDs: []int64{0, -2}}.query())
	assert.Empty(t, q)
}

func TestListGamesParams_PopularSortExpands(t *testing.T) {
	q := mustParseQuery(t, ListGamesParams{Sort: GamesSortPopular}.query())

	assert.Equal(t, "popular", q.Get("sort"))
	assert.Equal(t, "play_count", q.Get("sort_by"))
	assert.Equal(t, "desc", q.Get("order"))
}

func TestListGamesParams_NewestSortStaysPlain(t *testing.T) {
	q := mustParseQuery(t, ListGamesParams{Sort: GamesSortNewest}.query())

	assert.Equal(t, "newest", q.Get("sort"))
	assert.Empty(t, q.Get("sort_by"))
}

func TestListGamesParams_UnknownSortIgnored(t *testing.T) {
	q := mustParseQuery(t, ListGamesParams{Sort: "alphabetical"}.query())
	assert.Empty(t, q)
}

func TestAdminListGamesParams_Query(t *testing.T) {
	q := mustParseQuery(t, AdminListGamesParams{
		Status: GameStatusDraft,
		Page:   2,
		Limit:  50,
		Query:  " puzzle ",
	}.query())

	assert.Equal(t, "draft", q.Get("status"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "puzzle", q.Get("q"))
}
