package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestSafeOrderClauseWhitelistsColumns(t *testing.T) {
	allowed := map[string]string{
		"created_at": "call_created_at",
		"title":      "call_title",
	}

	p := Params{SortBy: "title", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY call_title ASC", clause)

	// unknown keys fall back to the default column
	p = Params{SortBy: "call_title; DROP TABLE users", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY call_created_at DESC", clause)
}

func TestOrderExprStripsKeyword(t *testing.T) {
	allowed := map[string]string{"created_at": "gallery_created_at"}
	p := Params{SortBy: "created_at", SortOrder: "desc"}

	expr, err := p.OrderExpr(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "gallery_created_at DESC", expr)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(120, Params{Page: 2, PerPage: 50})

	assert.Equal(t, int64(120), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 3, *meta.NextPage)
	assert.Equal(t, 1, *meta.PrevPage)
}

func TestBuildMetaEmpty(t *testing.T) {
	meta := BuildMeta(0, Params{Page: 1, PerPage: 25})

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
	assert.Nil(t, meta.NextPage)
	assert.Nil(t, meta.PrevPage)
}
