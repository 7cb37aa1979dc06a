package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCountOwnedQuery(t *testing.T) {
	query, args, err := buildCountOwnedQuery("owner", []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "SELECT COUNT(DISTINCT id) FROM job_descriptions"))
	// squirrel generates IN ($2,$3,$4) for a slice.
	assert.Contains(t, query, "user_id = $1")
	assert.Contains(t, query, "id IN ($2,$3,$4)")
	assert.Equal(t, []any{"owner", "a", "b", "c"}, args)
}

func Test_buildInsertAIResultsQuery(t *testing.T) {
	desc := "ok"
	results := []models.AIResult{
		{ID: "r1", JDID: "jd", UserID: "u", Name: "A", SkillsScore: 1, JDScore: 0.1, OverallScore: 4, Description: &desc},
		{ID: "r2", JDID: "jd", UserID: "u", Name: "B"},
	}

	query, args, err := buildInsertAIResultsQuery(results)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO ai_results"))
	assert.Contains(t, query, "$9")
	assert.Contains(t, query, "$18")
	assert.NotContains(t, query, "$19")
	assert.Equal(t, 1, strings.Count(query, "INSERT"))
	require.Len(t, args, 18)
	assert.Equal(t, "r1", args[0])
	assert.Equal(t, "r2", args[9])
}
