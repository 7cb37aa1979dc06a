package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name        string
		jdScore     float64
		skillsScore float64
		want        float64
	}{
		{name: "half jd score", jdScore: 0.5, skillsScore: 40, want: 55.0},
		{name: "zeros", jdScore: 0, skillsScore: 0, want: 0},
		{name: "maximum", jdScore: 1, skillsScore: 70, want: 100},
		{name: "rounded to two places", jdScore: 0.3333, skillsScore: 10.111, want: 20.11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OverallScore(tt.jdScore, tt.skillsScore), 1e-9)
		})
	}
}

func TestNewAIResult(t *testing.T) {
	desc := "strong Go background"
	r := NewAIResult(AIResultInput{JDID: "jd", Name: "Alice", SkillsScore: 40, JDScore: 0.5, Description: &desc}, "owner")

	assert.Equal(t, "jd", r.JDID)
	assert.Equal(t, "owner", r.UserID)
	assert.Equal(t, "Alice", r.Name)
	assert.Equal(t, 55.0, r.OverallScore)
	assert.Equal(t, &desc, r.Description)
}
