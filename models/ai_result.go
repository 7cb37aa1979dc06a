package models

import (
	"math"
	"time"
)

// Score weights used by OverallScore.
const (
	JDScoreWeight  = 30
	MaxSkillsScore = 70
	MaxJDScore     = 1
)

// AIResult is one candidate score for a JD.
type AIResult struct {
	ID           string    `json:"-"`
	JDID         string    `json:"jd_id"`
	UserID       string    `json:"-"`
	Name         string    `json:"name"`
	SkillsScore  float64   `json:"skills_score"`
	JDScore      float64   `json:"jd_score"`
	OverallScore float64   `json:"overall_score"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the AIResult model.
func (r AIResult) TableName() string {
	return "ai_results"
}

// AIResultInput is a single entry posted by the scorer to /ai/store.
type AIResultInput struct {
	JDID        string  `json:"jd_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,notblank"`
	SkillsScore float64 `json:"skills_score" validate:"gte=0,lte=70"`
	JDScore     float64 `json:"jd_score" validate:"gte=0,lte=1"`
	Description *string `json:"description,omitempty"`
}

// OverallScore combines the two partial scores:
// round(jdScore*30 + skillsScore, 2).
func OverallScore(jdScore, skillsScore float64) float64 {
	return math.Round((jdScore*JDScoreWeight+skillsScore)*100) / 100
}

// NewAIResult builds a stored result for owner from in.
func NewAIResult(in AIResultInput, ownerID string) AIResult {
	return AIResult{
		JDID:         in.JDID,
		UserID:       ownerID,
		Name:         in.Name,
		SkillsScore:  in.SkillsScore,
		JDScore:      in.JDScore,
		OverallScore: OverallScore(in.JDScore, in.SkillsScore),
		Description:  in.Description,
	}
}

// StoreResultsResponse is returned by POST /ai/store.
type StoreResultsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ResultsResponse is returned by GET /ai/results/{jd_id}.
type ResultsResponse struct {
	Results []AIResult `json:"results"`
}

// CountResponse is returned by GET /ai/candidate-count/{jd_id}.
type CountResponse struct {
	Count int64 `json:"count"`
}
