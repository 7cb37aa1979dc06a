package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resume-shortlister/internal/service"
	"github.com/MKhiriev/resume-shortlister/models"
)

func TestStoreResults(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.authorize()

	ts.scores.EXPECT().StoreBulk(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in []models.AIResultInput) (int, error) {
			require.Len(t, in, 2)
			assert.Equal(t, "Ann", in[0].Name)
			assert.Nil(t, in[1].Description)
			return len(in), nil
		})

	body := `[
		{"jd_id":"` + testJDID + `","name":"Ann","skills_score":50,"jd_score":0.5,"description":"strong"},
		{"jd_id":"` + testJDID + `","name":"Bob","skills_score":20,"jd_score":0.1}
	]`
	rec := serve(h, http.MethodPost, "/ai/store", strings.NewReader(body), bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"2 AI results stored successfully","count":2}`, rec.Body.String())
}

func TestStoreResults_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "empty batch", err: service.ErrNoResultsProvided, wantStatus: http.StatusBadRequest},
		{name: "foreign jd", err: service.ErrJDNotFound, wantStatus: http.StatusNotFound},
		{name: "store down", err: errors.New("insert failed"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.authorize()
			ts.scores.EXPECT().StoreBulk(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, tt.err)

			rec := serve(h, http.MethodPost, "/ai/store", strings.NewReader(`[]`), bearer())

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResults(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.authorize()

	description := "strong"
	ts.scores.EXPECT().Results(gomock.Any(), testUserID, testJDID).Return([]models.AIResult{
		{Name: "Ann", SkillsScore: 50, JDScore: 0.5, OverallScore: 65, Description: &description},
		{Name: "Bob", SkillsScore: 20, JDScore: 0.1, OverallScore: 23},
	}, nil)

	rec := serve(h, http.MethodGet, "/ai/results/"+testJDID, nil, bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[
		{"jd_id":"","name":"Ann","skills_score":50,"jd_score":0.5,"overall_score":65,"description":"strong"},
		{"jd_id":"","name":"Bob","skills_score":20,"jd_score":0.1,"overall_score":23,"description":null}
	]}`, rec.Body.String())
}

func TestResults_EmptyIsArray(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.authorize()
	ts.scores.EXPECT().Results(gomock.Any(), testUserID, testJDID).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/ai/results/"+testJDID, nil, bearer())

	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestCandidateCount(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.authorize()

	gomock.InOrder(
		ts.scores.EXPECT().Count(gomock.Any(), testUserID, testJDID).Return(int64(3), nil),
		ts.scores.EXPECT().Count(gomock.Any(), testUserID, "bad").Return(int64(0), service.ErrInvalidJDID),
	)

	ok := serve(h, http.MethodGet, "/ai/candidate-count/"+testJDID, nil, bearer())
	require.Equal(t, http.StatusOK, ok.Code)
	assert.JSONEq(t, `{"count":3}`, ok.Body.String())

	bad := serve(h, http.MethodGet, "/ai/candidate-count/bad", nil, bearer())
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, "Invalid jd_id format", detailOf(t, bad))
}
