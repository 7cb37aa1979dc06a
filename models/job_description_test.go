package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillWeights_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SkillWeights
		wantErr bool
	}{
		{name: "bare integers", input: `{"go": 5, "sql": 3}`, want: SkillWeights{"go": 5, "sql": 3}},
		{name: "boxed numberInt", input: `{"go": {"$numberInt": "5"}}`, want: SkillWeights{"go": 5}},
		{name: "boxed numberLong", input: `{"go": {"$numberLong": "7"}}`, want: SkillWeights{"go": 7}},
		{name: "boxed integral numberDouble", input: `{"go": {"$numberDouble": "4.0"}}`, want: SkillWeights{"go": 4}},
		{name: "boxed fractional numberDouble rejected", input: `{"go": {"$numberDouble": "4.9"}}`, wantErr: true},
		{name: "numeric string", input: `{"go": "8"}`, want: SkillWeights{"go": 8}},
		{name: "integral float", input: `{"go": 3.0}`, want: SkillWeights{"go": 3}},
		{name: "exponent", input: `{"go": 1e2}`, want: SkillWeights{"go": 100}},
		{name: "fractional float rejected", input: `{"go": 2.9}`, wantErr: true},
		{name: "fractional string rejected", input: `{"go": "7.99"}`, wantErr: true},
		{name: "out of range rejected", input: `{"go": 1e19}`, wantErr: true},
		{name: "NaN rejected", input: `{"go": "NaN"}`, wantErr: true},
		{name: "Inf rejected", input: `{"go": "-Inf"}`, wantErr: true},
		{name: "mixed encodings", input: `{"a": 1, "b": {"$numberInt": "2"}, "c": "3"}`, want: SkillWeights{"a": 1, "b": 2, "c": 3}},
		{name: "empty object", input: `{}`, want: SkillWeights{}},
		{name: "null", input: `null`, want: nil},
		{name: "array rejected", input: `[1, 2]`, wantErr: true},
		{name: "boolean weight rejected", input: `{"go": true}`, wantErr: true},
		{name: "unknown box rejected", input: `{"go": {"$date": "x"}}`, wantErr: true},
		{name: "garbage string rejected", input: `{"go": "five"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SkillWeights
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkillWeights_InvalidWeightIsTyped(t *testing.T) {
	var got SkillWeights
	err := json.Unmarshal([]byte(`{"go": false}`), &got)
	require.ErrorIs(t, err, ErrInvalidSkillWeight)

	err = json.Unmarshal([]byte(`{"go": 2.9}`), &got)
	require.ErrorIs(t, err, ErrInvalidSkillWeight)
}

func TestSkillWeights_Scan(t *testing.T) {
	var s SkillWeights
	require.NoError(t, s.Scan([]byte(`{"go": {"$numberInt": "5"}, "k8s": 2}`)))
	assert.Equal(t, SkillWeights{"go": 5, "k8s": 2}, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, SkillWeights{}, s)

	assert.Error(t, s.Scan(42))
}

func TestSkillWeights_Value(t *testing.T) {
	v, err := SkillWeights{"go": 5}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"go":5}`, v.(string))

	v, err = SkillWeights(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestLinks_ScanAndValue(t *testing.T) {
	var l Links
	require.NoError(t, l.Scan(`["https://drive.google.com/a"]`))
	assert.Equal(t, Links{"https://drive.google.com/a"}, l)

	require.NoError(t, l.Scan([]byte(`null`)))
	assert.Equal(t, Links{}, l)

	v, err := Links(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestJobDescription_MarshalHidesOwner(t *testing.T) {
	jd := JobDescription{JDID: "jd-1", UserID: "owner", JobTitle: "Go dev", Skills: SkillWeights{"go": 1}, ResumeDriveLinks: Links{}}

	data, err := json.Marshal(jd)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "owner")
	assert.Contains(t, string(data), `"resume_drive_links":[]`)
}

func TestNewScoringRequest_LinksNeverNull(t *testing.T) {
	req := NewScoringRequest(JobDescription{JDID: "jd-1", JobTitle: "t", JobDescription: "d", Skills: SkillWeights{"go": 1}})

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jd_id":"jd-1","job_title":"t","job_description":"d","skills":{"go":1},"resume_drive_links":[]}`, string(data))
}
