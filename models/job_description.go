package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// JobDescription is a JD owned by exactly one user.
type JobDescription struct {
	JDID             string       `json:"jd_id"`
	UserID           string       `json:"-"`
	JobTitle         string       `json:"job_title"`
	JobDescription   string       `json:"job_description"`
	Skills           SkillWeights `json:"skills"`
	ResumeDriveLinks Links        `json:"resume_drive_links"`
	CreatedAt        time.Time    `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the JobDescription model.
func (jd JobDescription) TableName() string {
	return "job_descriptions"
}

// JobDescriptionInput is the body accepted by submit and update.
type JobDescriptionInput struct {
	JobTitle         string       `json:"job_title" validate:"required,notblank"`
	JobDescription   string       `json:"job_description" validate:"required,notblank"`
	Skills           SkillWeights `json:"skills" validate:"required,min=1,dive,keys,required,notblank,endkeys,gte=0"`
	ResumeDriveLinks Links        `json:"resume_drive_links" validate:"omitempty,dive,http_url"`
}

// JobDescriptionResponse is returned by submit and update.
type JobDescriptionResponse struct {
	Message string `json:"message"`
	JDID    string `json:"jd_id"`
}

// HistoryResponse is returned by GET /jd/history.
type HistoryResponse struct {
	History []JobDescription `json:"history"`
}

// SkillWeights maps a skill name to its integer weight.
//
// Decoding accepts plain numbers, numeric strings and boxed extended-JSON
// numerics ({"$numberInt": "5"}, {"$numberLong": ...}, {"$numberDouble": ...}).
// Fractional values are truncated toward zero.
type SkillWeights map[string]int

var boxedNumericKeys = []string{"$numberInt", "$numberLong", "$numberDouble", "$numberDecimal"}

// ErrInvalidSkillWeight is returned when a weight cannot be read as a number.
var ErrInvalidSkillWeight = errors.New("invalid skill weight")

// UnmarshalJSON implements json.Unmarshaler.
func (s *SkillWeights) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("skills must be an object: %w", err)
	}

	weights := make(SkillWeights, len(raw))
	for skill, value := range raw {
		weight, err := decodeWeight(value)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidSkillWeight, skill, err)
		}
		weights[skill] = weight
	}

	*s = weights
	return nil
}

// Scan implements sql.Scanner for JSONB columns.
func (s *SkillWeights) Scan(src any) error {
	data, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if data == nil {
		*s = SkillWeights{}
		return nil
	}

	return s.UnmarshalJSON(data)
}

// Value implements driver.Valuer and returns JSON text.
func (s SkillWeights) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]int(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func decodeWeight(value json.RawMessage) (int, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}

	switch typed := v.(type) {
	case json.Number:
		return numberToInt(typed.String())
	case string:
		return numberToInt(typed)
	case map[string]any:
		for _, key := range boxedNumericKeys {
			inner, ok := typed[key]
			if !ok {
				continue
			}
			switch n := inner.(type) {
			case string:
				return numberToInt(n)
			case json.Number:
				return numberToInt(n.String())
			}
		}
		return 0, errors.New("unsupported boxed numeric")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func numberToInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return int(f), nil
}

// Links is an ordered list of resume URLs stored as a JSON array.
type Links []string

// Scan implements sql.Scanner for JSONB columns.
func (l *Links) Scan(src any) error {
	data, err := jsonBytes(src)
	if err != nil {
		return err
	}

	links := Links{}
	if data != nil {
		if err := json.Unmarshal(data, &links); err != nil {
			return fmt.Errorf("error decoding links: %w", err)
		}
	}
	if links == nil {
		links = Links{}
	}

	*l = links
	return nil
}

// Value implements driver.Valuer.
func (l Links) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON source type %T", src)
	}
}
