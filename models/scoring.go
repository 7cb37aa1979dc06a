package models

// ScoringRequest is the payload posted to the external scorer webhook.
type ScoringRequest struct {
	JDID             string       `json:"jd_id"`
	JobTitle         string       `json:"job_title"`
	JobDescription   string       `json:"job_description"`
	Skills           SkillWeights `json:"skills"`
	ResumeDriveLinks []string     `json:"resume_drive_links"`
}

// NewScoringRequest builds the scorer payload for jd.
func NewScoringRequest(jd JobDescription) ScoringRequest {
	links := make([]string, 0, len(jd.ResumeDriveLinks))
	links = append(links, jd.ResumeDriveLinks...)

	return ScoringRequest{
		JDID:             jd.JDID,
		JobTitle:         jd.JobTitle,
		JobDescription:   jd.JobDescription,
		Skills:           jd.Skills,
		ResumeDriveLinks: links,
	}
}
