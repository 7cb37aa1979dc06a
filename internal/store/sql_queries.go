package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resume-shortlister/models"
)

const (
	createUser = `INSERT INTO users (id, name, email, password_hash) 
    VALUES ($1, $2, $3, $4) 
    RETURNING id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, created_at 
    FROM users 
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password_hash, created_at 
    FROM users 
    WHERE id = $1;`

	existsUserByEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	listPasswordHashes = `SELECT password_hash
    FROM users
    ORDER BY created_at DESC
    LIMIT $1;`

	createJobDescription = `INSERT INTO job_descriptions (id, user_id, job_title, job_description, skills, resume_drive_links)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING created_at;`

	updateJobDescription = `UPDATE job_descriptions
    SET job_title = $1, job_description = $2, skills = $3, resume_drive_links = $4, created_at = NOW()
    WHERE id = $5 AND user_id = $6;`

	deleteJobDescription = `DELETE FROM job_descriptions
    WHERE id = $1 AND user_id = $2;`

	listJobDescriptions = `SELECT id, user_id, job_title, job_description, skills, resume_drive_links, created_at
    FROM job_descriptions
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	deleteAIResultsByJD = `DELETE FROM ai_results WHERE jd_id = $1;`

	listAIResultsByJD = `SELECT id, jd_id, user_id, name, skills_score, jd_score, overall_score, description, created_at
    FROM ai_results
    WHERE jd_id = $1 AND user_id = $2
    ORDER BY overall_score DESC, created_at ASC;`

	countAIResultsByJD = `SELECT COUNT(*) FROM ai_results WHERE jd_id = $1 AND user_id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCountOwnedQuery counts the distinct ids from jdIDs owned by userID.
func buildCountOwnedQuery(userID string, jdIDs []string) (string, []any, error) {
	return psql.
		Select("COUNT(DISTINCT id)").
		From(models.JobDescription{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": jdIDs}).
		ToSql()
}

// buildInsertAIResultsQuery builds a single multi-row INSERT for results.
func buildInsertAIResultsQuery(results []models.AIResult) (string, []any, error) {
	builder := psql.
		Insert(models.AIResult{}.TableName()).
		Columns("id", "jd_id", "user_id", "name", "skills_score", "jd_score", "overall_score", "description", "created_at")

	for _, r := range results {
		builder = builder.Values(r.ID, r.JDID, r.UserID, r.Name, r.SkillsScore, r.JDScore, r.OverallScore, r.Description, r.CreatedAt)
	}

	return builder.ToSql()
}
