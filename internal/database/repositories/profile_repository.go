package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"devconnector/internal/database"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
        SELECT p.id, p.user_id, u.name, u.avatar, p.company, p.website, p.location,
               p.bio, p.status, p.github_username, p.skills, p.social, p.created_at
        FROM profiles p
        JOIN users u ON u.id = p.user_id
`

var lastSortKey atomic.Int64

// nextSortKey returns a nanosecond timestamp that is strictly greater than any
// key handed out before by this process, even when the clock does not advance.
func nextSortKey() int64 {
	for {
		prev := lastSortKey.Load()
		next := time.Now().UnixNano()
		if next <= prev {
			next = prev + 1
		}
		if lastSortKey.CompareAndSwap(prev, next) {
			return next
		}
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// GetByUserID retrieves the profile owned by userID with its nested lists
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*database.Profile, error) {
	row := r.db.QueryRowContext(ctx, profileColumns+` WHERE p.user_id = $1`, userID)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, notFound(err)
	}

	if err := r.loadEntries(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// List retrieves every profile, oldest first
func (r *ProfileRepository) List(ctx context.Context) ([]*database.Profile, error) {
	rows, err := r.db.QueryContext(ctx, profileColumns+` ORDER BY p.created_at, p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := []*database.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// Release the connection before the nested lookups
	rows.Close()

	for _, profile := range profiles {
		if err := r.loadEntries(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

// Create inserts a new profile row. A second profile for the same user
// fails with ErrProfileExists.
func (r *ProfileRepository) Create(ctx context.Context, profile *database.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	skills, social, err := encodeProfileJSON(profile)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO profiles (id, user_id, company, website, location, bio, status,
                              github_username, skills, social, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err = r.db.ExecContext(ctx, query, profile.ID, profile.UserID, profile.Company,
		profile.Website, profile.Location, profile.Bio, profile.Status,
		profile.GithubUsername, skills, social, profile.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// Update overwrites the scalar and JSON columns of an existing profile
func (r *ProfileRepository) Update(ctx context.Context, profile *database.Profile) error {
	skills, social, err := encodeProfileJSON(profile)
	if err != nil {
		return err
	}

	query := `
        UPDATE profiles
        SET company = $1, website = $2, location = $3, bio = $4, status = $5,
            github_username = $6, skills = $7, social = $8
        WHERE user_id = $9
    `
	result, err := r.db.ExecContext(ctx, query, profile.Company, profile.Website,
		profile.Location, profile.Bio, profile.Status, profile.GithubUsername,
		skills, social, profile.UserID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return expectAffected(result)
}

// AddExperience stores exp as the newest entry of the profile
func (r *ProfileRepository) AddExperience(ctx context.Context, profileID string, exp *database.Experience) error {
	if exp.ID == "" {
		exp.ID = uuid.NewString()
	}

	query := `
        INSERT INTO profile_experience (id, profile_id, title, company, location,
                                        from_date, to_date, is_current, description, sort_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.ExecContext(ctx, query, exp.ID, profileID, exp.Title, exp.Company,
		exp.Location, exp.From, exp.To, exp.Current, exp.Description, nextSortKey())
	if err != nil {
		return fmt.Errorf("failed to add experience: %w", err)
	}

	return nil
}

// DeleteExperience removes one experience entry of the profile
func (r *ProfileRepository) DeleteExperience(ctx context.Context, profileID, experienceID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM profile_experience WHERE id = $1 AND profile_id = $2`,
		experienceID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}

	return expectAffected(result)
}

// AddEducation stores edu as the newest entry of the profile
func (r *ProfileRepository) AddEducation(ctx context.Context, profileID string, edu *database.Education) error {
	if edu.ID == "" {
		edu.ID = uuid.NewString()
	}

	query := `
        INSERT INTO profile_education (id, profile_id, school, degree, field_of_study,
                                       from_date, to_date, is_current, description, sort_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.ExecContext(ctx, query, edu.ID, profileID, edu.School, edu.Degree,
		edu.FieldOfStudy, edu.From, edu.To, edu.Current, edu.Description, nextSortKey())
	if err != nil {
		return fmt.Errorf("failed to add education: %w", err)
	}

	return nil
}

// DeleteEducation removes one education entry of the profile
func (r *ProfileRepository) DeleteEducation(ctx context.Context, profileID, educationID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM profile_education WHERE id = $1 AND profile_id = $2`,
		educationID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}

	return expectAffected(result)
}

// DeleteWithUser removes the user's profile, its entries and the user record
// in a single transaction. A user without a profile is still deleted.
func (r *ProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM profile_experience WHERE profile_id IN (SELECT id FROM profiles WHERE user_id = $1)`,
		`DELETE FROM profile_education WHERE profile_id IN (SELECT id FROM profiles WHERE user_id = $1)`,
		`DELETE FROM profiles WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deletion: %w", err)
	}

	return nil
}

func (r *ProfileRepository) loadEntries(ctx context.Context, profile *database.Profile) error {
	experience, err := r.listExperience(ctx, profile.ID)
	if err != nil {
		return err
	}
	education, err := r.listEducation(ctx, profile.ID)
	if err != nil {
		return err
	}

	profile.Experience = experience
	profile.Education = education
	return nil
}

func (r *ProfileRepository) listExperience(ctx context.Context, profileID string) ([]database.Experience, error) {
	query := `
        SELECT id, title, company, location, from_date, to_date, is_current, description
        FROM profile_experience
        WHERE profile_id = $1
        ORDER BY sort_key DESC, id
    `
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience: %w", err)
	}
	defer rows.Close()

	entries := []database.Experience{}
	for rows.Next() {
		var e database.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.From,
			&e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *ProfileRepository) listEducation(ctx context.Context, profileID string) ([]database.Education, error) {
	query := `
        SELECT id, school, degree, field_of_study, from_date, to_date, is_current, description
        FROM profile_education
        WHERE profile_id = $1
        ORDER BY sort_key DESC, id
    `
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load education: %w", err)
	}
	defer rows.Close()

	entries := []database.Education{}
	for rows.Next() {
		var e database.Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From,
			&e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func scanProfile(row rowScanner) (*database.Profile, error) {
	var (
		p      database.Profile
		skills string
		social string
	)

	err := row.Scan(&p.ID, &p.UserID, &p.User.Name, &p.User.Avatar, &p.Company,
		&p.Website, &p.Location, &p.Bio, &p.Status, &p.GithubUsername,
		&skills, &social, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.User.ID = p.UserID

	if err := json.Unmarshal([]byte(skills), &p.Skills); err != nil {
		return nil, fmt.Errorf("corrupt skills column: %w", err)
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if err := json.Unmarshal([]byte(social), &p.Social); err != nil {
		return nil, fmt.Errorf("corrupt social column: %w", err)
	}

	return &p, nil
}

func encodeProfileJSON(profile *database.Profile) (string, string, error) {
	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}

	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode skills: %w", err)
	}
	socialJSON, err := json.Marshal(profile.Social)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode social: %w", err)
	}

	return string(skillsJSON), string(socialJSON), nil
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
