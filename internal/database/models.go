package database

import "time"

// User represents a registered account
type User struct {
	ID           string    `db:"id" json:"_id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never include in JSON
	Avatar       string    `db:"avatar" json:"avatar"`
	CreatedAt    time.Time `db:"created_at" json:"date"`
}

// UserSummary is the public part of a user embedded in profile documents
type UserSummary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Social holds the optional network links of a profile
type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// Experience is one entry of a profile's work history
type Experience struct {
	ID          string `db:"id" json:"_id"`
	Title       string `db:"title" json:"title"`
	Company     string `db:"company" json:"company"`
	Location    string `db:"location" json:"location,omitempty"`
	From        string `db:"from_date" json:"from"`
	To          string `db:"to_date" json:"to,omitempty"`
	Current     bool   `db:"is_current" json:"current"`
	Description string `db:"description" json:"description,omitempty"`
}

// Education is one entry of a profile's education history
type Education struct {
	ID           string `db:"id" json:"_id"`
	School       string `db:"school" json:"school"`
	Degree       string `db:"degree" json:"degree"`
	FieldOfStudy string `db:"field_of_study" json:"fieldofstudy"`
	From         string `db:"from_date" json:"from"`
	To           string `db:"to_date" json:"to,omitempty"`
	Current      bool   `db:"is_current" json:"current"`
	Description  string `db:"description" json:"description,omitempty"`
}

// Profile is the professional profile owned by exactly one user
type Profile struct {
	ID             string       `db:"id" json:"_id"`
	UserID         string       `db:"user_id" json:"-"`
	User           UserSummary  `json:"user"`
	Company        string       `db:"company" json:"company,omitempty"`
	Website        string       `db:"website" json:"website,omitempty"`
	Location       string       `db:"location" json:"location,omitempty"`
	Bio            string       `db:"bio" json:"bio,omitempty"`
	Status         string       `db:"status" json:"status"`
	GithubUsername string       `db:"github_username" json:"githubusername,omitempty"`
	Skills         []string     `db:"skills" json:"skills"`
	Social         Social       `db:"social" json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `db:"created_at" json:"date"`
}
