package repo

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error)
	SaveVerification(ctx context.Context, userID int, rec VerificationRecord) (int, error)
	ListVerifications(ctx context.Context, userID int) ([]VerificationSummary, error)
}

type Profile struct {
	ID          int       `json:"id"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// VerificationRecord is one saved beam verification; Payload holds the full
// report JSON as produced by the verify tool.
type VerificationRecord struct {
	Material       string
	SpanM          float64
	WidthMM        float64
	HeightMM       float64
	Passed         bool
	MaxUtilization float64
	Payload        []byte
}

type VerificationSummary struct {
	ID             int       `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Material       string    `json:"material"`
	SpanM          float64   `json:"span_m"`
	WidthMM        float64   `json:"width_mm"`
	HeightMM       float64   `json:"height_mm"`
	Passed         bool      `json:"passed"`
	MaxUtilization float64   `json:"max_utilization"`
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, ''), created_at FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description, &p.CreatedAt)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error) {
	query := `UPDATE users SET login = COALESCE(NULLIF($2, ''), login), description = $3
		WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, login, description); err != nil {
		return Profile{}, err
	}
	return r.GetProfileByID(ctx, id)
}

func (r *PostgresRepository) SaveVerification(ctx context.Context, userID int, rec VerificationRecord) (int, error) {
	var id int
	query := `INSERT INTO verifications
		(user_id, material, span_m, width_mm, height_mm, passed, max_utilization, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, rec.Material, rec.SpanM,
		rec.WidthMM, rec.HeightMM, rec.Passed, rec.MaxUtilization, rec.Payload).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListVerifications(ctx context.Context, userID int) ([]VerificationSummary, error) {
	query := `SELECT id, created_at, material, span_m, width_mm, height_mm, passed, max_utilization
		FROM verifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT 100`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VerificationSummary
	for rows.Next() {
		var s VerificationSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Material, &s.SpanM,
			&s.WidthMM, &s.HeightMM, &s.Passed, &s.MaxUtilization); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
