package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"mmgp/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS mmgp_responses (
	id             TEXT PRIMARY KEY,
	email          TEXT NOT NULL CHECK (length(trim(email)) > 0),
	submitted_by   TEXT NOT NULL DEFAULT '',
	classification TEXT NOT NULL DEFAULT '{}',
	level2         TEXT NOT NULL DEFAULT '{}',
	level3         TEXT NOT NULL DEFAULT '{}',
	level4         TEXT NOT NULL DEFAULT '{}',
	level5         TEXT NOT NULL DEFAULT '{}',
	submitted_at   TEXT NOT NULL,
	maturity_index REAL NOT NULL DEFAULT 1,
	level2_score   REAL NOT NULL DEFAULT 0,
	level3_score   REAL NOT NULL DEFAULT 0,
	level4_score   REAL NOT NULL DEFAULT 0,
	level5_score   REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_mmgp_responses_email ON mmgp_responses (email, submitted_at DESC);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TEXT NOT NULL
);
`

// sqliteTime is fixed width so text ordering matches time ordering.
const sqliteTime = "2006-01-02T15:04:05.000000000Z07:00"

// OpenSQLite opens (creating if needed) the SQLite database at path.
func OpenSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

func sqliteWriteError(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch {
	case se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		strings.Contains(se.Error(), "UNIQUE constraint failed"):
		return ErrDuplicate
	case se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT:
		return &ConstraintError{Message: se.Error()}
	}
	return err
}

type responseRow struct {
	ID             string  `db:"id"`
	Email          string  `db:"email"`
	SubmittedBy    string  `db:"submitted_by"`
	Classification string  `db:"classification"`
	Level2         string  `db:"level2"`
	Level3         string  `db:"level3"`
	Level4         string  `db:"level4"`
	Level5         string  `db:"level5"`
	SubmittedAt    string  `db:"submitted_at"`
	MaturityIndex  float64 `db:"maturity_index"`
	Level2Score    float64 `db:"level2_score"`
	Level3Score    float64 `db:"level3_score"`
	Level4Score    float64 `db:"level4_score"`
	Level5Score    float64 `db:"level5_score"`
}

func toRow(rec *model.ResponseRecord) (responseRow, error) {
	row := responseRow{
		ID:            rec.ID,
		Email:         rec.Email,
		SubmittedBy:   rec.SubmittedBy,
		SubmittedAt:   rec.SubmittedAt.UTC().Format(sqliteTime),
		MaturityIndex: rec.MaturityIndex,
		Level2Score:   rec.Level2Score,
		Level3Score:   rec.Level3Score,
		Level4Score:   rec.Level4Score,
		Level5Score:   rec.Level5Score,
	}
	fields := []struct {
		dst *string
		v   any
	}{
		{&row.Classification, rec.Classification},
		{&row.Level2, nonNil(rec.Level2)},
		{&row.Level3, nonNil(rec.Level3)},
		{&row.Level4, nonNil(rec.Level4)},
		{&row.Level5, nonNil(rec.Level5)},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.v)
		if err != nil {
			return row, err
		}
		*f.dst = string(b)
	}
	return row, nil
}

func nonNil(a model.LevelAnswers) model.LevelAnswers {
	if a == nil {
		return model.LevelAnswers{}
	}
	return a
}

func (row responseRow) record() (*model.ResponseRecord, error) {
	rec := &model.ResponseRecord{
		ID:            row.ID,
		Email:         row.Email,
		SubmittedBy:   row.SubmittedBy,
		MaturityIndex: row.MaturityIndex,
		Level2Score:   row.Level2Score,
		Level3Score:   row.Level3Score,
		Level4Score:   row.Level4Score,
		Level5Score:   row.Level5Score,
	}
	rec.SubmittedAt, _ = time.Parse(sqliteTime, row.SubmittedAt)
	fields := []struct {
		src string
		dst any
	}{
		{row.Classification, &rec.Classification},
		{row.Level2, &rec.Level2},
		{row.Level3, &rec.Level3},
		{row.Level4, &rec.Level4},
		{row.Level5, &rec.Level5},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.src), f.dst); err != nil {
			return nil, fmt.Errorf("decode response %s: %w", row.ID, err)
		}
	}
	return rec, nil
}

type sqliteResponseRepo struct {
	db *sqlx.DB
}

// NewSQLiteResponseRepo stores responses in the mmgp_responses table.
func NewSQLiteResponseRepo(db *sqlx.DB) ResponseRepo {
	return &sqliteResponseRepo{db: db}
}

func (r *sqliteResponseRepo) Create(ctx context.Context, rec *model.ResponseRecord) error {
	if err := checkRecord(rec); err != nil {
		return err
	}
	rec.ID = uuid.NewString()
	rec.SubmittedAt = timeNow()

	row, err := toRow(rec)
	if err != nil {
		return err
	}
	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO mmgp_responses (id, email, submitted_by, classification, level2, level3, level4, level5,
			submitted_at, maturity_index, level2_score, level3_score, level4_score, level5_score)
		VALUES (:id, :email, :submitted_by, :classification, :level2, :level3, :level4, :level5,
			:submitted_at, :maturity_index, :level2_score, :level3_score, :level4_score, :level5_score)`, row)
	if err != nil {
		rec.ID = ""
		return sqliteWriteError(err)
	}
	return nil
}

func (r *sqliteResponseRepo) GetByID(ctx context.Context, id string) (*model.ResponseRecord, error) {
	var rows []responseRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM mmgp_responses WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].record()
}

func (r *sqliteResponseRepo) ListByEmail(ctx context.Context, email string) ([]model.ResponseSummary, error) {
	var rows []responseRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, email, submitted_at, maturity_index, level2_score, level3_score, level4_score, level5_score
		FROM mmgp_responses WHERE email = ? ORDER BY submitted_at DESC, rowid DESC`, email)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.ResponseSummary, 0, len(rows))
	for _, row := range rows {
		at, _ := time.Parse(sqliteTime, row.SubmittedAt)
		summaries = append(summaries, model.ResponseSummary{
			ID:            row.ID,
			Email:         row.Email,
			SubmittedAt:   at,
			MaturityIndex: row.MaturityIndex,
			Level2Score:   row.Level2Score,
			Level3Score:   row.Level3Score,
			Level4Score:   row.Level4Score,
			Level5Score:   row.Level5Score,
		})
	}
	return summaries, nil
}

func (r *sqliteResponseRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type sqliteUserRepo struct {
	db *sqlx.DB
}

// NewSQLiteUserRepo stores accounts in the users table.
func NewSQLiteUserRepo(db *sqlx.DB) UserRepo {
	return &sqliteUserRepo{db: db}
}

type userRow struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    string `db:"created_at"`
}

func (r *sqliteUserRepo) Create(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = timeNow()
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (:id, :email, :password_hash, :created_at)`,
		userRow{ID: u.ID, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt.UTC().Format(sqliteTime)})
	return sqliteWriteError(err)
}

func (r *sqliteUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM users WHERE email = ?`, email); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	u := &model.User{ID: rows[0].ID, Email: rows[0].Email, PasswordHash: rows[0].PasswordHash}
	u.CreatedAt, _ = time.Parse(sqliteTime, rows[0].CreatedAt)
	return u, nil
}
