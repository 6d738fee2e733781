// Package sqlstore provides a database/sql implementation of the
// storage.Store interface, backed by SQLite or PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/storage"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultListLimit is used when ListProjects is called with a non-positive
// limit.
const DefaultListLimit = 50

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on top of database/sql.
type Store struct {
	db     *sql.DB
	driver string
}

// New opens a store. For SQLite, dsn is a file path whose parent directories
// are created; for PostgreSQL it is a connection URL. Migrations run
// automatically.
func New(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite:
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db, driver: driver}, nil
}

// NewSQLite opens a SQLite store at dbPath.
func NewSQLite(dbPath string) (*Store, error) {
	return New(DriverSQLite, dbPath)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateProject persists a new project and its features.
func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	// Generate ID if not set
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt == 0 {
		project.CreatedAt = time.Now().Unix()
	}

	requirements, err := json.Marshal(project.Requirements)
	if err != nil {
		return fmt.Errorf("failed to encode requirements: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(
		`INSERT INTO projects (id, title, description, project_type, budget, timeline_days, requirements, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		project.ID, project.Title, project.Description, project.ProjectType, project.Budget,
		project.TimelineDays, string(requirements), project.CreatedBy, project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	for i, featureID := range project.Features {
		_, err = tx.ExecContext(ctx, s.rebind(
			"INSERT INTO project_features (project_id, seq, feature_id) VALUES (?, ?, ?)"),
			project.ID, i, featureID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert feature: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetProject retrieves a project by ID, including its features.
func (s *Store) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, title, description, project_type, budget, timeline_days, requirements, created_by, created_at
		 FROM projects WHERE id = ?`),
		projectID,
	)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.Features, err = s.features(ctx, projectID); err != nil {
		return nil, err
	}
	return project, nil
}

// ListProjects returns projects newest first.
func (s *Store) ListProjects(ctx context.Context, limit int) ([]*models.Project, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, title, description, project_type, budget, timeline_days, requirements, created_by, created_at
		 FROM projects ORDER BY created_at DESC, id LIMIT ?`),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	for _, p := range projects {
		if p.Features, err = s.features(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *Store) features(ctx context.Context, projectID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(
		"SELECT feature_id FROM project_features WHERE project_id = ? ORDER BY seq"),
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get features: %w", err)
	}
	defer rows.Close()

	features := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate features: %w", err)
	}
	return features, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*models.Project, error) {
	p := &models.Project{}
	var requirements string
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ProjectType, &p.Budget,
		&p.TimelineDays, &requirements, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(requirements), &p.Requirements); err != nil {
		return nil, fmt.Errorf("failed to decode requirements: %w", err)
	}
	return p, nil
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
