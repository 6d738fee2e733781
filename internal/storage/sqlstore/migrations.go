package sqlstore

import "database/sql"

// schema sets up the database. It runs on startup and is valid for both
// SQLite and PostgreSQL.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    project_type TEXT NOT NULL,
    budget BIGINT NOT NULL,
    timeline_days INTEGER NOT NULL,
    requirements TEXT NOT NULL,
    created_by TEXT NOT NULL DEFAULT '',
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS project_features (
    project_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    feature_id TEXT NOT NULL,
    PRIMARY KEY (project_id, seq),
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_project_features_project_id ON project_features(project_id);
CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
