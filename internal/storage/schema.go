package storage

import (
	"context"
	"fmt"
)

// Schema is applied on startup. Statements are idempotent so repeated
// mig runs are safe; timestamps are stored as RFC 3339 text.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    age           INTEGER,
    gender        TEXT,
    height_cm     REAL,
    weight_kg     REAL,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS physical_health (
    id                       INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id                  INTEGER NOT NULL REFERENCES users(id),
    heart_rate               INTEGER,
    blood_pressure_systolic  INTEGER,
    blood_pressure_diastolic INTEGER,
    steps                    INTEGER,
    calories_burned          REAL,
    body_temperature         REAL,
    recorded_at              TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_physical_health_user_recorded
    ON physical_health(user_id, recorded_at);

CREATE TABLE IF NOT EXISTS mental_health (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id       INTEGER NOT NULL REFERENCES users(id),
    mood_score    INTEGER,
    stress_level  INTEGER,
    anxiety_level INTEGER,
    energy_level  INTEGER,
    recorded_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mental_health_user_recorded
    ON mental_health(user_id, recorded_at);

CREATE TABLE IF NOT EXISTS sleep_data (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id              INTEGER NOT NULL REFERENCES users(id),
    sleep_duration_hours REAL,
    sleep_quality        INTEGER,
    bedtime              TEXT,
    wake_time            TEXT,
    created_at           TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sleep_data_user_created
    ON sleep_data(user_id, created_at);

CREATE TABLE IF NOT EXISTS wellness_scores (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id        INTEGER NOT NULL REFERENCES users(id),
    wellness_score INTEGER NOT NULL,
    status         TEXT NOT NULL,
    created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_wellness_scores_user_created
    ON wellness_scores(user_id, created_at);

CREATE TABLE IF NOT EXISTS insights_log (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id             INTEGER NOT NULL REFERENCES users(id),
    insight_text        TEXT,
    recommendation_text TEXT,
    created_at          TEXT NOT NULL,
    CHECK (
        (insight_text IS NULL) <> (recommendation_text IS NULL)
    )
);
CREATE INDEX IF NOT EXISTS idx_insights_log_user_created
    ON insights_log(user_id, created_at);

CREATE TABLE IF NOT EXISTS google_fit_tokens (
    user_id       INTEGER PRIMARY KEY REFERENCES users(id),
    access_token  TEXT NOT NULL,
    refresh_token TEXT NOT NULL DEFAULT '',
    token_type    TEXT NOT NULL DEFAULT 'Bearer',
    expiry        TEXT NOT NULL,
    scope         TEXT NOT NULL DEFAULT '',
    updated_at    TEXT NOT NULL
);
`

// Migrate applies the schema to the database.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
