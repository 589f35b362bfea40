package db

import "database/sql"

// MigrateUp creates the articles table and its indexes if they do not exist.
// Tags are stored as a JSONB string array; categories are a plain column,
// not a foreign-keyed table — the category vocabulary is derived at query
// time from the values currently present.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id         SERIAL PRIMARY KEY,
    title      VARCHAR(255) NOT NULL,
    excerpt    TEXT NOT NULL,
    content    TEXT NOT NULL,
    thumbnail  TEXT,
    category   VARCHAR(100),
    tags       JSONB,
    read_time  INTEGER,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY created_at is the default listing order
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// category exact-match filter and GROUP BY category
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category) WHERE category IS NOT NULL`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search; ignore errors when the extension
	// is unavailable or the role lacks privileges
	_, _ = database.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_excerpt_gin ON articles USING gin(excerpt gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = database.Exec(idx)
	}

	return nil
}
