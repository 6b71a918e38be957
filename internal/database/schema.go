package database

const kvSchema = `
CREATE TABLE kv_store (
	item_key TEXT PRIMARY KEY,
	item_value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_kv_updated_at ON kv_store(updated_at);
`

// kvMigrations contains incremental schema changes
// Each migration is applied in order based on the current user_version
// kvMigrations[0] is empty because version 0 uses the base schema
var kvMigrations = []string{
	"",
}
