package migrations

// SQLiteMigrations returns all SQLite migrations in order
func SQLiteMigrations() []Migration {
	return []Migration{
		{
			Version:     "001",
			Description: "device profiles table",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS devices (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL DEFAULT '',
					os TEXT NOT NULL,
					native_width REAL NOT NULL,
					native_height REAL NOT NULL,
					ios_convention TEXT,
					session_id TEXT NOT NULL DEFAULT '',
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				);

				CREATE INDEX IF NOT EXISTS idx_devices_updated_at ON devices(updated_at DESC);
			`,
		},
	}
}
