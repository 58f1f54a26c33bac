package migrations

// PostgresMigrations returns all PostgreSQL migrations in order
func PostgresMigrations() []Migration {
	return []Migration{
		{
			Version:     "001",
			Description: "device profiles table",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS devices (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL DEFAULT '',
					os TEXT NOT NULL,
					native_width DOUBLE PRECISION NOT NULL,
					native_height DOUBLE PRECISION NOT NULL,
					ios_convention TEXT,
					session_id TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMP WITH TIME ZONE NOT NULL,
					updated_at TIMESTAMP WITH TIME ZONE NOT NULL
				);

				CREATE INDEX IF NOT EXISTS idx_devices_updated_at ON devices(updated_at DESC);
			`,
		},
	}
}
