package config

// SQLiteConfig содержит путь к файлу базы SQLite.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"NOTES_SQLITE_PATH" env-default:"notes.db"`
}
