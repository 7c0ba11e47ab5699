package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "MONGODB_URI", "STORE_DRIVER", "BODY_LIMIT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"port", cfg.Port, "3000"},
		{"env", cfg.Env, "development"},
		{"mongo uri", cfg.MongoURI, "mongodb://localhost:27017/json-data-db"},
		{"store driver", cfg.StoreDriver, "mongo"},
		{"body limit", cfg.BodyLimit, "10M"},
		{"log level", cfg.LogLevel, "info"},
		{"log format", cfg.LogFormat, "json"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGODB_URI", "mongodb://db:27017/other")
	t.Setenv("STORE_DRIVER", "memory")

	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("expected port 8081, got %q", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://db:27017/other" {
		t.Errorf("unexpected mongo uri %q", cfg.MongoURI)
	}
	if cfg.StoreDriver != "memory" {
		t.Errorf("expected memory driver, got %q", cfg.StoreDriver)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:        "3000",
			MongoURI:    "mongodb://localhost:27017/json-data-db",
			StoreDriver: StoreMongo,
			BodyLimit:   "10M",
			LogFormat:   "json",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"memory driver", func(c *Config) { c.StoreDriver = StoreMemory }, false},
		{"console logs", func(c *Config) { c.LogFormat = "console" }, false},
		{"misspelled driver", func(c *Config) { c.StoreDriver = "memroy" }, true},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"non numeric port", func(c *Config) { c.Port = "http" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_DefaultsAreValid(t *testing.T) {
	for _, key := range []string{"PORT", "MONGODB_URI", "STORE_DRIVER", "BODY_LIMIT", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	if err := Load().Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestDB_NilClient(t *testing.T) {
	db := &DB{}
	if db.Collection() != nil {
		t.Error("expected nil collection without a client")
	}
	// must not panic
	db.CloseDB()
}
