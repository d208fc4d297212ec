package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Upload.MaxFileSize != 104857600 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 104857600)
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
	if cfg.Search.Timeout != 20*time.Second {
		t.Errorf("Search.Timeout = %v, want %v", cfg.Search.Timeout, 20*time.Second)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("UPLOAD_MAX_FILE_SIZE", "1048576")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("UPLOAD_MAX_FILE_SIZE")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Upload.MaxFileSize != 1048576 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 1048576)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_SearchKeyAltEnvVar(t *testing.T) {
	// SEARCH_API_KEY works as fallback for SERPER_API_KEY
	os.Unsetenv("SERPER_API_KEY")
	os.Setenv("SEARCH_API_KEY", "alt-credential")
	defer os.Unsetenv("SEARCH_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Search.APIKey != "alt-credential" {
		t.Errorf("Search.APIKey = %q, want %q", cfg.Search.APIKey, "alt-credential")
	}
}

func TestLoad_MissingSearchKeyIsNotAnError(t *testing.T) {
	os.Unsetenv("SERPER_API_KEY")
	os.Unsetenv("SEARCH_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.APIKey != "" {
		t.Errorf("Search.APIKey = %q, want empty", cfg.Search.APIKey)
	}
}

func TestLoad_Duration(t *testing.T) {
	os.Setenv("SERVER_READ_TIMEOUT", "45s")
	os.Setenv("SEARCH_TIMEOUT", "1m30s")
	defer func() {
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("SEARCH_TIMEOUT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Search.Timeout != 90*time.Second {
		t.Errorf("Search.Timeout = %v, want %v", cfg.Search.Timeout, 90*time.Second)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	os.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")
	defer os.Unsetenv("TRUSTED_PROXIES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(expected) {
		t.Fatalf("TrustedProxies length = %d, want %d", len(cfg.Security.TrustedProxies), len(expected))
	}
	for i, v := range expected {
		if cfg.Security.TrustedProxies[i] != v {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], v)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 99999, ShutdownTimeout: time.Second},
		Upload:  UploadConfig{MaxFileSize: 1},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100, SearchLimit: 30},
		Search:  SearchConfig{Timeout: time.Second},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid port")
	}
	if !contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error should mention SERVER_PORT: %v", err)
	}
}

func TestValidate_APIKeyRequiredButNoneConfigured(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
		Upload:   UploadConfig{MaxFileSize: 1},
		Rate:     RateLimitConfig{Enabled: true, RequestsPerMinute: 100, SearchLimit: 30},
		Security: SecurityConfig{RequireAPIKey: true},
		Search:   SearchConfig{Timeout: time.Second},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for REQUIRE_API_KEY without API_KEYS")
	}
	if !contains(err.Error(), "API_KEYS") {
		t.Errorf("error should mention API_KEYS: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
		Upload:  UploadConfig{MaxFileSize: 1},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100, SearchLimit: 30},
		Search:  SearchConfig{Timeout: time.Second},
		Logging: LoggingConfig{Level: "verbose", Format: "text"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid log level")
	}
	if !contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("error should mention LOG_LEVEL: %v", err)
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 0, ShutdownTimeout: 0},
		Upload:  UploadConfig{MaxFileSize: 0},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100, SearchLimit: 30},
		Search:  SearchConfig{Timeout: time.Second},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"SERVER_PORT", "SERVER_SHUTDOWN_TIMEOUT", "UPLOAD_MAX_FILE_SIZE"} {
		if !contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString_MasksCredentials(t *testing.T) {
	cfg := &Config{
		Security: SecurityConfig{APIKeys: []string{"super-secret-key"}},
		Search:   SearchConfig{APIKey: "serper-credential-value"},
	}
	str := cfg.String()
	if contains(str, "super-secret-key") || contains(str, "serper-credential") {
		t.Error("String() should mask credentials")
	}
	if !contains(str, "MASKED") {
		t.Error("String() should contain MASKED placeholder")
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsHelper(s, substr))
}

func containsHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
