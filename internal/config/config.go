package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 2333
	defaultEnv         = "development"
	defaultDBHost      = "127.0.0.1"
	defaultDBPort      = 3306
	defaultDBUser      = "root"
	defaultDBPassword  = "password"
	defaultDBName      = "onetree"
	defaultDBCharset   = "utf8mb4"
	defaultRedisURL    = "redis://localhost:6379/0"
	defaultUploadDir   = "static/uploads"
	defaultMaxSizeMB   = 5
	defaultMaxImages   = 3
	defaultAllowedMIME = "image/jpeg,image/png,image/gif,image/webp"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Upload         UploadConfig   `yaml:"upload"`
	S3             S3Config       `yaml:"s3"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// UploadConfig controls the file storage service.
type UploadConfig struct {
	Driver           string   `yaml:"driver"` // "local" | "s3"
	Dir              string   `yaml:"dir"`
	MaxSizeMB        int      `yaml:"max_size_mb"`
	AllowedTypes     []string `yaml:"allowed_types"`
	MaxProjectImages int      `yaml:"max_project_images"`
}

// S3Config configures the object-store upload backend.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	KeyPrefix       string `yaml:"key_prefix"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// Load reads the YAML config file and applies defaults and env overrides.
// A missing file is not an error: defaults plus environment apply.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("OT_PORT")); v != "" {
		fmt.Sscanf(v, "%d", &c.Port)
	}
	if v := strings.TrimSpace(os.Getenv("OT_ENV")); v != "" {
		c.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("OT_DSN")); v != "" {
		c.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("OT_REDIS_URL")); v != "" {
		c.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("OT_JWT_SECRET")); v != "" {
		c.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("OT_UPLOAD_DIR")); v != "" {
		c.Upload.Dir = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.RedisURL == "" {
		c.RedisURL = defaultRedisURL
	}
	if c.Upload.Driver == "" {
		c.Upload.Driver = "local"
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = defaultUploadDir
	}
	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = defaultMaxSizeMB
	}
	if c.Upload.MaxProjectImages <= 0 {
		c.Upload.MaxProjectImages = defaultMaxImages
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = strings.Split(defaultAllowedMIME, ",")
	}
}

// DSN returns the MySQL DSN, assembling it from parts when not given verbatim.
func (c *AppConfig) DSN() string {
	if dsn := strings.TrimSpace(c.Database.DSN); dsn != "" {
		return dsn
	}

	host := c.Database.Host
	if host == "" {
		host = defaultDBHost
	}
	port := c.Database.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := c.Database.User
	if user == "" {
		user = defaultDBUser
	}
	password := c.Database.Password
	if password == "" {
		password = defaultDBPassword
	}
	name := c.Database.Name
	if name == "" {
		name = defaultDBName
	}
	charset := c.Database.Charset
	if charset == "" {
		charset = defaultDBCharset
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		user, password, host, port, name, charset)
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

// MaxUploadBytes is the upload size ceiling in bytes.
func (c *AppConfig) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) * 1024 * 1024
}
