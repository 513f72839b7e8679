package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	Storage  StorageConfig  `yaml:"storage"`
	Email    EmailConfig    `yaml:"email"`
	Log      LogConfig      `yaml:"log"`
	Company  CompanyConfig  `yaml:"company"`
}

type ServerConfig struct {
	Port       int    `yaml:"port"`
	Env        string `yaml:"env"`         // development, production
	CORSOrigin string `yaml:"cors_origin"` // "*" allows all
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type AdminConfig struct {
	Password         string `yaml:"password"`
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type UploadsConfig struct {
	Dir       string `yaml:"dir"`
	MaxSizeMB int64  `yaml:"max_size_mb"`
}

type StorageConfig struct {
	Backend string      `yaml:"backend"` // disk, minio
	Minio   MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type EmailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	InfoTo   string `yaml:"info_to"` // contact inquiries land here
	HRTo     string `yaml:"hr_to"`  // applications land here
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// CompanyConfig is the display information served by /api/company-info.
// Loaded once at startup and injected into handlers; never mutated after.
type CompanyConfig struct {
	Name        string       `yaml:"name" json:"name"`
	ShortName   string       `yaml:"short_name" json:"shortName"`
	Tagline     string       `yaml:"tagline" json:"tagline"`
	Description string       `yaml:"description" json:"description"`
	Founded     int          `yaml:"founded" json:"founded"`
	Phone       string       `yaml:"phone" json:"phone"`
	WhatsApp    string       `yaml:"whatsapp" json:"whatsapp"`
	Address     string       `yaml:"address" json:"address"`
	Hours       string       `yaml:"hours" json:"hours"`
	LinkedIn    string       `yaml:"linkedin" json:"linkedin"`
	Twitter     string       `yaml:"twitter" json:"twitter"`
	Stats       []StatBlock  `yaml:"stats" json:"stats"`
	Roles       []string     `yaml:"roles" json:"roles"`
	Process     []StepBlock  `yaml:"hiring_process" json:"hiringProcess"`
	WhyUs       []PointBlock `yaml:"why_us" json:"whyUs"`
	Support     []string     `yaml:"candidate_support" json:"candidateSupport"`
}

type StatBlock struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type StepBlock struct {
	Step  string `yaml:"step" json:"step"`
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

type PointBlock struct {
	Icon  string `yaml:"icon" json:"icon"`
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = "*"
	}
	if c.Admin.TokenExpireHours == 0 {
		c.Admin.TokenExpireHours = 24
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "./uploads"
	}
	if c.Uploads.MaxSizeMB == 0 {
		c.Uploads.MaxSizeMB = 5
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "disk"
	}
	if c.Email.Host == "" {
		c.Email.Host = "smtp.gmail.com"
	}
	if c.Email.Port == 0 {
		c.Email.Port = 587
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Company.Name == "" {
		c.Company.Name = "TELVEL IT Solutions Pvt. Ltd."
	}
	if c.Company.ShortName == "" {
		c.Company.ShortName = "TELVEL IT"
	}
	if c.Company.Tagline == "" {
		c.Company.Tagline = "Hire Skilled IT Professionals for Europe"
	}
}

// applyEnvOverrides lets deploy-time environment variables win over the YAML
// file for secrets and platform-assigned values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		c.Server.CORSOrigin = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Admin.JWTSecret = v
	}
	if v := os.Getenv("EMAIL_HOST"); v != "" {
		c.Email.Host = v
	}
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Email.Port = port
		}
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		c.Email.Username = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		c.Email.Password = v
	}
	if v := os.Getenv("MAX_RESUME_SIZE_MB"); v != "" {
		if mb, err := strconv.ParseInt(v, 10, 64); err == nil && mb > 0 {
			c.Uploads.MaxSizeMB = mb
		}
	}
}

// MaxUploadBytes returns the resume size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Uploads.MaxSizeMB * 1024 * 1024
}

// IsProduction reports whether the server runs in production mode, which
// suppresses internal error detail in responses.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
