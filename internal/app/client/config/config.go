package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	ScopePost = "post"
	ScopeUser = "user"
)

const (
	defaultBaseURL        = "https://jsonplaceholder.typicode.com"
	defaultLogLevel       = "info"
	defaultEnv            = EnvLocal
	defaultRequestTimeout = 30 * time.Second
	defaultUserAgent      = "jsonapi-client/1.0"
	defaultExportDir      = "resources"
	defaultExportFile     = "user-{user}-post-{post}-comments.json"
	defaultStubAddress    = "localhost:8080"
)

var ErrInvalid = errors.New("invalid configuration")

// Endpoints - шаблоны путей API, {id} заменяется идентификатором
type Endpoints struct {
	Users        string `mapstructure:"users_path"`
	User         string `mapstructure:"user_path"`
	UserPosts    string `mapstructure:"user_posts_path"`
	PostComments string `mapstructure:"post_comments_path"`
	UserComments string `mapstructure:"user_comments_path"`
	UserTodos    string `mapstructure:"user_todos_path"`
}

type Config struct {
	Env            string        `mapstructure:"app_env"`
	BaseURL        string        `mapstructure:"base_url"`
	LogLevel       string        `mapstructure:"log_level"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
	StrictStatus   bool          `mapstructure:"strict_status"`
	CommentsScope  string        `mapstructure:"comments_scope"`
	ExportDir      string        `mapstructure:"export_dir"`
	ExportFile     string        `mapstructure:"export_file"`
	StubAddress    string        `mapstructure:"stub_address"`
	Endpoints      `mapstructure:",squash"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Env:            defaultEnv,
		BaseURL:        defaultBaseURL,
		LogLevel:       defaultLogLevel,
		RequestTimeout: defaultRequestTimeout,
		UserAgent:      defaultUserAgent,
		CommentsScope:  ScopePost,
		ExportDir:      defaultExportDir,
		ExportFile:     defaultExportFile,
		StubAddress:    defaultStubAddress,
		Endpoints: Endpoints{
			Users:        "/users",
			User:         "/users/{id}",
			UserPosts:    "/users/{id}/posts",
			PostComments: "/posts/{id}/comments",
			UserComments: "/users/{id}/comments",
			UserTodos:    "/users/{id}/todos",
		},
	}
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load собирает конфигурацию из .env, переменных окружения и файла конфигурации
func Load(v *viper.Viper) (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}
	cfg.CommentsScope = strings.ToLower(cfg.CommentsScope)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	// Ключи в верхнем регистре совпадают с именами переменных окружения
	v.SetDefault("APP_ENV", d.Env)
	v.SetDefault("BASE_URL", d.BaseURL)
	v.SetDefault("LOG_LEVEL", d.LogLevel)
	v.SetDefault("REQUEST_TIMEOUT", d.RequestTimeout)
	v.SetDefault("USER_AGENT", d.UserAgent)
	v.SetDefault("STRICT_STATUS", d.StrictStatus)
	v.SetDefault("COMMENTS_SCOPE", d.CommentsScope)
	v.SetDefault("EXPORT_DIR", d.ExportDir)
	v.SetDefault("EXPORT_FILE", d.ExportFile)
	v.SetDefault("STUB_ADDRESS", d.StubAddress)
	v.SetDefault("USERS_PATH", d.Endpoints.Users)
	v.SetDefault("USER_PATH", d.Endpoints.User)
	v.SetDefault("USER_POSTS_PATH", d.Endpoints.UserPosts)
	v.SetDefault("POST_COMMENTS_PATH", d.Endpoints.PostComments)
	v.SetDefault("USER_COMMENTS_PATH", d.Endpoints.UserComments)
	v.SetDefault("USER_TODOS_PATH", d.Endpoints.UserTodos)
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url не может быть пустым", ErrInvalid)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base_url %q должен быть абсолютным URL", ErrInvalid, c.BaseURL)
	}
	if c.CommentsScope != ScopePost && c.CommentsScope != ScopeUser {
		return fmt.Errorf("%w: comments_scope должен быть %q или %q, получено %q",
			ErrInvalid, ScopePost, ScopeUser, c.CommentsScope)
	}
	if c.ExportFile == "" {
		return fmt.Errorf("%w: export_file не может быть пустым", ErrInvalid)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: request_timeout не может быть отрицательным", ErrInvalid)
	}

	for name, path := range map[string]string{
		"user_path":          c.Endpoints.User,
		"user_posts_path":    c.Endpoints.UserPosts,
		"post_comments_path": c.Endpoints.PostComments,
		"user_comments_path": c.Endpoints.UserComments,
		"user_todos_path":    c.Endpoints.UserTodos,
	} {
		if !strings.Contains(path, "{id}") {
			return fmt.Errorf("%w: %s должен содержать {id}", ErrInvalid, name)
		}
	}
	if c.Endpoints.Users == "" {
		return fmt.Errorf("%w: users_path не может быть пустым", ErrInvalid)
	}

	return nil
}

// CommentsPath возвращает шаблон пути комментариев для выбранной области
func (c *Config) CommentsPath() string {
	if c.CommentsScope == ScopeUser {
		return c.Endpoints.UserComments
	}
	return c.Endpoints.PostComments
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
