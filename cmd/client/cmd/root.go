// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"jsonapi/cmd/client/cmd/types"
	"jsonapi/internal/app/client"
	"jsonapi/internal/app/client/config"
	"jsonapi/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
	app     *client.App
	debug   bool
	strict  bool
	baseURL string
)

var rootCmd = &cobra.Command{
	Use:   "jsonapi",
	Short: "jsonapi - клиент REST API каталога пользователей",
	Long: `jsonapi работает с публичным тестовым REST API (users, posts, comments, todos):
создает, обновляет и удаляет пользователей, получает списки и выгружает
комментарии к последнему посту пользователя в JSON файл.

Адрес API и шаблоны путей задаются в конфигурации или переменных окружения.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Ошибка:"), err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if strict {
		cfg.StrictStatus = true
	}

	// Цвет только для терминала
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	log = logger.NewWithLevel(cfg.Env, cfg.LogLevel, os.Stderr, debug)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".jsonapi"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load(viper.GetViper())
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "считать неожиданный статус ответа ошибкой")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "базовый URL API")
}
