package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/spf13/pflag"

	"github.com/SalmanuRidwan/Trivia-API/internal/config"
	"github.com/SalmanuRidwan/Trivia-API/pkg/database"
)

const usage = `Использование: migrate [--config path] <up|down|force VERSION|version>

  up             применить все миграции
  down           откатить одну миграцию
  force VERSION  установить версию и снять флаг dirty
  version        показать текущую версию
`

func main() {
	flags := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	configFlag := flags.String("config", "", "путь к файлу конфигурации (по умолчанию CONFIG_PATH или config/config.yaml)")
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flags.Parse(os.Args[1:])

	args := flags.Args()
	if len(args) == 0 {
		flags.Usage()
		os.Exit(2)
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath, nil)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	m, err := database.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(m, args); err != nil {
		log.Fatal(err)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		fmt.Println("Migrations applied.")
	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		fmt.Println("Rolled back one migration.")
	case "force":
		if len(args) < 2 {
			return errors.New("force requires VERSION")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		fmt.Printf("Forcing migration version to %d to clean dirty state...\n", version)
		if err := m.Force(version); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
		fmt.Println("Success! Dirty state cleaned.")
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("No migrations applied.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Version %d (dirty: %t)\n", version, dirty)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	return nil
}
