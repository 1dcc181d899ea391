package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Chirag30Sharma/AgriScan-Backend/internal/storage"
	"github.com/Chirag30Sharma/AgriScan-Backend/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Fixture            string `long:"fixture" env:"FIXTURE" default:"fixture.json" description:"path to fixture file"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

type fixture struct {
	Profiles []struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Password    string `json:"password"`
	} `json:"profiles"`
	Chats []struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"chats"`
	Responses []struct {
		PhoneNumber string `json:"phone_number"`
		Response    string `json:"response"`
	} `json:"responses"`
}

func main() {
	_ = godotenv.Load()

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed"
	parser.LongDescription = "Fixture to database importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("seed started")
	logrus.Infof("%+v", opts)

	b, err := ioutil.ReadFile(opts.Fixture)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read fixture")
	}

	var f fixture

	if err := json.Unmarshal(b, &f); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal fixture")
	}

	db := mustGetDB()
	s := postgres.New(db)

	ctx := context.Background()

	logrus.Info("import profiles")
	for _, v := range f.Profiles {
		if err := s.CreateProfile(ctx, &storage.CreateProfileParams{
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			PhoneNumber: v.PhoneNumber,
			Password:    v.Password,
		}); err != nil {
			logrus.WithError(err).Fatal("failed to put profile into db")
		}
	}

	logrus.Info("import chats")
	for _, v := range f.Chats {
		if err := s.CreateChat(ctx, &storage.CreateChatParams{
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			PhoneNumber: v.PhoneNumber,
			Title:       v.Title,
			Description: v.Description,
		}); err != nil {
			logrus.WithError(err).Fatal("failed to put chat into db")
		}
	}

	// responses are produced by the advisory pipeline, the service itself has no
	// write path for them, so the importer writes the table directly
	logrus.Info("import responses")
	sdb := sqlx.NewDb(db, "postgres")
	for _, v := range f.Responses {
		if _, err := sdb.ExecContext(ctx,
			`INSERT INTO farmer_response(phone_number, response) VALUES($1, $2)`,
			v.PhoneNumber, v.Response,
		); err != nil {
			logrus.WithError(err).Fatal("failed to put response into db")
		}
	}

	logrus.Infof("imported %d profiles, %d chats, %d responses", len(f.Profiles), len(f.Chats), len(f.Responses))
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
