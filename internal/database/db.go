package database

import (
	"database/sql"
	"embed"
	"log"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var DB *sql.DB

func InitDB(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}

	// проверка соединения; DB остаётся nil при любой ошибке, чтобы
	// обработчики видели деградированный режим
	if err = db.Ping(); err != nil {
		db.Close()
		return err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	DB = db

	// накатываем миграции
	if err = runMigrations(); err != nil {
		DB = nil
		db.Close()
		return err
	}

	log.Println("Postgres database initialized")
	return nil
}

func runMigrations() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(DB, "migrations")
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("DB closed")
	}
}
