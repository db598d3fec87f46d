// internal/infrastructure/persistence/postgres/activity/repository.go
package activity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Activity - запись журнала обработанных команд
type Activity struct {
	ID        string    `db:"id"`
	ChatID    int64     `db:"chat_id"`
	Command   string    `db:"command"`
	Args      string    `db:"args"`
	Outcome   string    `db:"outcome"`
	CreatedAt time.Time `db:"created_at"`
}

// Repository - репозиторий журнала активности
type Repository struct {
	db *sqlx.DB
}

// NewRepository создает новый репозиторий журнала активности
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу журнала, если ее еще нет
func (r *Repository) EnsureSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS bot_activity (
		id         UUID PRIMARY KEY,
		chat_id    BIGINT NOT NULL,
		command    TEXT NOT NULL,
		args       TEXT NOT NULL DEFAULT '',
		outcome    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`

	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("ошибка создания таблицы bot_activity: %w", err)
	}
	return nil
}

// Record пишет одну запись в журнал
func (r *Repository) Record(a Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	query := `
	INSERT INTO bot_activity (id, chat_id, command, args, outcome, created_at)
	VALUES (:id, :chat_id, :command, :args, :outcome, :created_at)
	`

	if _, err := r.db.NamedExec(query, a); err != nil {
		return fmt.Errorf("ошибка записи активности: %w", err)
	}
	return nil
}
