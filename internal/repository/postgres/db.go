package postgres

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yourusername/workforce-api/internal/domain/entity"
)

// Connect открывает соединение с PostgreSQL и выполняет миграцию схемы.
// TranslateError нужен, чтобы нарушения уникальности приходили как
// gorm.ErrDuplicatedKey, а не как ошибки драйвера.
func Connect(dsn string, maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения *sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := migrate(db); err != nil {
		return nil, err
	}

	log.Println("[Postgres] Подключение установлено, миграция выполнена")
	return db, nil
}

// migrate создает таблицы и индексы, на которые опираются инварианты:
// уникальность email, пары (user_id, company_id) для workers и
// general_results, а также запрет дубликатов pending-предложений.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Company{},
		&entity.Worker{},
		&entity.MembershipRequest{},
		&entity.Quiz{},
		&entity.Question{},
		&entity.Answer{},
		&entity.GeneralResult{},
		&entity.QuizResult{},
	)
	if err != nil {
		return fmt.Errorf("ошибка миграции схемы: %w", err)
	}

	// Частичный уникальный индекс не выражается тегами GORM: уникальность
	// действует только пока предложение в состоянии pending, терминальные
	// записи могут накапливаться.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_membership_requests_pending
		ON membership_requests (user_id, company_id, direction)
		WHERE status = 'pending'`).Error
	if err != nil {
		return fmt.Errorf("ошибка создания частичного индекса membership_requests: %w", err)
	}

	return nil
}
