package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// AnswerHistoryRepo реализует repository.AnswerHistoryRepository поверх Redis.
// Ключ — "{user_id}_{question_id}", значение — id выбранного варианта.
// Журнал только для внешнего аудита, подсчет очков его не читает.
type AnswerHistoryRepo struct {
	client redis.UniversalClient
}

// NewAnswerHistoryRepo создает новый журнал ответов
func NewAnswerHistoryRepo(client redis.UniversalClient) *AnswerHistoryRepo {
	return &AnswerHistoryRepo{client: client}
}

func answerKey(userID, questionID uint) string {
	return fmt.Sprintf("%d_%d", userID, questionID)
}

// Set записывает выбранный вариант ответа. Повторная запись по тому же
// ключу перетирает предыдущую.
func (r *AnswerHistoryRepo) Set(ctx context.Context, userID, questionID, answerID uint) error {
	err := r.client.Set(ctx, answerKey(userID, questionID), strconv.FormatUint(uint64(answerID), 10), 0).Err()
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Get возвращает последний записанный вариант ответа
func (r *AnswerHistoryRepo) Get(ctx context.Context, userID, questionID uint) (uint, error) {
	value, err := r.client.Get(ctx, answerKey(userID, questionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperrors.Wrap(apperrors.ErrNotFound, "answer history entry")
		}
		return 0, apperrors.Internal(err)
	}

	answerID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return uint(answerID), nil
}

// NewClient создает клиент Redis в одном из режимов single/sentinel/cluster
func NewClient(mode string, addrs []string, masterName, password string, db int) (redis.UniversalClient, error) {
	switch mode {
	case "single", "":
		addr := "localhost:6379"
		if len(addrs) > 0 {
			addr = addrs[0]
		}
		return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}), nil
	case "sentinel":
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    masterName,
			SentinelAddrs: addrs,
			Password:      password,
			DB:            db,
		}), nil
	case "cluster":
		return redis.NewClusterClient(&redis.ClusterOptions{Addrs: addrs, Password: password}), nil
	default:
		return nil, fmt.Errorf("неизвестный режим Redis: %s", mode)
	}
}
