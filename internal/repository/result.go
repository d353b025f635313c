package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrResultNotFound = errors.New("result not found")

const (
	resultKeyPrefix = "result:"
	statsKeyPrefix  = "stats:"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, gameID string) (*entity.Result, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save stores the result and bumps the counter of its outcome in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.GameID, resultJSON, 0)
		pipe.Incr(ctx, statsKeyPrefix+string(result.Winner))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, gameID string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+gameID).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

func (that *dbResult) GetStats(ctx context.Context) (*entity.Stats, error) {
	keys := []string{
		statsKeyPrefix + string(entity.PlayerX),
		statsKeyPrefix + string(entity.PlayerO),
		statsKeyPrefix + string(entity.PlayerTie),
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	counters := make([]int64, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}

		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected stats value %v for %s", value, keys[i])
		}

		counters[i], err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse stats counter %s: %w", keys[i], err)
		}
	}

	return &entity.Stats{
		WinsX: counters[0],
		WinsO: counters[1],
		Draws: counters[2],
	}, nil
}
