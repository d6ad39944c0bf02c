package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Participant operations

func (s *Storage) CreateParticipant(ctx context.Context, p *model.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	// SETNX makes the insert conditional: two concurrent joins with the
	// same name cannot both win. The index SAdd is idempotent either way.
	pipe := s.client.TxPipeline()
	created := pipe.SetNX(ctx, participantKey(p.Name), data, 0)
	pipe.SAdd(ctx, participantIndexKey(), p.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if !created.Val() {
		return model.ErrParticipantExists
	}
	return nil
}

func (s *Storage) SaveParticipant(ctx context.Context, p *model.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, participantKey(p.Name), data, 0)
	pipe.SAdd(ctx, participantIndexKey(), p.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetParticipant(ctx context.Context, name string) (*model.Participant, error) {
	data, err := s.client.Get(ctx, participantKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, err
	}

	var p model.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) ListParticipants(ctx context.Context) ([]*model.Participant, error) {
	names, err := s.client.SMembers(ctx, participantIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return []*model.Participant{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = participantKey(name)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	participants := make([]*model.Participant, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Evicted but still indexed
		}
		var p model.Participant
		if err := json.Unmarshal([]byte(val.(string)), &p); err != nil {
			continue // Skip invalid data
		}
		participants = append(participants, &p)
	}

	return participants, nil
}

func (s *Storage) DeleteParticipant(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, participantKey(name))
	pipe.SRem(ctx, participantIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// Message operations

func (s *Storage) AppendMessage(ctx context.Context, msg *model.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	// RPUSH onto the id log keeps the durable append order
	pipe := s.client.Pipeline()
	pipe.Set(ctx, messageKey(msg.ID), data, 0)
	pipe.RPush(ctx, messageLogKey(), msg.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMessage(ctx context.Context, id string) (*model.Message, error) {
	data, err := s.client.Get(ctx, messageKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMessageNotFound
		}
		return nil, err
	}

	var msg model.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Storage) SaveMessage(ctx context.Context, msg *model.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	// SET XX updates in place without ever resurrecting a deleted message
	set, err := s.client.SetXX(ctx, messageKey(msg.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return model.ErrMessageNotFound
	}
	return nil
}

func (s *Storage) DeleteMessage(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	deleted := pipe.Del(ctx, messageKey(id))
	pipe.LRem(ctx, messageLogKey(), 1, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if deleted.Val() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (s *Storage) ListMessages(ctx context.Context) ([]*model.Message, error) {
	ids, err := s.client.LRange(ctx, messageLogKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Message{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = messageKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]*model.Message, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Deleted between LRANGE and MGET
		}
		var msg model.Message
		if err := json.Unmarshal([]byte(val.(string)), &msg); err != nil {
			continue // Skip invalid data
		}
		messages = append(messages, &msg)
	}

	return messages, nil
}
