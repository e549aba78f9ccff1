package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

const (
	pendingKeyPrefix   = "pending_slot:"
	selectionKeyPrefix = "available_slots:"
)

// Store хранит диалоговое состояние пользователя в Redis
// Каждая запись живет не дольше ttl: брошенный диалог забывается сам
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает новое хранилище диалогового состояния
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// SavePending сохраняет предложенный слот, ожидающий подтверждения
// Повторный вызов для того же пользователя перезаписывает предыдущее предложение
func (s *Store) SavePending(ctx context.Context, userID string, pending domain.PendingBooking) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("%w: SavePending - marshal pending: %v", ErrMarshal, err)
	}

	if err := s.client.Set(ctx, pendingKeyPrefix+userID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SavePending - set key: %v", ErrRedis, err)
	}
	return nil
}

// GetPending возвращает предложенный слот пользователя
// Возвращает ErrPendingNotFound, если предложения нет или оно истекло
func (s *Store) GetPending(ctx context.Context, userID string) (*domain.PendingBooking, error) {
	data, err := s.client.Get(ctx, pendingKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - get key: %v", ErrRedis, err)
	}

	var pending domain.PendingBooking
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, fmt.Errorf("%w: GetPending - unmarshal pending: %v", ErrUnmarshal, err)
	}
	return &pending, nil
}

// DeletePending удаляет предложенный слот пользователя
// Отсутствие ключа ошибкой не считается
func (s *Store) DeletePending(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, pendingKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("%w: DeletePending - del key: %v", ErrRedis, err)
	}
	return nil
}

// SaveSelection сохраняет пронумерованный список слотов, показанный пользователю
// Формат в Redis - массив пар [start, end] в RFC3339
func (s *Store) SaveSelection(ctx context.Context, userID string, selection domain.PendingSelection) error {
	pairs := make([][2]string, len(selection.Slots))
	for i, slot := range selection.Slots {
		pairs[i] = [2]string{
			slot.Start.Format(time.RFC3339),
			slot.End.Format(time.RFC3339),
		}
	}

	data, err := json.Marshal(pairs)
	if err != nil {
		return fmt.Errorf("%w: SaveSelection - marshal slots: %v", ErrMarshal, err)
	}

	if err := s.client.Set(ctx, selectionKeyPrefix+userID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SaveSelection - set key: %v", ErrRedis, err)
	}
	return nil
}

// GetSelection возвращает список слотов, показанный пользователю
// Возвращает ErrSelectionNotFound, если списка нет или он истек
func (s *Store) GetSelection(ctx context.Context, userID string) (*domain.PendingSelection, error) {
	data, err := s.client.Get(ctx, selectionKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSelectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSelection - get key: %v", ErrRedis, err)
	}

	var pairs [][2]string
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("%w: GetSelection - unmarshal slots: %v", ErrUnmarshal, err)
	}

	selection := domain.PendingSelection{Slots: make([]domain.FreeSlot, len(pairs))}
	for i, pair := range pairs {
		start, err := time.Parse(time.RFC3339, pair[0])
		if err != nil {
			return nil, fmt.Errorf("%w: GetSelection - parse slot start: %v", ErrUnmarshal, err)
		}
		end, err := time.Parse(time.RFC3339, pair[1])
		if err != nil {
			return nil, fmt.Errorf("%w: GetSelection - parse slot end: %v", ErrUnmarshal, err)
		}
		selection.Slots[i] = domain.FreeSlot{Start: start, End: end}
	}
	return &selection, nil
}

// DeleteSelection удаляет сохраненный список слотов пользователя
func (s *Store) DeleteSelection(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, selectionKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("%w: DeleteSelection - del key: %v", ErrRedis, err)
	}
	return nil
}
