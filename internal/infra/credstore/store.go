package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

const credentialsKeyPrefix = "credentials:"

// Store хранит OAuth-токены Google Calendar по идентификатору пользователя
// Токены переживают рестарт сервиса; истекший access token обновляет
// oauth2.TokenSource по refresh token при первом обращении к календарю
type Store struct {
	client *redis.Client
}

// NewStore создает новое хранилище токенов
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Save сохраняет токен пользователя без TTL
func (s *Store) Save(ctx context.Context, userID string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal token: %v", ErrMarshal, err)
	}

	if err := s.client.Set(ctx, credentialsKeyPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - set key: %v", ErrRedis, err)
	}
	return nil
}

// Get возвращает токен пользователя
// Возвращает ErrCredentialsNotFound, если токена нет
func (s *Store) Get(ctx context.Context, userID string) (*oauth2.Token, error) {
	data, err := s.client.Get(ctx, credentialsKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCredentialsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get key: %v", ErrRedis, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal token: %v", ErrUnmarshal, err)
	}
	return &token, nil
}

// Delete удаляет токен пользователя
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, credentialsKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del key: %v", ErrRedis, err)
	}
	return nil
}
