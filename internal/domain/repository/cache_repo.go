package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем.
// Кеширование — только оптимизация: все значения пересчитываются из
// авторитетных данных, промах кеша не является ошибкой для вызывающего.
type CacheRepository interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error

	// SetJSON сохраняет структуру JSON в кеше
	SetJSON(key string, value interface{}, expiration time.Duration) error

	// GetJSON получает структуру JSON из кеша
	GetJSON(key string, dest interface{}) error
}
