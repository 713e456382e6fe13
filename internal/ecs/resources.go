package ecs

import "reflect"

// ResourceStore хранит глобальные ресурсы мира (карта, лог, состояние
// хода), по одному значению на тип.
type ResourceStore struct {
	resources map[reflect.Type]any
}

// NewResourceStore создаёт пустое хранилище ресурсов.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource регистрирует или заменяет ресурс.
// Для изменяемых ресурсов T должен быть указателем.
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.resources[reflect.TypeOf((*T)(nil)).Elem()] = resource
}

// GetResource возвращает ресурс типа T и false, если его нет.
func GetResource[T any](rs *ResourceStore) (T, bool) {
	val, ok := rs.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource возвращает ресурс или паникует, если его нет.
// Отсутствие обязательного ресурса — ошибка программиста.
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return res
}
