package types

// EntityID — идентификатор сущности в ECS.
// Идентификаторы никогда не переиспользуются, поэтому устаревший ID просто не найдётся.
type EntityID uint64
