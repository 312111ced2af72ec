package usecase

import (
	"iter"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-generic-bank/internal/app/core/domain"
)

// Repository 是實體集合的介面，回傳的都是共享的同一個實例 (非拷貝)
type Repository[T domain.Entity] interface {
	// Add 新增實體，不檢查 ID 是否重複
	Add(item T)
	// GetAll 依加入順序回傳所有實體
	GetAll() []T
	// All 依加入順序逐一走訪
	All() iter.Seq[T]
	// GetByID 依 ID 查詢，找不到時回傳 false
	GetByID(id uuid.UUID) (T, bool)
	// Find 回傳所有符合條件的實體
	Find(predicate func(T) bool) []T
	// Len 實體數量
	Len() int
}
