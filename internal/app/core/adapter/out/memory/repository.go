package memory

import (
	"iter"
	"log"
	"slices"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-generic-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-generic-bank/internal/app/core/usecase"
)

// Repository 是一個以 slice 實現的泛型實體集合
//
// 結構:
//
//	items: 依加入順序存放的實體 (共享指標，非拷貝)
//	logger: 新增實體時輸出確認訊息，nil 則不輸出
//
// 不支援並發存取
type Repository[T domain.Entity] struct {
	items  []T
	logger *log.Logger
}

// RepositoryOption 定義了 Repository 的配置選項函數
type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	logger *log.Logger
}

// WithLogger 設定 Add 時的確認訊息輸出
func WithLogger(logger *log.Logger) RepositoryOption {
	return func(o *repositoryOptions) {
		o.logger = logger
	}
}

// NewRepository 建立一個空的 Repository
func NewRepository[T domain.Entity](opts ...RepositoryOption) *Repository[T] {
	var o repositoryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T]{
		items:  make([]T, 0),
		logger: o.logger,
	}
}

// Add 新增實體 (不檢查重複)
func (r *Repository[T]) Add(item T) {
	r.items = append(r.items, item)
	if r.logger != nil {
		r.logger.Printf("%s added to repository!", item)
	}
}

// GetAll 回傳新的 slice，但元素與 repository 內是同一個實例
func (r *Repository[T]) GetAll() []T {
	return slices.Clone(r.items)
}

// All 依加入順序逐一走訪，可重複呼叫
func (r *Repository[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range r.items {
			if !yield(item) {
				return
			}
		}
	}
}

// GetByID 線性搜尋，回傳第一個符合的實體
//
// 參數:
//
//	id: 實體 ID
//
// 回傳:
//
//	T: 實體
//	bool: 是否找到
func (r *Repository[T]) GetByID(id uuid.UUID) (T, bool) {
	for _, item := range r.items {
		if item.ID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Find 回傳所有符合 predicate 的實體，保持加入順序
func (r *Repository[T]) Find(predicate func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range r.items {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len 實體數量
func (r *Repository[T]) Len() int {
	return len(r.items)
}

var (
	_ usecase.Repository[*domain.Customer] = (*Repository[*domain.Customer])(nil)
	_ usecase.Repository[*domain.Account]  = (*Repository[*domain.Account])(nil)
)
