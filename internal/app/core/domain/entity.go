package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity 是所有領域物件共用的身分介面
// ID 建立時產生，之後不可變更；String 提供人類可讀的描述
type Entity interface {
	ID() uuid.UUID
	fmt.Stringer
}

// BaseEntity 內嵌於各領域物件，提供唯一且唯讀的 ID
type BaseEntity struct {
	id uuid.UUID
}

// NewBaseEntity 以隨機 UUID 建立一個新的身分
func NewBaseEntity() BaseEntity {
	return BaseEntity{id: uuid.New()}
}

// ID 回傳實體 ID
func (e BaseEntity) ID() uuid.UUID {
	return e.id
}
