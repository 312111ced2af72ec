package domain

import "fmt"

// Customer 客戶資料
// Name 與 Document 皆可修改，且不做任何驗證 (空值、重複證件號皆接受)
type Customer struct {
	BaseEntity
	Name     string
	Document string // 證件號碼，例如 CPF/SSN
}

// NewCustomer 建立客戶並指派新的 ID
func NewCustomer(name, document string) *Customer {
	return &Customer{
		BaseEntity: NewBaseEntity(),
		Name:       name,
		Document:   document,
	}
}

// String 客戶描述
func (c *Customer) String() string {
	return fmt.Sprintf("Customer: %s - Document: %s", c.Name, c.Document)
}

var _ Entity = (*Customer)(nil)
