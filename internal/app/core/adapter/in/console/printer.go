package console

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-generic-bank/internal/app/core/domain"
)

// PrintList 逐行輸出每個項目的描述
func PrintList[T fmt.Stringer](w io.Writer, items []T) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return err
		}
	}
	return nil
}

// Printer 負責 demo 的畫面輸出，與領域邏輯無關
type Printer struct {
	w     io.Writer
	money *domain.CurrencyFormatter
}

// NewPrinter 建立 Printer，money 為 nil 時使用預設幣別
func NewPrinter(w io.Writer, money *domain.CurrencyFormatter) *Printer {
	if money == nil {
		money = domain.DefaultCurrency
	}
	return &Printer{w: w, money: money}
}

// Section 輸出段落標題，例如 "--- Customers ---"
func (p *Printer) Section(title string) error {
	_, err := fmt.Fprintf(p.w, "\n--- %s ---\n", title)
	return err
}

// Line 輸出一行訊息
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

// Amount 以設定的幣別格式化金額
func (p *Printer) Amount(amount decimal.Decimal) string {
	return p.money.Format(amount)
}

// Customers 逐行輸出客戶
func (p *Printer) Customers(customers []*domain.Customer) error {
	return PrintList(p.w, customers)
}

// Accounts 以設定的幣別輸出帳戶
func (p *Printer) Accounts(accounts []*domain.Account) error {
	for _, a := range accounts {
		if _, err := fmt.Fprintln(p.w, a.Describe(p.money)); err != nil {
			return err
		}
	}
	return nil
}
