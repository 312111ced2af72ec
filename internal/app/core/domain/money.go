package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency 預設以美元、美式英文格式輸出金額
var DefaultCurrency = MustCurrencyFormatter("USD", "en-US")

// CurrencyFormatter 將金額格式化為帶幣別符號的字串
type CurrencyFormatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewCurrencyFormatter 建立幣別格式器
//
// 參數:
//
//	code: ISO 4217 幣別代碼 (e.g., "USD")
//	locale: BCP 47 語系 (e.g., "en-US")
//
// 回傳:
//
//	*CurrencyFormatter: 格式器
//	error: 幣別或語系無法解析
func NewCurrencyFormatter(code, locale string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownCurrency, code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &CurrencyFormatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// MustCurrencyFormatter 同 NewCurrencyFormatter，失敗時 panic
func MustCurrencyFormatter(code, locale string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(code, locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Code 幣別代碼
func (f *CurrencyFormatter) Code() string {
	return f.unit.String()
}

// Symbol 幣別符號，例如 "$"
func (f *CurrencyFormatter) Symbol() string {
	return strings.TrimSpace(f.printer.Sprint(currency.Symbol(f.unit)))
}

// Format 依幣別的標準小數位數輸出金額，符號與數字之間不留空白 (e.g., "$1,500.00")
// 只用於顯示：轉成 float64 超過 2^53 個最小單位時會失去精度
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	scale, _ := currency.Standard.Rounding(f.unit)
	rounded := amount.Round(int32(scale))
	return f.Symbol() + f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(scale)))
}
