package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// 預設值 (yaml 沒寫時補上)
const (
	DefaultCurrencyCode = "USD"
	DefaultLocale       = "en-US"
)

// 支援的 demo 操作類型
const (
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
	OperationTransfer = "transfer"
)

var (
	// ErrInvalidOperation 不支援的操作類型或缺少欄位
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidAmount 金額格式錯誤
	ErrInvalidAmount = errors.New("invalid amount")
)

// Config 定義 demo 的幣別、初始資料與操作流程
type Config struct {
	Currency   Currency    `yaml:"currency"`
	Customers  []Customer  `yaml:"customers"`
	Accounts   []Account   `yaml:"accounts"`
	Operations []Operation `yaml:"operations"`
	// FindCustomer 以名稱片段搜尋客戶，空字串則略過
	FindCustomer string `yaml:"find_customer"`
}

// Currency 金額顯示的幣別與語系
type Currency struct {
	Code   string `yaml:"code"`   // ISO 4217 幣別代碼
	Locale string `yaml:"locale"` // BCP 47 語系
}

// Customer 初始客戶
type Customer struct {
	Name     string `yaml:"name"`
	Document string `yaml:"document"`
}

// Account 金額以字串保存，避免 yaml 轉成 float 失去精度
type Account struct {
	Number         string `yaml:"number"`
	InitialBalance string `yaml:"initial_balance"`
}

// Operation 一筆 demo 操作
// deposit/withdraw 使用 Account，transfer 使用 Account -> To
type Operation struct {
	Type    string `yaml:"type"`
	Account string `yaml:"account"`
	To      string `yaml:"to"`
	Amount  string `yaml:"amount"`
}

// InitialBalanceDecimal 解析初始金額，空字串視為 0
func (a Account) InitialBalanceDecimal() (decimal.Decimal, error) {
	if a.InitialBalance == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(a.InitialBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: account %s: %v", ErrInvalidAmount, a.Number, err)
	}
	return d, nil
}

// AmountDecimal 解析操作金額
func (o Operation) AmountDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q: %v", ErrInvalidAmount, o.Type, o.Amount, err)
	}
	return d, nil
}

// Validate 檢查操作欄位是否齊全 (金額正負交給領域層判斷)
func (o Operation) Validate() error {
	switch o.Type {
	case OperationDeposit, OperationWithdraw:
		if o.Account == "" {
			return fmt.Errorf("%w: %s requires account", ErrInvalidOperation, o.Type)
		}
	case OperationTransfer:
		if o.Account == "" || o.To == "" {
			return fmt.Errorf("%w: transfer requires account and to", ErrInvalidOperation)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidOperation, o.Type)
	}
	_, err := o.AmountDecimal()
	return err
}

// Load 讀取並解析 yaml 設定檔
//
// 參數:
//
//	path: 設定檔路徑
//
// 回傳:
//
//	*Config: 補全預設值後的設定
//	error: 讀檔、解析或驗證錯誤
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 yaml 內容
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 補全預設配置 (如果 yaml 沒寫)
func (c *Config) applyDefaults() {
	if c.Currency.Code == "" {
		c.Currency.Code = DefaultCurrencyCode
	}
	if c.Currency.Locale == "" {
		c.Currency.Locale = DefaultLocale
	}
}

// Validate 檢查帳戶金額與每筆操作
func (c *Config) Validate() error {
	for _, a := range c.Accounts {
		if _, err := a.InitialBalanceDecimal(); err != nil {
			return err
		}
	}
	for i, op := range c.Operations {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}
