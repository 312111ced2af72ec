package usecase

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-generic-bank/internal/app/core/domain"
)

// BankUseCase 是核心業務邏輯層
// 領域物件只回傳 Result，訊息輸出在這一層處理
type BankUseCase struct {
	customers Repository[*domain.Customer]
	accounts  Repository[*domain.Account]
	money     *domain.CurrencyFormatter
	logger    *log.Logger
}

// BankOption 定義了 BankUseCase 的配置選項函數
type BankOption func(*BankUseCase)

// WithLogger 設定操作結果的輸出位置
func WithLogger(logger *log.Logger) BankOption {
	return func(b *BankUseCase) {
		b.logger = logger
	}
}

// WithCurrency 設定金額的顯示幣別
func WithCurrency(f *domain.CurrencyFormatter) BankOption {
	return func(b *BankUseCase) {
		b.money = f
	}
}

func NewBankUseCase(customers Repository[*domain.Customer], accounts Repository[*domain.Account], opts ...BankOption) *BankUseCase {
	b := &BankUseCase{
		customers: customers,
		accounts:  accounts,
		money:     domain.DefaultCurrency,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Currency 目前使用的幣別格式器
func (b *BankUseCase) Currency() *domain.CurrencyFormatter {
	return b.money
}

// RegisterCustomer 建立客戶並存入 repository
func (b *BankUseCase) RegisterCustomer(name, document string) *domain.Customer {
	c := domain.NewCustomer(name, document)
	b.customers.Add(c)
	return c
}

// OpenAccount 開戶並存入初始金額
//
// 參數:
//
//	number: 帳號
//	initial: 初始金額，不可為負
//
// 回傳:
//
//	*domain.Account: 新帳戶
//	error: 初始金額不合法
func (b *BankUseCase) OpenAccount(number string, initial decimal.Decimal) (*domain.Account, error) {
	a := domain.NewAccount(number)
	if err := a.Deposit(initial).Err(); err != nil {
		return nil, fmt.Errorf("open account %s: %w", number, err)
	}
	b.accounts.Add(a)
	return a, nil
}

// Customer 依 ID 取得客戶
func (b *BankUseCase) Customer(id uuid.UUID) (*domain.Customer, error) {
	c, ok := b.customers.GetByID(id)
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

// Account 依 ID 取得帳戶
func (b *BankUseCase) Account(id uuid.UUID) (*domain.Account, error) {
	a, ok := b.accounts.GetByID(id)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

// AccountByNumber 依帳號取得帳戶，帳號重複時回傳第一個
func (b *BankUseCase) AccountByNumber(number string) (*domain.Account, error) {
	found := b.accounts.Find(func(a *domain.Account) bool {
		return a.AccountNumber == number
	})
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, number)
	}
	return found[0], nil
}

// Customers 依加入順序回傳所有客戶
func (b *BankUseCase) Customers() []*domain.Customer {
	return b.customers.GetAll()
}

// Accounts 依加入順序回傳所有帳戶
func (b *BankUseCase) Accounts() []*domain.Account {
	return b.accounts.GetAll()
}

// FindCustomers 回傳所有符合條件的客戶
func (b *BankUseCase) FindCustomers(predicate func(*domain.Customer) bool) []*domain.Customer {
	return b.customers.Find(predicate)
}

// FindCustomersByName 名稱包含 substr 的客戶 (區分大小寫)
func (b *BankUseCase) FindCustomersByName(substr string) []*domain.Customer {
	return b.customers.Find(func(c *domain.Customer) bool {
		return strings.Contains(c.Name, substr)
	})
}

// lookup 同 AccountByNumber，找不到時輸出訊息
func (b *BankUseCase) lookup(op, number string) (*domain.Account, error) {
	a, err := b.AccountByNumber(number)
	if err != nil {
		b.logger.Printf("%s failed: account %s not found", op, number)
		return nil, err
	}
	return a, nil
}

// Deposit 存款
func (b *BankUseCase) Deposit(number string, amount decimal.Decimal) error {
	a, err := b.lookup("Deposit", number)
	if err != nil {
		return err
	}
	if err := a.Deposit(amount).Err(); err != nil {
		b.logger.Printf("Deposit failed: %v", err)
		return err
	}
	return nil
}

// Withdraw 提款
func (b *BankUseCase) Withdraw(number string, amount decimal.Decimal) error {
	a, err := b.lookup("Withdraw", number)
	if err != nil {
		return err
	}
	switch r := a.Withdraw(amount); r {
	case domain.ResultSuccess:
		return nil
	case domain.ResultInsufficientFunds:
		b.logger.Printf("Withdraw failed: insufficient funds in account %s", a.AccountNumber)
		return r.Err()
	default:
		b.logger.Printf("Withdraw failed: %v", r)
		return r.Err()
	}
}

// Transfer 轉帳
//
// 參數:
//
//	fromNumber: 轉出帳號
//	toNumber: 轉入帳號
//	amount: 金額
//
// 回傳:
//
//	error: 帳戶不存在、金額不合法或餘額不足
func (b *BankUseCase) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	from, err := b.lookup("Transfer", fromNumber)
	if err != nil {
		return err
	}
	to, err := b.lookup("Transfer", toNumber)
	if err != nil {
		return err
	}

	r := from.TransferTo(to, amount)
	switch r {
	case domain.ResultSuccess:
		b.logger.Printf("Transfer successful: %s from %s to %s", b.money.Format(amount), from.AccountNumber, to.AccountNumber)
	case domain.ResultInvalidAmount:
		b.logger.Println("Transfer amount must be greater than zero.")
	case domain.ResultInsufficientFunds:
		b.logger.Printf("Transfer failed: insufficient funds in account %s", from.AccountNumber)
	default:
		b.logger.Printf("Transfer failed: %v", r)
	}
	return r.Err()
}
