package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account 銀行帳戶
//
// 結構:
//
//	AccountNumber: 帳號，可自由修改
//	balance: 餘額，只能透過 Deposit/Withdraw/TransferTo 變動，且永遠 >= 0
type Account struct {
	BaseEntity
	AccountNumber string
	balance       decimal.Decimal
}

// NewAccount 建立一個餘額為 0 的帳戶
func NewAccount(accountNumber string) *Account {
	return &Account{
		BaseEntity:    NewBaseEntity(),
		AccountNumber: accountNumber,
		balance:       decimal.Zero,
	}
}

// Balance 目前餘額
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit 存款
// 負數金額拒絕，0 視為成功但不改變餘額
func (a *Account) Deposit(amount decimal.Decimal) Result {
	if amount.IsNegative() {
		return ResultInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return ResultSuccess
}

// Withdraw 提款
func (a *Account) Withdraw(amount decimal.Decimal) Result {
	if amount.IsNegative() {
		return ResultInvalidAmount
	}

	if amount.GreaterThan(a.balance) {
		return ResultInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	return ResultSuccess
}

// TransferTo 將金額從本帳戶轉入 destination
//
// 參數:
//
//	destination: 目標帳戶
//	amount: 轉帳金額，必須 > 0
//
// 回傳:
//
//	Result: 操作結果，失敗時兩個帳戶的餘額皆不變
//
// 先扣款成功才會動到目標帳戶
func (a *Account) TransferTo(destination *Account, amount decimal.Decimal) Result {
	if !amount.IsPositive() {
		return ResultInvalidAmount
	}
	if destination == nil {
		return ResultAccountNotFound
	}

	if r := a.Withdraw(amount); !r.Ok() {
		return r
	}
	return destination.Deposit(amount)
}

// Describe 以指定的幣別格式描述帳戶
func (a *Account) Describe(f *CurrencyFormatter) string {
	return fmt.Sprintf("Account %s - Balance: %s", a.AccountNumber, f.Format(a.balance))
}

// String 以預設幣別描述帳戶
func (a *Account) String() string {
	return a.Describe(DefaultCurrency)
}

var _ Entity = (*Account)(nil)
