package domain

import "errors"

var (
	// ErrAmountMustBePositive 金額必須為正數 (轉帳需 > 0，存提款需 >= 0)
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrCustomerNotFound 找不到客戶
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrUnknownCurrency 無法辨識的幣別代碼
	ErrUnknownCurrency = errors.New("unknown currency")
)
