package domain

import "fmt"

// Result 帳戶操作的結果
// 為了與交易類型一致，同樣使用 uint8
type Result uint8

const (
	// 成功
	ResultSuccess Result = iota
	// 餘額不足
	ResultInsufficientFunds
	// 金額不合法
	ResultInvalidAmount
	// 找不到帳戶 (例如轉帳目標為 nil)
	ResultAccountNotFound
)

// Ok 是否成功
func (r Result) Ok() bool {
	return r == ResultSuccess
}

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultInsufficientFunds:
		return "insufficient funds"
	case ResultInvalidAmount:
		return "invalid amount"
	case ResultAccountNotFound:
		return "account not found"
	default:
		return "unknown"
	}
}

// Err 將結果轉成對應的 sentinel error，成功時回傳 nil
func (r Result) Err() error {
	switch r {
	case ResultSuccess:
		return nil
	case ResultInsufficientFunds:
		return ErrInsufficientBalance
	case ResultInvalidAmount:
		return ErrAmountMustBePositive
	case ResultAccountNotFound:
		return ErrAccountNotFound
	default:
		return fmt.Errorf("unknown result %d", uint8(r))
	}
}
