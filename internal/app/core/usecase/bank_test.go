package usecase_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-generic-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-generic-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-generic-bank/internal/app/core/usecase"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newBank 建立一個以 memory repository 為底的 BankUseCase，並回傳 log 緩衝區
func newBank(t *testing.T) (*usecase.BankUseCase, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	b := usecase.NewBankUseCase(
		memory.NewRepository[*domain.Customer](),
		memory.NewRepository[*domain.Account](),
		usecase.WithLogger(log.New(&buf, "", 0)),
	)
	return b, &buf
}

func openAccount(t *testing.T, b *usecase.BankUseCase, number, initial string) *domain.Account {
	t.Helper()
	a, err := b.OpenAccount(number, dec(initial))
	require.NoError(t, err)
	return a
}

func TestDemoScenario(t *testing.T) {
	b, out := newBank(t)
	b.RegisterCustomer("John Smith", "111-111-111")
	mary := b.RegisterCustomer("Mary Johnson", "222-222-222")
	a1 := openAccount(t, b, "1001", "1500")
	a2 := openAccount(t, b, "1002", "3000")

	require.NoError(t, b.Withdraw("1001", dec("500")))
	assert.True(t, a1.Balance().Equal(dec("1000")))

	require.NoError(t, b.Deposit("1002", dec("1000")))
	assert.True(t, a2.Balance().Equal(dec("4000")))

	require.NoError(t, b.Transfer("1002", "1001", dec("700")))
	assert.True(t, a2.Balance().Equal(dec("3300")))
	assert.True(t, a1.Balance().Equal(dec("1700")))
	assert.Contains(t, out.String(), "Transfer successful: ")
	assert.Contains(t, out.String(), " from 1002 to 1001")

	found := b.FindCustomersByName("Mary")
	require.Len(t, found, 1)
	assert.Same(t, mary, found[0])
}

func TestOpenAccount_NegativeInitial(t *testing.T) {
	b, _ := newBank(t)

	_, err := b.OpenAccount("1001", dec("-1"))
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	assert.Empty(t, b.Accounts())
}

func TestLookups(t *testing.T) {
	b, _ := newBank(t)
	c := b.RegisterCustomer("John Smith", "111-111-111")
	a := openAccount(t, b, "1001", "10")

	gotC, err := b.Customer(c.ID())
	require.NoError(t, err)
	assert.Same(t, c, gotC)

	gotA, err := b.Account(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, gotA)

	_, err = b.Customer(uuid.New())
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	_, err = b.Account(uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = b.AccountByNumber("9999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCustomersAndAccountsInOrder(t *testing.T) {
	b, _ := newBank(t)
	c1 := b.RegisterCustomer("A", "1")
	c2 := b.RegisterCustomer("B", "2")
	a1 := openAccount(t, b, "1001", "0")
	a2 := openAccount(t, b, "1002", "0")

	assert.Equal(t, []*domain.Customer{c1, c2}, b.Customers())
	assert.Equal(t, []*domain.Account{a1, a2}, b.Accounts())
	assert.Equal(t, []*domain.Customer{c2}, b.FindCustomers(func(c *domain.Customer) bool {
		return c.Document == "2"
	}))
}

func TestWithdraw_Insufficient(t *testing.T) {
	b, out := newBank(t)
	a := openAccount(t, b, "1001", "100")

	err := b.Withdraw("1001", dec("100.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.True(t, a.Balance().Equal(dec("100")))
	assert.Contains(t, out.String(), "Withdraw failed: insufficient funds in account 1001")
}

func TestDeposit_Negative(t *testing.T) {
	b, _ := newBank(t)
	a := openAccount(t, b, "1001", "100")

	assert.ErrorIs(t, b.Deposit("1001", dec("-5")), domain.ErrAmountMustBePositive)
	assert.ErrorIs(t, b.Withdraw("1001", dec("-5")), domain.ErrAmountMustBePositive)
	assert.True(t, a.Balance().Equal(dec("100")))
}

func TestTransfer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		amount  string
		wantErr error
		wantLog string
	}{
		{"zero amount", "1001", "1002", "0", domain.ErrAmountMustBePositive, "Transfer amount must be greater than zero."},
		{"negative amount", "1001", "1002", "-1", domain.ErrAmountMustBePositive, "Transfer amount must be greater than zero."},
		{"insufficient", "1001", "1002", "500", domain.ErrInsufficientBalance, "Transfer failed: insufficient funds in account 1001"},
		{"unknown source", "0000", "1002", "1", domain.ErrAccountNotFound, ""},
		{"unknown destination", "1001", "0000", "1", domain.ErrAccountNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, out := newBank(t)
			a1 := openAccount(t, b, "1001", "100")
			a2 := openAccount(t, b, "1002", "50")

			err := b.Transfer(tt.from, tt.to, dec(tt.amount))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, a1.Balance().Equal(dec("100")))
			assert.True(t, a2.Balance().Equal(dec("50")))
			if tt.wantLog != "" {
				assert.Contains(t, out.String(), tt.wantLog)
			}
		})
	}
}

func TestTransfer_Conservation(t *testing.T) {
	b, _ := newBank(t)
	a1 := openAccount(t, b, "1001", "123.45")
	a2 := openAccount(t, b, "1002", "10")
	total := a1.Balance().Add(a2.Balance())

	for _, amt := range []string{"0.45", "100", "23", "5", "99"} {
		_ = b.Transfer("1001", "1002", dec(amt))
		_ = b.Transfer("1002", "1001", dec(amt))
		assert.True(t, a1.Balance().Add(a2.Balance()).Equal(total))
		assert.False(t, a1.Balance().IsNegative())
		assert.False(t, a2.Balance().IsNegative())
	}
}

func TestWithCurrency(t *testing.T) {
	eur := domain.MustCurrencyFormatter("EUR", "de-DE")
	b := usecase.NewBankUseCase(
		memory.NewRepository[*domain.Customer](),
		memory.NewRepository[*domain.Account](),
		usecase.WithCurrency(eur),
	)

	assert.Same(t, eur, b.Currency())
}

func TestFailuresLoggedOnce(t *testing.T) {
	tests := []struct {
		name string
		run  func(b *usecase.BankUseCase) error
		want string
	}{
		{"transfer insufficient", func(b *usecase.BankUseCase) error {
			return b.Transfer("1001", "1002", dec("500"))
		}, "Transfer failed: insufficient funds in account 1001\n"},
		{"withdraw unknown account", func(b *usecase.BankUseCase) error {
			return b.Withdraw("0000", dec("1"))
		}, "Withdraw failed: account 0000 not found\n"},
		{"deposit unknown account", func(b *usecase.BankUseCase) error {
			return b.Deposit("0000", dec("1"))
		}, "Deposit failed: account 0000 not found\n"},
		{"transfer unknown destination", func(b *usecase.BankUseCase) error {
			return b.Transfer("1001", "0000", dec("1"))
		}, "Transfer failed: account 0000 not found\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, out := newBank(t)
			openAccount(t, b, "1001", "100")
			openAccount(t, b, "1002", "50")

			require.Error(t, tt.run(b))
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, 1, strings.Count(out.String(), "\n"))
		})
	}
}

func TestTransfer_SuccessMessage(t *testing.T) {
	b, out := newBank(t)
	openAccount(t, b, "1001", "1000")
	openAccount(t, b, "1002", "4000")

	require.NoError(t, b.Transfer("1002", "1001", dec("700")))
	assert.Equal(t, "Transfer successful: $700.00 from 1002 to 1001\n", out.String())
}
