package main

import (
	"log"
	"os"

	console_adapter "github.com/JoeShih716/go-generic-bank/internal/app/core/adapter/in/console"
	memory_adapter "github.com/JoeShih716/go-generic-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-generic-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-generic-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-generic-bank/pkg/config"
)

const configPath = "config/config.yaml"

func main() {
	// 1. 載入設定
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	money, err := domain.NewCurrencyFormatter(cfg.Currency.Code, cfg.Currency.Locale)
	if err != nil {
		log.Fatalf("Failed to init currency: %v", err)
	}

	// 2. 初始化 Repository 與 UseCase
	logger := log.New(os.Stdout, "", 0)
	customerRepo := memory_adapter.NewRepository[*domain.Customer](memory_adapter.WithLogger(logger))
	accountRepo := memory_adapter.NewRepository[*domain.Account](memory_adapter.WithLogger(logger))
	bank := usecase.NewBankUseCase(customerRepo, accountRepo,
		usecase.WithLogger(logger),
		usecase.WithCurrency(money),
	)
	out := console_adapter.NewPrinter(os.Stdout, money)

	// 3. 建立客戶與帳戶
	for _, c := range cfg.Customers {
		bank.RegisterCustomer(c.Name, c.Document)
	}
	for _, a := range cfg.Accounts {
		initial, err := a.InitialBalanceDecimal()
		if err != nil {
			log.Fatalf("Invalid account %s: %v", a.Number, err)
		}
		if _, err := bank.OpenAccount(a.Number, initial); err != nil {
			log.Fatalf("Failed to open account %s: %v", a.Number, err)
		}
	}

	mustPrint(out.Section("Customers"))
	mustPrint(out.Customers(bank.Customers()))
	mustPrint(out.Section("Accounts"))
	mustPrint(out.Accounts(bank.Accounts()))

	// 4. 執行操作，失敗只輸出訊息不中斷 demo
	mustPrint(out.Section("Banking Operations"))
	for _, op := range cfg.Operations {
		runOperation(bank, out, op)
	}

	mustPrint(out.Section("Updated Accounts"))
	mustPrint(out.Accounts(bank.Accounts()))

	// 5. 搜尋客戶
	if cfg.FindCustomer != "" {
		mustPrint(out.Section("Find Customer " + cfg.FindCustomer))
		mustPrint(out.Customers(bank.FindCustomersByName(cfg.FindCustomer)))
	}
}

func runOperation(bank *usecase.BankUseCase, out *console_adapter.Printer, op config.Operation) {
	amount, err := op.AmountDecimal()
	if err != nil {
		log.Fatalf("Invalid operation: %v", err)
	}

	// 失敗訊息由 UseCase 輸出，這裡只需繼續下一筆
	switch op.Type {
	case config.OperationDeposit:
		mustPrint(out.Line("Depositing %s into account %s...", out.Amount(amount), op.Account))
		_ = bank.Deposit(op.Account, amount)
	case config.OperationWithdraw:
		mustPrint(out.Line("Withdrawing %s from account %s...", out.Amount(amount), op.Account))
		_ = bank.Withdraw(op.Account, amount)
	case config.OperationTransfer:
		mustPrint(out.Line("Transferring %s from account %s to account %s...", out.Amount(amount), op.Account, op.To))
		_ = bank.Transfer(op.Account, op.To, amount)
	}
}

func mustPrint(err error) {
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
