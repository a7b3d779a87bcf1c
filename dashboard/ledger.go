package dashboard

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// Account is one mock bank account shown on the dashboard.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// Transaction is one mock ledger entry. Amounts are negative for spending.
type Transaction struct {
	ID       string  `json:"id"`
	Account  string  `json:"account"`
	Date     string  `json:"date"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Snapshot is the JSON view served to the UI.
type Snapshot struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
}

// Ledger holds the hardcoded demo data. Purely decorative: in-memory only,
// reseeded on every start, no validation beyond an overdraft guard.
type Ledger struct {
	mu           sync.Mutex
	accounts     []Account
	transactions []Transaction
	verbose      bool
	logger       *log.Logger
}

func NewLedger(verbose bool, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.Default()
	}
	return &Ledger{
		accounts: []Account{
			{ID: "chk-001", Name: "Everyday Checking", Type: "checking", Balance: 2843.17},
			{ID: "sav-001", Name: "Rainy Day Savings", Type: "savings", Balance: 12405.90},
			{ID: "crd-001", Name: "Travel Rewards Card", Type: "credit", Balance: -642.38},
		},
		transactions: []Transaction{
			{ID: "txn-1001", Account: "chk-001", Date: "2026-08-01", Merchant: "Maple Leaf Apartments", Category: "Rent", Amount: -1450.00},
			{ID: "txn-1002", Account: "chk-001", Date: "2026-08-03", Merchant: "Green Basket Grocers", Category: "Groceries", Amount: -112.43},
			{ID: "txn-1003", Account: "crd-001", Date: "2026-08-05", Merchant: "Transit Authority", Category: "Transport", Amount: -58.50},
			{ID: "txn-1004", Account: "crd-001", Date: "2026-08-08", Merchant: "Noodle Alley", Category: "Dining", Amount: -34.20},
			{ID: "txn-1005", Account: "chk-001", Date: "2026-08-11", Merchant: "Acme Payroll", Category: "Income", Amount: 3150.00},
			{ID: "txn-1006", Account: "chk-001", Date: "2026-08-14", Merchant: "Green Basket Grocers", Category: "Groceries", Amount: -87.91},
			{ID: "txn-1007", Account: "crd-001", Date: "2026-08-17", Merchant: "Cinema Royale", Category: "Entertainment", Amount: -26.00},
			{ID: "txn-1008", Account: "chk-001", Date: "2026-08-20", Merchant: "City Power & Light", Category: "Utilities", Amount: -96.12},
		},
		verbose: verbose,
		logger:  logger,
	}
}

func (l *Ledger) infof(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.logger.Printf("[INFO] "+format, args...)
}

// Snapshot returns a copy of the current accounts and transactions.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := Snapshot{
		Accounts:     make([]Account, len(l.accounts)),
		Transactions: make([]Transaction, len(l.transactions)),
	}
	copy(snap.Accounts, l.accounts)
	copy(snap.Transactions, l.transactions)
	return snap
}

// Transfer moves amount between two accounts. Demo-grade: the only checks
// are that both accounts exist, the amount is positive, and a non-credit
// source does not go negative.
func (l *Ledger) Transfer(fromID, toID string, amount float64) error {
	if amount <= 0 {
		return errors.New("transfer amount must be positive")
	}
	if fromID == toID {
		return errors.New("transfer needs two distinct accounts")
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	from := l.findLocked(fromID)
	to := l.findLocked(toID)
	if from == nil || to == nil {
		return errors.New("account not found")
	}
	if from.Type != "credit" && from.Balance < amount {
		return errors.New("insufficient funds")
	}

	from.Balance -= amount
	to.Balance += amount
	l.infof("transfer %s -> %s amount=%.2f", fromID, toID, amount)
	return nil
}

func (l *Ledger) findLocked(id string) *Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

// PromptContext renders a compact text summary of the ledger for the model
// prompt: account balances plus recent transactions, one per line.
func (l *Ledger) PromptContext() string {
	snap := l.Snapshot()
	var sb strings.Builder
	sb.WriteString("Accounts:\n")
	for _, a := range snap.Accounts {
		fmt.Fprintf(&sb, "- %s (%s): %.2f\n", a.Name, a.Type, a.Balance)
	}
	sb.WriteString("Recent transactions (date, merchant, category, amount):\n")
	for _, t := range snap.Transactions {
		fmt.Fprintf(&sb, "- %s, %s, %s, %.2f\n", t.Date, t.Merchant, t.Category, t.Amount)
	}
	return sb.String()
}
