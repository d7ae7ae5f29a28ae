package shared

// Account is the cash balance of one economic entity. It never goes negative.
type Account struct {
	owner   string
	balance Money
}

// NewAccount opens an account with a non-negative starting balance
func NewAccount(owner string, initial Money) (Account, error) {
	if initial.IsNegative() {
		return Account{}, NewInvalidInputError("balance", "initial balance cannot be negative")
	}
	return Account{owner: owner, balance: initial}, nil
}

func (a *Account) Balance() Money {
	return a.balance
}

// CanAfford reports whether a debit of amount would succeed
func (a *Account) CanAfford(amount Money) error {
	if a.balance.LessThan(amount) {
		return NewInsufficientFundsError(a.owner, amount, a.balance)
	}
	return nil
}

// Debit withdraws amount, or fails without touching the balance
func (a *Account) Debit(amount Money) error {
	if err := a.CanAfford(amount); err != nil {
		return err
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) Credit(amount Money) {
	a.balance = a.balance.Add(amount)
}
