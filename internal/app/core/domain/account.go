package domain

// Account 帳戶
// PIN 存放的是 PINHasher 產生的值 (預設為 bcrypt hash)
type Account struct {
	Number  string
	PIN     string
	Balance Amount
}

func NewAccount(number string, pin string, balance Amount) *Account {
	return &Account{
		Number:  number,
		PIN:     pin,
		Balance: balance,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	a.Balance = a.Balance + amount
	return nil
}

// Withdraw 提款
// 餘額不足不是錯誤，回傳 false 且餘額不變
func (a *Account) Withdraw(amount Amount) (bool, error) {
	if err := amount.Validate(); err != nil {
		return false, err
	}

	if a.Balance < amount {
		return false, nil
	}

	a.Balance = a.Balance - amount
	return true, nil
}
