package sqlite

import (
	"encoding/json"
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/tycoon/account"
)

// accountModel is one row per owner: the whole account — slot sequence
// included — serialized into the record column, plus the columns the due
// scan and listings index on.
type accountModel struct {
	grove.BaseModel `grove:"table:tycoon_accounts"`

	Owner          string     `grove:"owner,pk"`
	Record         []byte     `grove:"record"`
	NextEarningsAt *time.Time `grove:"next_earnings_at"`
	CreatedAt      time.Time  `grove:"created_at"`
	UpdatedAt      time.Time  `grove:"updated_at"`
}

func toAccountModel(a *account.Account) (*accountModel, error) {
	record, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}

	m := &accountModel{
		Owner:     a.Owner,
		Record:    record,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if !a.NextEarningsAt.IsZero() {
		next := a.NextEarningsAt
		m.NextEarningsAt = &next
	}
	return m, nil
}

func fromAccountModel(m *accountModel) (*account.Account, error) {
	a := new(account.Account)
	if err := json.Unmarshal(m.Record, a); err != nil {
		return nil, err
	}
	return a, nil
}
