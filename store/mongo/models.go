package mongo

import (
	"encoding/json"
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/tycoon/account"
)

// accountModel is one document per owner. The account itself is stored as an
// opaque serialized record: the coin counters are uint64 and bson has no
// unsigned 64-bit type, so round-tripping them through native bson numbers
// would corrupt values past math.MaxInt64. Only the fields the due scan and
// listings filter on are kept as native document fields.
type accountModel struct {
	grove.BaseModel `grove:"table:tycoon_accounts"`

	Owner          string     `grove:"owner,pk"          bson:"_id"`
	Record         []byte     `grove:"record"            bson:"record"`
	NextEarningsAt *time.Time `grove:"next_earnings_at"  bson:"next_earnings_at,omitempty"`
	CreatedAt      time.Time  `grove:"created_at"        bson:"created_at"`
	UpdatedAt      time.Time  `grove:"updated_at"        bson:"updated_at"`
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
