package constant

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAgent
}

// AccountState is the confirmation state of an account.
type AccountState int

const (
	AccountStateUnconfirmed AccountState = iota
	AccountStateConfirmed
)

func (s AccountState) String() string {
	switch s {
	case AccountStateUnconfirmed:
		return "unconfirmed"
	case AccountStateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

const (
	ConfirmationCodeMin = 100000
	ConfirmationCodeMax = 999999
)
