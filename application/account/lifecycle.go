package account

import "github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"

// transitions lists the legal account state changes. Confirmed is terminal.
var transitions = map[constant.AccountState][]constant.AccountState{
	constant.AccountStateUnconfirmed: {constant.AccountStateConfirmed},
	constant.AccountStateConfirmed:   {},
}

func canTransition(from, to constant.AccountState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
