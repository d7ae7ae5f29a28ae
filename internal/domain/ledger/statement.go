package ledger

import "github.com/andrescamacho/supplychain-go/internal/domain/shared"

// Statement summarizes a party's cash flow over a set of transactions
type Statement struct {
	Party        string
	Revenue      shared.Money
	Expenses     shared.Money
	Transactions int
	ByCategory   map[Category]shared.Money
}

// Net is revenue minus expenses
func (s *Statement) Net() shared.Money {
	return s.Revenue.Sub(s.Expenses)
}

// BuildStatement folds transactions into a statement for party.
// Transactions not involving party are ignored.
func BuildStatement(party string, transactions []*Transaction) *Statement {
	s := &Statement{
		Party:      party,
		ByCategory: make(map[Category]shared.Money),
	}
	for _, t := range transactions {
		if !t.Involves(party) {
			continue
		}
		s.Transactions++

		flow := t.CashFlowFor(party)
		switch {
		case flow.IsPositive():
			s.Revenue = s.Revenue.Add(flow)
		case flow.IsNegative():
			s.Expenses = s.Expenses.Add(flow.Neg())
		}
		s.ByCategory[t.Category()] = s.ByCategory[t.Category()].Add(flow)
	}
	return s
}
