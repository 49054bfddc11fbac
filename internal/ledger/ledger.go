// Package ledger implements the ordered transaction ledger for a session.
package ledger

import (
	"github.com/famcli/fam/internal/model"
	"github.com/shopspring/decimal"
)

// Entry is one accepted transaction with its assigned sequence number.
type Entry struct {
	Sequence    int
	Transaction model.Transaction
}

// Ledger is the append-only transaction record for one user. Sequence
// numbers start at 1 and increase by 1 per accepted transaction, with
// no gaps or reuse. Rejected transactions never reach the ledger.
type Ledger struct {
	entries []Entry
	nextSeq int
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{nextSeq: 1}
}

// Append records an accepted transaction and returns its sequence number.
func (l *Ledger) Append(tx model.Transaction) int {
	seq := l.nextSeq
	l.nextSeq++
	l.entries = append(l.entries, Entry{Sequence: seq, Transaction: tx})
	return seq
}

// Entries returns all entries in sequence order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ByCategory returns the entries recorded under one budget category,
// in sequence order. Sequence numbers keep their original values.
func (l *Ledger) ByCategory(category model.Category) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Transaction.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// TotalSpent sums the amounts of every entry, across all categories.
func (l *Ledger) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Transaction.Amount)
	}
	return total
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int {
	return len(l.entries)
}
