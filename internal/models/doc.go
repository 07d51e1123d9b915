// Package models defines the core domain models for Munim.
//
// # Models
//
//   - Contact: a person or organization a ledger can be tied to
//   - Group: a hierarchical category used to classify ledgers
//   - Ledger: an account accumulating debit/credit movement
//   - FinancialYear: an accounting period; exactly one may be active
//   - Entry: an immutable, balanced accounting event of >=2 lines
//   - EntryDetail: one debit-or-credit line of an entry
//   - User: a registered user account
//
// # Design Principles
//
//  1. Monetary amounts are decimal.Decimal with 2 fractional digits;
//     never binary floats.
//  2. Relationships use ID strings instead of pointers to avoid
//     circular references.
//  3. An Entry owns its EntryDetails (they are created, read, and
//     deleted with the entry, never independently).
//  4. Entries are never updated in place; they are corrected by new
//     entries referencing the original.
package models
