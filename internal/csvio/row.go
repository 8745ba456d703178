// Package csvio maps transactions to and from CSV rows.
//
// Valid rows are canonical: amounts carry exactly two decimals, dates use
// YYYY-MM-DD and enum values are spelled exactly as stored. That makes
// SerializeTransaction(ParseTransactionRow(r)) == r for every valid row r.
package csvio

import (
	"fmt"
	"time"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/money"
	"budgetbook/internal/uuid"
)

// DateLayout is the on-disk form of a transaction date.
const DateLayout = "2006-01-02"

// Header is the column order of every transaction file.
var Header = []string{
	"id", "date", "kind", "amount", "person", "account", "status",
	"category", "subcategory", "source", "description",
}

const (
	colID = iota
	colDate
	colKind
	colAmount
	colPerson
	colAccount
	colStatus
	colCategory
	colSubcategory
	colSource
	colDescription
)

func parseError(field, format string, args ...interface{}) error {
	return apperrors.WithMessage(apperrors.ErrParse, fmt.Sprintf("%s: %s", field, fmt.Sprintf(format, args...)))
}

// ParseTransactionRow converts one CSV record into a Transaction. The id
// column may be empty for rows that have never been stored. Every failure is
// a PARSE_ERROR naming the offending column.
func ParseTransactionRow(row []string) (*models.Transaction, error) {
	if len(row) != len(Header) {
		return nil, parseError("row", "expected %d columns, got %d", len(Header), len(row))
	}

	tx := &models.Transaction{Description: row[colDescription]}

	if id := row[colID]; id != "" {
		canonical, err := uuid.Parse(id)
		if err != nil || canonical != id {
			return nil, parseError("id", "%q is not a lowercase UUID", id)
		}
		tx.ID = id
	}

	date, err := time.Parse(DateLayout, row[colDate])
	if err != nil {
		return nil, parseError("date", "%q must use YYYY-MM-DD", row[colDate])
	}
	tx.Date = date

	tx.Kind = models.TransactionKind(row[colKind])
	if !tx.Kind.Valid() {
		return nil, parseError("kind", "%q must be income or expense", row[colKind])
	}

	amount, err := money.Parse(row[colAmount])
	if err != nil {
		return nil, parseError("amount", "%v", err)
	}
	if amount <= 0 {
		return nil, parseError("amount", "%q must be greater than zero", row[colAmount])
	}
	tx.Amount = amount

	tx.Person = models.Person(row[colPerson])
	if !tx.Person.Valid() {
		return nil, parseError("person", "%q is not a household member", row[colPerson])
	}
	tx.Account = models.FundingAccount(row[colAccount])
	if !tx.Account.Valid() {
		return nil, parseError("account", "%q is not a funding account", row[colAccount])
	}
	tx.Status = models.TransactionStatus(row[colStatus])
	if !tx.Status.Valid() {
		return nil, parseError("status", "%q must be cleared or pending", row[colStatus])
	}

	tx.Category = row[colCategory]
	tx.Subcategory = row[colSubcategory]
	tx.Source = models.IncomeSource(row[colSource])

	switch tx.Kind {
	case models.KindExpense:
		if tx.Category == "" {
			return nil, parseError("category", "required for expenses")
		}
		if tx.Subcategory == "" {
			return nil, parseError("subcategory", "required for expenses")
		}
		if tx.Source != "" {
			return nil, parseError("source", "must be empty for expenses")
		}
	case models.KindIncome:
		if !tx.Source.Valid() {
			return nil, parseError("source", "%q is not an income source", row[colSource])
		}
		if tx.Category != "" || tx.Subcategory != "" {
			return nil, parseError("category", "must be empty for income")
		}
	}

	tx.Date = models.CalendarDay(tx.Date)
	return tx, nil
}

// SerializeTransaction renders tx in Header column order.
func SerializeTransaction(tx *models.Transaction) []string {
	row := make([]string, len(Header))
	row[colID] = tx.ID
	row[colDate] = tx.Date.Format(DateLayout)
	row[colKind] = string(tx.Kind)
	row[colAmount] = money.Format(tx.Amount)
	row[colPerson] = string(tx.Person)
	row[colAccount] = string(tx.Account)
	row[colStatus] = string(tx.Status)
	row[colCategory] = tx.Category
	row[colSubcategory] = tx.Subcategory
	row[colSource] = string(tx.Source)
	row[colDescription] = tx.Description
	return row
}
