package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dan9191/unidash/internal/export"
	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	ErrMailDisabled = errors.New("email delivery is not configured")
	ErrNoRecipient  = errors.New("this account has no email address")
)

// Entries returns the ledger of sess
func (s *Service) Entries(ctx context.Context, sess session.Session) ([]models.Entry, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	return s.repo.Entries(ctx, sess), nil
}

// AddEntry validates and records an income or expense
func (s *Service) AddEntry(ctx context.Context, sess session.Session, input state.EntryInput) (models.Entry, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.Entry{}, err
	}
	defer unlock()

	ledger := state.Ledger{Entries: s.repo.Entries(ctx, sess)}
	entry, err := ledger.Add(s.gen, input)
	if err != nil {
		return models.Entry{}, err
	}
	if err := s.repo.SaveEntries(ctx, sess, ledger.Entries); err != nil {
		return models.Entry{}, fmt.Errorf("failed to save entries: %w", err)
	}
	s.log.Debugf("Entry %s (%s %.2f) added for %s", entry.ID, entry.Type, entry.Amount, sess.Identity)
	return entry, nil
}

// DeleteEntry removes an entry. Deleting an unknown id is a no-op.
func (s *Service) DeleteEntry(ctx context.Context, sess session.Session, id string) error {
	unlock, err := s.begin(sess)
	if err != nil {
		return err
	}
	defer unlock()

	ledger := state.Ledger{Entries: s.repo.Entries(ctx, sess)}
	if !ledger.Delete(id) {
		return nil
	}
	if err := s.repo.SaveEntries(ctx, sess, ledger.Entries); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}

// Summary returns the income, expense and balance totals of sess
func (s *Service) Summary(ctx context.Context, sess session.Session) (models.LedgerSummary, error) {
	if !sess.Valid() {
		return models.LedgerSummary{}, ErrUnauthorized
	}
	ledger := state.Ledger{Entries: s.repo.Entries(ctx, sess)}
	code := s.currency()
	income, expense, balance := ledger.RoundedTotals(fractionOf(code))
	return models.LedgerSummary{
		Currency: code,
		Totals:   ledger.Summary(),
		Formatted: models.FormattedStats{
			Income:     formatMoney(income, code),
			Expense:    formatMoney(expense, code),
			NetBalance: formatMoney(balance, code),
		},
	}, nil
}

// ExportCSV renders the ledger of sess as a CSV balance sheet
func (s *Service) ExportCSV(ctx context.Context, sess session.Session) ([]byte, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	return export.CSV(s.repo.Entries(ctx, sess))
}

// EmailExport sends the balance sheet to the account's email address
func (s *Service) EmailExport(ctx context.Context, sess session.Session) error {
	if s.mailer == nil {
		return ErrMailDisabled
	}
	if sess.Valid() && !isAddress(sess.Identity) {
		return ErrNoRecipient
	}
	sheet, err := s.ExportCSV(ctx, sess)
	if err != nil {
		return err
	}
	name := s.repo.Profile(ctx, sess).Name
	if err := s.mailer.SendBalanceSheet(sess.Identity, name, sheet); err != nil {
		return err
	}
	s.log.Infof("Balance sheet mailed to %s", sess.Identity)
	return nil
}

func (s *Service) currency() string {
	if s.config.Currency == "" {
		return money.INR
	}
	return s.config.Currency
}

// fractionOf returns the number of minor-unit digits of the currency code.
func fractionOf(code string) int32 {
	return int32(money.New(0, code).Currency().Fraction)
}

// formatMoney renders amount in the currency's display format, e.g. ₹1,250.50.
func formatMoney(amount decimal.Decimal, code string) string {
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
