package mapping

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/models"
)

// ToModelVoucher converts a domain voucher to its row model.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	m := models.Voucher{
		VoucherID:              d.VoucherID,
		VoucherNo:              d.VoucherNo,
		SequenceNo:             d.SequenceNo,
		Type:                   models.VoucherType(d.Type),
		Date:                   d.Date,
		Amount:                 d.Amount,
		Narration:              d.Narration,
		Confirmed:              d.Confirmed,
		ProjectID:              d.ProjectID,
		BillNo:                 d.BillNo,
		ChequeNo:               d.ChequeNo,
		ChequeDate:             d.ChequeDate,
		CategoryAccountID:      d.CategoryAccountID,
		TreasuryAccountID:      d.TreasuryAccountID,
		DebitTreasuryID:        d.DebitTreasuryID,
		CreditTreasuryID:       d.CreditTreasuryID,
		JournalDebitAccountID:  d.JournalDebitAccountID,
		JournalDebitAmount:     d.JournalDebitAmount,
		JournalCreditAccountID: d.JournalCreditAccountID,
		JournalCreditAmount:    d.JournalCreditAmount,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
	if d.ChequeStatus != nil {
		status := string(*d.ChequeStatus)
		m.ChequeStatus = &status
	}
	return m
}

// ToDomainVoucher converts a row model to a domain voucher.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	d := domain.Voucher{
		VoucherID:              m.VoucherID,
		VoucherNo:              m.VoucherNo,
		SequenceNo:             m.SequenceNo,
		Type:                   domain.VoucherType(m.Type),
		Date:                   m.Date,
		Amount:                 m.Amount,
		Narration:              m.Narration,
		Confirmed:              m.Confirmed,
		ProjectID:              m.ProjectID,
		BillNo:                 m.BillNo,
		ChequeNo:               m.ChequeNo,
		ChequeDate:             m.ChequeDate,
		CategoryAccountID:      m.CategoryAccountID,
		TreasuryAccountID:      m.TreasuryAccountID,
		DebitTreasuryID:        m.DebitTreasuryID,
		CreditTreasuryID:       m.CreditTreasuryID,
		JournalDebitAccountID:  m.JournalDebitAccountID,
		JournalDebitAmount:     m.JournalDebitAmount,
		JournalCreditAccountID: m.JournalCreditAccountID,
		JournalCreditAmount:    m.JournalCreditAmount,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
	if m.ChequeStatus != nil {
		status := domain.ChequeStatus(*m.ChequeStatus)
		d.ChequeStatus = &status
	}
	return d
}
