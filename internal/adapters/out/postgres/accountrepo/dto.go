// Package accountrepo persists the approval state of marketplace accounts.
// Profile data (names, emails, passwords) belongs to the identity service and
// is not stored here.
package accountrepo

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// AccountDTO is one row of the accounts table. Role and approval status are
// stored by name so the table stays readable from SQL.
type AccountDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement:false"`
	Role            string `gorm:"size:32;not null"`
	ApprovalStatus  string `gorm:"size:16;not null;index"`
	RejectionReason string `gorm:"type:text"`
	Version         int    `gorm:"not null"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:              a.ID().Int64(),
		Role:            a.Role().String(),
		ApprovalStatus:  a.ApprovalStatus().String(),
		RejectionReason: a.RejectionReason(),
		Version:         a.Version(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	status, err := account.ParseApprovalStatus(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}
	return account.RestoreAccount(kernel.AccountID(dto.ID), role, status, dto.RejectionReason, dto.Version)
}
