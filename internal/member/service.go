package member

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
)

var ErrMemberNotFound = errors.New("member not found")

type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: repo, AuditSvc: auditSvc}
}

// CreateMember assigns the identifier and account number server-side and
// stores the record. No uniqueness checks on phone/email/proof number.
func (s *Service) CreateMember(ctx context.Context, req *CreateMemberRequest, ip string) (*Member, error) {
	m := &Member{
		ID:                uuid.NewString(),
		AccountNumber:     NewAccountNumber(),
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		IDProofType:       req.IDProofType,
		IDProofNumber:     req.IDProofNumber,
		IsCommitteeMember: req.IsCommitteeMember,
		CommitteePosition: req.CommitteePosition,
		IsActive:          true,
	}

	if err := s.Repo.Create(ctx, m); err != nil {
		s.AuditSvc.LogAction(ctx, nil, "MEMBER_CREATED", map[string]interface{}{
			"name":  req.Name,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, nil, "MEMBER_CREATED", map[string]interface{}{
		"member_id":      m.ID,
		"account_number": m.AccountNumber,
		"name":           m.Name,
	}, ip, "success")

	return m, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	return s.Repo.ListActive(ctx)
}

// GetMember returns an active member; soft-deleted and unknown ids both
// surface as not found.
func (s *Service) GetMember(ctx context.Context, id string) (*Member, error) {
	m, err := s.Repo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

// UpdateMember rewrites all mutable fields. The record may be inactive; the
// identifier, account number and creation timestamp are preserved.
func (s *Service) UpdateMember(ctx context.Context, id string, req *CreateMemberRequest, ip string) (*Member, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	updated := &Member{
		ID:                existing.ID,
		AccountNumber:     existing.AccountNumber,
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		IDProofType:       req.IDProofType,
		IDProofNumber:     req.IDProofNumber,
		IsCommitteeMember: req.IsCommitteeMember,
		CommitteePosition: req.CommitteePosition,
		CreatedAt:         existing.CreatedAt,
		IsActive:          existing.IsActive,
	}

	if err := s.Repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMember soft-deletes by clearing the active flag. Re-applying to an
// already-inactive member succeeds.
func (s *Service) DeleteMember(ctx context.Context, id string, ip string) error {
	affected, err := s.Repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMemberNotFound
	}

	s.AuditSvc.LogAction(ctx, nil, "MEMBER_DELETED", map[string]interface{}{
		"member_id": id,
	}, ip, "success")

	return nil
}
