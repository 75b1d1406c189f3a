package imam

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
)

var (
	ErrImamNotFound    = errors.New("imam not found")
	ErrActiveImamExist = errors.New("active imam already exists, please deactivate current imam first")
	ErrBadDateFormat   = errors.New("invalid appointment_date format, use YYYY-MM-DD")
)

type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: repo, AuditSvc: auditSvc}
}

// CreateImam rejects creation while an active record exists. The existence
// check and the insert are two separate store operations; a concurrent pair
// of creates can race, which the domain tolerates.
func (s *Service) CreateImam(ctx context.Context, req *CreateImamRequest, ip string) (*Imam, error) {
	if _, err := s.Repo.GetActive(ctx); err == nil {
		s.AuditSvc.LogAction(ctx, nil, "IMAM_CREATED", map[string]interface{}{
			"name":  req.Name,
			"error": "active imam already exists",
		}, ip, "failure")
		return nil, ErrActiveImamExist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrBadDateFormat
	}

	i := &Imam{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		AppointmentDate: appointmentDate,
		Salary:          req.Salary,
		IsActive:        true,
	}

	if err := s.Repo.Create(ctx, i); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, nil, "IMAM_CREATED", map[string]interface{}{
		"imam_id": i.ID,
		"name":    i.Name,
	}, ip, "success")

	return i, nil
}

// GetActiveImam returns nil, nil when no active record exists; that is an
// empty result, not an error.
func (s *Service) GetActiveImam(ctx context.Context) (*Imam, error) {
	i, err := s.Repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return i, nil
}

// UpdateImam rewrites content fields and preserves the stored active flag
// regardless of input.
func (s *Service) UpdateImam(ctx context.Context, id string, req *CreateImamRequest) (*Imam, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImamNotFound
		}
		return nil, err
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrBadDateFormat
	}

	updated := &Imam{
		ID:              existing.ID,
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		AppointmentDate: appointmentDate,
		Salary:          req.Salary,
		IsActive:        existing.IsActive,
	}

	if err := s.Repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
