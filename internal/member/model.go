package member

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Member is a registered member of the mosque. Records are never physically
// removed; deletion clears IsActive.
type Member struct {
	ID                string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	AccountNumber     string    `gorm:"type:varchar(20);index" json:"account_number"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone             string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email             *string   `gorm:"type:varchar(255)" json:"email"`
	Address           string    `gorm:"type:text" json:"address"`
	IDProofType       string    `gorm:"type:varchar(50)" json:"id_proof_type"` // Aadhar, Pan, Passport, etc
	IDProofNumber     string    `gorm:"type:varchar(100)" json:"id_proof_number"`
	IsCommitteeMember bool      `gorm:"default:false" json:"is_committee_member"`
	CommitteePosition *string   `gorm:"type:varchar(100)" json:"committee_position"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsActive          bool      `gorm:"default:true;index" json:"is_active"`
}

func (Member) TableName() string {
	return "members"
}

// CreateMemberRequest is used for both create and full update.
type CreateMemberRequest struct {
	Name              string  `json:"name" binding:"required"`
	Phone             string  `json:"phone" binding:"required"`
	Email             *string `json:"email"`
	Address           string  `json:"address" binding:"required"`
	IDProofType       string  `json:"id_proof_type" binding:"required"`
	IDProofNumber     string  `json:"id_proof_number" binding:"required"`
	IsCommitteeMember bool    `json:"is_committee_member"`
	CommitteePosition *string `json:"committee_position"`
}

// NewAccountNumber returns "MM" plus 8 uppercase characters drawn from a fresh
// UUID. Uniqueness rests on collision improbability, not a constraint.
func NewAccountNumber() string {
	return "MM" + strings.ToUpper(uuid.NewString()[:8])
}
