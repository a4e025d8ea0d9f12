package userrepo

import (
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
)

// ProfileDTO holds the columns every account table shares.
type ProfileDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"not null"`
}

type AdminDTO struct {
	ProfileDTO `gorm:"embedded"`
	Department string `gorm:"size:100;not null"`
}

func (AdminDTO) TableName() string {
	return "admins"
}

type SupervisorDTO struct {
	ProfileDTO `gorm:"embedded"`
	Area       string `gorm:"size:100;not null"`
}

func (SupervisorDTO) TableName() string {
	return "supervisors"
}

type TechnicianDTO struct {
	ProfileDTO      `gorm:"embedded"`
	MaxActiveOrders int `gorm:"not null"`
}

func (TechnicianDTO) TableName() string {
	return "technicians"
}

var profileColumns = map[string]string{
	"id":         "id",
	"first_name": "first_name",
	"last_name":  "last_name",
	"email":      "email",
	"active":     "active",
}

func profileFromDomain(p *user.Profile) ProfileDTO {
	return ProfileDTO{
		ID:           int64(p.ID()),
		FirstName:    p.FirstName(),
		LastName:     p.LastName(),
		Email:        p.Email().String(),
		PasswordHash: p.PasswordHash(),
		Active:       p.IsActive(),
	}
}

func profileToDomain(dto ProfileDTO) (user.Profile, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return user.Profile{}, err
	}
	return user.RestoreProfile(kernel.ID(dto.ID), dto.FirstName, dto.LastName, email, dto.PasswordHash, dto.Active)
}

func adminFromDomain(a *user.Admin) AdminDTO {
	return AdminDTO{ProfileDTO: profileFromDomain(&a.Profile), Department: a.Department()}
}

func adminToDomain(dto AdminDTO) (*user.Admin, error) {
	profile, err := profileToDomain(dto.ProfileDTO)
	if err != nil {
		return nil, err
	}
	return user.RestoreAdmin(profile, dto.Department)
}

func supervisorFromDomain(s *user.Supervisor) SupervisorDTO {
	return SupervisorDTO{ProfileDTO: profileFromDomain(&s.Profile), Area: s.Area()}
}

func supervisorToDomain(dto SupervisorDTO) (*user.Supervisor, error) {
	profile, err := profileToDomain(dto.ProfileDTO)
	if err != nil {
		return nil, err
	}
	return user.RestoreSupervisor(profile, dto.Area)
}

func technicianFromDomain(t *user.Technician) TechnicianDTO {
	return TechnicianDTO{ProfileDTO: profileFromDomain(&t.Profile), MaxActiveOrders: t.MaxActiveOrders()}
}

func technicianToDomain(dto TechnicianDTO) (*user.Technician, error) {
	profile, err := profileToDomain(dto.ProfileDTO)
	if err != nil {
		return nil, err
	}
	return user.RestoreTechnician(profile, dto.MaxActiveOrders)
}
