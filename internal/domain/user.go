package domain

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Profile é o vendedor cadastrado na plataforma
type Profile struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Active      bool    `json:"active"`
}

func (p *Profile) Name() string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return p.FullName
}

type Product struct {
	ID                       string           `json:"id"`
	Name                     string           `json:"name"`
	DefaultCommissionPercent *decimal.Decimal `json:"default_commission_percent,omitempty"`
	Active                   bool             `json:"active"`
}

// Perfis de acesso
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleSeller  = 3
)

// Claims são emitidas pela plataforma de autenticação; o subject é o id do perfil
type Claims struct {
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}

// IsSeller indica um vendedor, que só enxerga as próprias comissões
func (c *Claims) IsSeller() bool {
	return c != nil && c.RoleID == RoleSeller
}

// SellerResponse é o vendedor exposto nos filtros, com o nome de exibição já resolvido
type SellerResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Active bool    `json:"active"`
}
