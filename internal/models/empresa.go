// models/empresa.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Empresa é a empresa cadastrada. As obrigações não ficam penduradas aqui:
// são buscadas por empresa_id quando a resposta precisa delas.
type Empresa struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:100;not null;index" json:"nome"`
	CNPJ         string    `gorm:"size:14;not null;uniqueIndex:uniq_empresas_cnpj" json:"cnpj"` // só dígitos
	Endereco     *string   `gorm:"size:200" json:"endereco"`
	Email        string    `gorm:"size:100;not null;uniqueIndex:uniq_empresas_email" json:"email"`
	Telefone     string    `gorm:"size:11;not null" json:"telefone"` // 11 dígitos
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criado_em"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizado_em"`
}

func (Empresa) TableName() string { return "empresas" }

// Migrate cria/atualiza as tabelas do serviço.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Empresa{}, &ObrigacaoAcessoria{})
}
