// models/obrigacao.go
package models

import (
	"strings"
	"time"
)

type Periodicidade string

const (
	PeriodicidadeMensal     Periodicidade = "MENSAL"
	PeriodicidadeTrimestral Periodicidade = "TRIMESTRAL"
	PeriodicidadeAnual      Periodicidade = "ANUAL"
)

var Periodicidades = []Periodicidade{PeriodicidadeMensal, PeriodicidadeTrimestral, PeriodicidadeAnual}

func (p Periodicidade) Valida() bool {
	for _, v := range Periodicidades {
		if p == v {
			return true
		}
	}
	return false
}

// ListaPeriodicidades devolve "MENSAL, TRIMESTRAL ou ANUAL".
func ListaPeriodicidades() string {
	nomes := make([]string, len(Periodicidades))
	for i, p := range Periodicidades {
		nomes[i] = string(p)
	}
	if len(nomes) < 2 {
		return strings.Join(nomes, "")
	}
	return strings.Join(nomes[:len(nomes)-1], ", ") + " ou " + nomes[len(nomes)-1]
}

// ObrigacaoAcessoria é uma declaração periódica de uma empresa.
// (nome, empresa_id) é único; a FK restringe a exclusão da empresa.
type ObrigacaoAcessoria struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Nome          string        `gorm:"size:100;not null;uniqueIndex:uniq_obrigacao_nome_empresa,priority:1" json:"nome"`
	Periodicidade Periodicidade `gorm:"size:10;not null" json:"periodicidade"`
	EmpresaID     uint          `gorm:"not null;index:idx_obrigacoes_empresa_id;uniqueIndex:uniq_obrigacao_nome_empresa,priority:2" json:"empresa_id"`
	CriadoEm      time.Time     `gorm:"autoCreateTime" json:"criado_em"`
	AtualizadoEm  time.Time     `gorm:"autoUpdateTime" json:"atualizado_em"`

	// Só existe para o AutoMigrate gerar a FK; nunca é carregado.
	Empresa *Empresa `gorm:"foreignKey:EmpresaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (ObrigacaoAcessoria) TableName() string { return "obrigacoes_acessorias" }
