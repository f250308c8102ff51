// Package admin contém as tarefas pontuais disparadas por "-task".
package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/empresa"
	"github.com/KromaEnergia/api-empresas/internal/logger"
)

//go:embed seeds/empresas.json
var empresasJSON []byte

// SeedEmpresas é idempotente: empresa com CNPJ ou e-mail já cadastrado é ignorada.
func SeedEmpresas(ctx context.Context, svc empresa.Service, log *logger.Logger) error {
	return seed(ctx, svc, log, empresasJSON)
}

func seed(ctx context.Context, svc empresa.Service, log *logger.Logger, raw []byte) error {
	var items []empresa.CriarEmpresaRequest
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}

	criadas := 0
	for _, it := range items {
		// timeout por item
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		e, err := svc.Criar(ictx, it)
		cancel()

		switch {
		case err == nil:
			criadas++
			log.Infow("seed_empresa_criada", "id", e.ID, "cnpj", e.CNPJ)
		case apperror.HasCode(err, apperror.CodeDuplicateCNPJ), apperror.HasCode(err, apperror.CodeDuplicateEmail):
			log.Infow("seed_empresa_existente", "cnpj", it.CNPJ)
		case apperror.HasCode(err, apperror.CodeValidation):
			log.Warnw("seed_empresa_invalida", "cnpj", it.CNPJ, "err", err)
		default:
			return err
		}
	}

	log.Infow("seed_empresas_done", "total", len(items), "criadas", criadas)
	return nil
}
