package obrigacao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/apperror"
	"github.com/KromaEnergia/api-empresas/internal/models"
	"github.com/KromaEnergia/api-empresas/internal/notificacao"
	"github.com/KromaEnergia/api-empresas/internal/utils"
	"github.com/KromaEnergia/api-empresas/internal/utils/db"
)

const (
	MsgNaoEncontrada        = "Obrigação acessória não encontrada"
	MsgEmpresaNaoEncontrada = "Empresa associada não encontrada"
	MsgDuplicada            = "Essa obrigação acessória já existe para essa empresa."

	indiceNomeEmpresa = "uniq_obrigacao_nome_empresa"
)

type Service interface {
	Criar(ctx context.Context, req CriarObrigacaoRequest) (*models.ObrigacaoAcessoria, error)
	Listar(ctx context.Context, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error)
	BuscarPorID(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error)
	Atualizar(ctx context.Context, id uint, req AtualizarObrigacaoRequest) (*models.ObrigacaoAcessoria, error)
	Deletar(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	notificador notificacao.Notificador
}

func NewService(database *gorm.DB, repo Repository, n notificacao.Notificador) Service {
	if n == nil {
		n = notificacao.Nop{}
	}
	return &service{db: database, repo: repo, notificador: n}
}

func (s *service) Criar(ctx context.Context, req CriarObrigacaoRequest) (*models.ObrigacaoAcessoria, error) {
	o, err := req.Validar()
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existe, err := s.repo.EmpresaExiste(tx, o.EmpresaID)
		if err != nil {
			return apperror.NewInternal(err)
		}
		if !existe {
			return apperror.NewConflict(apperror.CodeEmpresaNaoEncontrada, MsgEmpresaNaoEncontrada)
		}
		if err := s.garantirNomeLivre(tx, o.EmpresaID, o.Nome, 0); err != nil {
			return err
		}
		if err := s.repo.Salvar(tx, o); err != nil {
			return traduzir(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, notificacao.AcaoCriada, o)
	return o, nil
}

func (s *service) Listar(ctx context.Context, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error) {
	pag, err := utils.NovaPaginacao(skip, limit)
	if err != nil {
		return nil, err
	}

	var out []models.ObrigacaoAcessoria
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.repo.Listar(tx, empresaID, pag.Skip, pag.Limit)
		if err != nil {
			return apperror.NewInternal(err)
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ObrigacaoAcessoria{}
	}
	return out, nil
}

func (s *service) BuscarPorID(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error) {
	var o *models.ObrigacaoAcessoria
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		o, err = s.buscar(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Atualizar(ctx context.Context, id uint, req AtualizarObrigacaoRequest) (*models.ObrigacaoAcessoria, error) {
	if err := req.Validar(); err != nil {
		return nil, err
	}

	var o *models.ObrigacaoAcessoria
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if o, err = s.buscar(tx, id); err != nil {
			return err
		}
		if req.Nome.Definido() && req.Nome.Valor != o.Nome {
			if err := s.garantirNomeLivre(tx, o.EmpresaID, req.Nome.Valor, o.ID); err != nil {
				return err
			}
		}
		req.Aplicar(o)
		if err := s.repo.Atualizar(tx, o); err != nil {
			return traduzir(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, notificacao.AcaoAtualizada, o)
	return o, nil
}

func (s *service) Deletar(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error) {
	var o *models.ObrigacaoAcessoria
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if o, err = s.buscar(tx, id); err != nil {
			return err
		}
		if err := s.repo.Deletar(tx, o.ID); err != nil {
			return apperror.NewInternal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, notificacao.AcaoRemovida, o)
	return o, nil
}

func (s *service) buscar(tx *gorm.DB, id uint) (*models.ObrigacaoAcessoria, error) {
	o, err := s.repo.BuscarPorID(tx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound(MsgNaoEncontrada)
	}
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return o, nil
}

// garantirNomeLivre falha se outra obrigação da mesma empresa já usa o nome.
func (s *service) garantirNomeLivre(tx *gorm.DB, empresaID uint, nome string, id uint) error {
	outra, err := s.repo.BuscarPorNome(tx, empresaID, nome)
	switch {
	case err == nil && outra.ID != id:
		return apperror.NewConflict(apperror.CodeDuplicateObrigacao, MsgDuplicada)
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NewInternal(err)
	}
	return nil
}

func (s *service) notificar(ctx context.Context, acao notificacao.Acao, o *models.ObrigacaoAcessoria) {
	notificacao.Disparar(ctx, s.notificador, notificacao.Evento{
		Acao:      acao,
		Entidade:  notificacao.EntidadeObrigacao,
		ID:        o.ID,
		EmpresaID: o.EmpresaID,
		Nome:      o.Nome,
	})
}

func traduzir(err error) error {
	if indice, ok := db.ViolacaoUnica(err); ok && indice == indiceNomeEmpresa {
		return apperror.NewConflict(apperror.CodeDuplicateObrigacao, MsgDuplicada).WithCause(err)
	}
	if _, ok := db.ViolacaoFK(err); ok {
		return apperror.NewConflict(apperror.CodeEmpresaNaoEncontrada, MsgEmpresaNaoEncontrada).WithCause(err)
	}
	return apperror.NewInternal(err)
}
