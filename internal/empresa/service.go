package empresa

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
	MsgNaoEncontrada  = "Empresa não encontrada"
	MsgCNPJDuplicado  = "CNPJ já cadastrado"
	MsgEmailDuplicado = "E-mail já cadastrado"
	MsgComObrigacoes  = "Não é possível excluir a empresa, pois há obrigações acessórias associadas"

	indiceCNPJ  = "uniq_empresas_cnpj"
	indiceEmail = "uniq_empresas_email"
)

type Service interface {
	Criar(ctx context.Context, req CriarEmpresaRequest) (*EmpresaResponse, error)
	Listar(ctx context.Context, skip, limit int) ([]EmpresaResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*EmpresaResponse, error)
	Atualizar(ctx context.Context, id uint, req AtualizarEmpresaRequest) (*EmpresaResponse, error)
	Deletar(ctx context.Context, id uint) (*EmpresaResponse, error)
}

// service aplica as regras de negócio; cada operação roda numa transação.
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

func (s *service) Criar(ctx context.Context, req CriarEmpresaRequest) (*EmpresaResponse, error) {
	e, err := req.Validar()
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.garantirUnicidade(tx, 0, e.CNPJ, e.Email); err != nil {
			return err
		}
		if err := s.repo.Salvar(tx, e); err != nil {
			return traduzir(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, notificacao.AcaoCriada, e)
	resp := novaResposta(*e, nil)
	return &resp, nil
}

func (s *service) Listar(ctx context.Context, skip, limit int) ([]EmpresaResponse, error) {
	pag, err := utils.NovaPaginacao(skip, limit)
	if err != nil {
		return nil, err
	}

	var out []EmpresaResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		empresas, err := s.repo.Listar(tx, pag.Skip, pag.Limit)
		if err != nil {
			return apperror.NewInternal(err)
		}

		ids := make([]uint, 0, len(empresas))
		for _, e := range empresas {
			ids = append(ids, e.ID)
		}
		obrigacoes, err := s.repo.ListarObrigacoes(tx, ids)
		if err != nil {
			return apperror.NewInternal(err)
		}

		porEmpresa := make(map[uint][]models.ObrigacaoAcessoria, len(empresas))
		for _, o := range obrigacoes {
			porEmpresa[o.EmpresaID] = append(porEmpresa[o.EmpresaID], o)
		}
		out = make([]EmpresaResponse, 0, len(empresas))
		for _, e := range empresas {
			out = append(out, novaResposta(e, porEmpresa[e.ID]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) BuscarPorID(ctx context.Context, id uint) (*EmpresaResponse, error) {
	var resp EmpresaResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := s.buscar(tx, id)
		if err != nil {
			return err
		}
		obrigacoes, err := s.repo.ListarObrigacoes(tx, []uint{e.ID})
		if err != nil {
			return apperror.NewInternal(err)
		}
		resp = novaResposta(*e, obrigacoes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) Atualizar(ctx context.Context, id uint, req AtualizarEmpresaRequest) (*EmpresaResponse, error) {
	if err := req.Validar(); err != nil {
		return nil, err
	}

	var resp EmpresaResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := s.buscar(tx, id)
		if err != nil {
			return err
		}

		var cnpj, email string
		if req.CNPJ.Definido() && req.CNPJ.Valor != e.CNPJ {
			cnpj = req.CNPJ.Valor
		}
		if req.Email.Definido() && req.Email.Valor != e.Email {
			email = req.Email.Valor
		}
		if err := s.garantirUnicidade(tx, e.ID, cnpj, email); err != nil {
			return err
		}

		req.Aplicar(e)
		if err := s.repo.Atualizar(tx, e); err != nil {
			return traduzir(err)
		}

		obrigacoes, err := s.repo.ListarObrigacoes(tx, []uint{e.ID})
		if err != nil {
			return apperror.NewInternal(err)
		}
		resp = novaResposta(*e, obrigacoes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, notificacao.AcaoAtualizada, &resp.Empresa)
	return &resp, nil
}

// Deletar é bloqueado enquanto houver obrigações da empresa.
func (s *service) Deletar(ctx context.Context, id uint) (*EmpresaResponse, error) {
	var resp EmpresaResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := s.buscar(tx, id)
		if err != nil {
			return err
		}

		n, err := s.repo.ContarObrigacoes(tx, e.ID)
		if err != nil {
			return apperror.NewInternal(err)
		}
		if n > 0 {
			return apperror.NewConflict(apperror.CodeHasDependents, MsgComObrigacoes)
		}

		if err := s.repo.Deletar(tx, e.ID); err != nil {
			return traduzir(err)
		}
		resp = novaResposta(*e, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificar(ctx, notificacao.AcaoRemovida, &resp.Empresa)
	return &resp, nil
}

func (s *service) buscar(tx *gorm.DB, id uint) (*models.Empresa, error) {
	e, err := s.repo.BuscarPorID(tx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound(MsgNaoEncontrada)
	}
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return e, nil
}

// garantirUnicidade confere CNPJ e e-mail contra as outras empresas.
// Valores vazios não são conferidos.
func (s *service) garantirUnicidade(tx *gorm.DB, id uint, cnpj, email string) error {
	if cnpj != "" {
		outra, err := s.repo.BuscarPorCNPJ(tx, cnpj)
		switch {
		case err == nil && outra.ID != id:
			return apperror.NewConflict(apperror.CodeDuplicateCNPJ, MsgCNPJDuplicado)
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return apperror.NewInternal(err)
		}
	}
	if email != "" {
		outra, err := s.repo.BuscarPorEmail(tx, email)
		switch {
		case err == nil && outra.ID != id:
			return apperror.NewConflict(apperror.CodeDuplicateEmail, MsgEmailDuplicado)
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return apperror.NewInternal(err)
		}
	}
	return nil
}

func (s *service) notificar(ctx context.Context, acao notificacao.Acao, e *models.Empresa) {
	notificacao.Disparar(ctx, s.notificador, notificacao.Evento{
		Acao:     acao,
		Entidade: notificacao.EntidadeEmpresa,
		ID:       e.ID,
		CNPJ:     e.CNPJ,
		Nome:     e.Nome,
	})
}

// traduzir cobre a corrida entre a checagem e o INSERT/UPDATE: o índice único
// ou a FK do banco barram e o erro vira o mesmo da regra de negócio.
func traduzir(err error) error {
	if indice, ok := db.ViolacaoUnica(err); ok {
		switch indice {
		case indiceCNPJ:
			return apperror.NewConflict(apperror.CodeDuplicateCNPJ, MsgCNPJDuplicado).WithCause(err)
		case indiceEmail:
			return apperror.NewConflict(apperror.CodeDuplicateEmail, MsgEmailDuplicado).WithCause(err)
		}
	}
	if _, ok := db.ViolacaoFK(err); ok {
		return apperror.NewConflict(apperror.CodeHasDependents, MsgComObrigacoes).WithCause(err)
	}
	return apperror.NewInternal(err)
}
