package empresa

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/models"
	"github.com/KromaEnergia/api-empresas/internal/notificacao"
)

type repoMock struct {
	SalvarFn           func(db *gorm.DB, e *models.Empresa) error
	BuscarPorIDFn      func(db *gorm.DB, id uint) (*models.Empresa, error)
	BuscarPorCNPJFn    func(db *gorm.DB, cnpj string) (*models.Empresa, error)
	BuscarPorEmailFn   func(db *gorm.DB, email string) (*models.Empresa, error)
	ListarFn           func(db *gorm.DB, skip, limit int) ([]models.Empresa, error)
	AtualizarFn        func(db *gorm.DB, e *models.Empresa) error
	DeletarFn          func(db *gorm.DB, id uint) error
	ContarObrigacoesFn func(db *gorm.DB, empresaID uint) (int64, error)
	ListarObrigacoesFn func(db *gorm.DB, empresaIDs []uint) ([]models.ObrigacaoAcessoria, error)
}

func (m *repoMock) Salvar(db *gorm.DB, e *models.Empresa) error {
	if m.SalvarFn == nil {
		return errors.New("SalvarFn not set")
	}
	return m.SalvarFn(db, e)
}

func (m *repoMock) BuscarPorID(db *gorm.DB, id uint) (*models.Empresa, error) {
	if m.BuscarPorIDFn == nil {
		return nil, errors.New("BuscarPorIDFn not set")
	}
	return m.BuscarPorIDFn(db, id)
}

// Sem função configurada, CNPJ e e-mail são tratados como livres.
func (m *repoMock) BuscarPorCNPJ(db *gorm.DB, cnpj string) (*models.Empresa, error) {
	if m.BuscarPorCNPJFn == nil {
		return &models.Empresa{}, gorm.ErrRecordNotFound
	}
	return m.BuscarPorCNPJFn(db, cnpj)
}

func (m *repoMock) BuscarPorEmail(db *gorm.DB, email string) (*models.Empresa, error) {
	if m.BuscarPorEmailFn == nil {
		return &models.Empresa{}, gorm.ErrRecordNotFound
	}
	return m.BuscarPorEmailFn(db, email)
}

func (m *repoMock) Listar(db *gorm.DB, skip, limit int) ([]models.Empresa, error) {
	if m.ListarFn == nil {
		return nil, errors.New("ListarFn not set")
	}
	return m.ListarFn(db, skip, limit)
}

func (m *repoMock) Atualizar(db *gorm.DB, e *models.Empresa) error {
	if m.AtualizarFn == nil {
		return errors.New("AtualizarFn not set")
	}
	return m.AtualizarFn(db, e)
}

func (m *repoMock) Deletar(db *gorm.DB, id uint) error {
	if m.DeletarFn == nil {
		return errors.New("DeletarFn not set")
	}
	return m.DeletarFn(db, id)
}

func (m *repoMock) ContarObrigacoes(db *gorm.DB, empresaID uint) (int64, error) {
	if m.ContarObrigacoesFn == nil {
		return 0, nil
	}
	return m.ContarObrigacoesFn(db, empresaID)
}

func (m *repoMock) ListarObrigacoes(db *gorm.DB, empresaIDs []uint) ([]models.ObrigacaoAcessoria, error) {
	if m.ListarObrigacoesFn == nil {
		return nil, nil
	}
	return m.ListarObrigacoesFn(db, empresaIDs)
}

type serviceMock struct {
	CriarFn       func(ctx context.Context, req CriarEmpresaRequest) (*EmpresaResponse, error)
	ListarFn      func(ctx context.Context, skip, limit int) ([]EmpresaResponse, error)
	BuscarPorIDFn func(ctx context.Context, id uint) (*EmpresaResponse, error)
	AtualizarFn   func(ctx context.Context, id uint, req AtualizarEmpresaRequest) (*EmpresaResponse, error)
	DeletarFn     func(ctx context.Context, id uint) (*EmpresaResponse, error)
}

func (m *serviceMock) Criar(ctx context.Context, req CriarEmpresaRequest) (*EmpresaResponse, error) {
	if m.CriarFn == nil {
		return nil, errors.New("CriarFn not set")
	}
	return m.CriarFn(ctx, req)
}

func (m *serviceMock) Listar(ctx context.Context, skip, limit int) ([]EmpresaResponse, error) {
	if m.ListarFn == nil {
		return nil, errors.New("ListarFn not set")
	}
	return m.ListarFn(ctx, skip, limit)
}

func (m *serviceMock) BuscarPorID(ctx context.Context, id uint) (*EmpresaResponse, error) {
	if m.BuscarPorIDFn == nil {
		return nil, errors.New("BuscarPorIDFn not set")
	}
	return m.BuscarPorIDFn(ctx, id)
}

func (m *serviceMock) Atualizar(ctx context.Context, id uint, req AtualizarEmpresaRequest) (*EmpresaResponse, error) {
	if m.AtualizarFn == nil {
		return nil, errors.New("AtualizarFn not set")
	}
	return m.AtualizarFn(ctx, id, req)
}

func (m *serviceMock) Deletar(ctx context.Context, id uint) (*EmpresaResponse, error) {
	if m.DeletarFn == nil {
		return nil, errors.New("DeletarFn not set")
	}
	return m.DeletarFn(ctx, id)
}

type notificadorMock struct {
	eventos []notificacao.Evento
}

func (n *notificadorMock) Notificar(_ context.Context, ev notificacao.Evento) error {
	n.eventos = append(n.eventos, ev)
	return nil
}
