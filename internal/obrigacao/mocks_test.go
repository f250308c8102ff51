package obrigacao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/models"
	"github.com/KromaEnergia/api-empresas/internal/notificacao"
)

type repoMock struct {
	SalvarFn        func(db *gorm.DB, o *models.ObrigacaoAcessoria) error
	BuscarPorIDFn   func(db *gorm.DB, id uint) (*models.ObrigacaoAcessoria, error)
	BuscarPorNomeFn func(db *gorm.DB, empresaID uint, nome string) (*models.ObrigacaoAcessoria, error)
	ListarFn        func(db *gorm.DB, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error)
	AtualizarFn     func(db *gorm.DB, o *models.ObrigacaoAcessoria) error
	DeletarFn       func(db *gorm.DB, id uint) error
	EmpresaExisteFn func(db *gorm.DB, empresaID uint) (bool, error)
}

func (m *repoMock) Salvar(db *gorm.DB, o *models.ObrigacaoAcessoria) error {
	if m.SalvarFn == nil {
		return errors.New("SalvarFn not set")
	}
	return m.SalvarFn(db, o)
}

func (m *repoMock) BuscarPorID(db *gorm.DB, id uint) (*models.ObrigacaoAcessoria, error) {
	if m.BuscarPorIDFn == nil {
		return nil, errors.New("BuscarPorIDFn not set")
	}
	return m.BuscarPorIDFn(db, id)
}

// Sem função configurada, o nome é tratado como livre.
func (m *repoMock) BuscarPorNome(db *gorm.DB, empresaID uint, nome string) (*models.ObrigacaoAcessoria, error) {
	if m.BuscarPorNomeFn == nil {
		return &models.ObrigacaoAcessoria{}, gorm.ErrRecordNotFound
	}
	return m.BuscarPorNomeFn(db, empresaID, nome)
}

func (m *repoMock) Listar(db *gorm.DB, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error) {
	if m.ListarFn == nil {
		return nil, errors.New("ListarFn not set")
	}
	return m.ListarFn(db, empresaID, skip, limit)
}

func (m *repoMock) Atualizar(db *gorm.DB, o *models.ObrigacaoAcessoria) error {
	if m.AtualizarFn == nil {
		return errors.New("AtualizarFn not set")
	}
	return m.AtualizarFn(db, o)
}

func (m *repoMock) Deletar(db *gorm.DB, id uint) error {
	if m.DeletarFn == nil {
		return errors.New("DeletarFn not set")
	}
	return m.DeletarFn(db, id)
}

func (m *repoMock) EmpresaExiste(db *gorm.DB, empresaID uint) (bool, error) {
	if m.EmpresaExisteFn == nil {
		return true, nil
	}
	return m.EmpresaExisteFn(db, empresaID)
}

type serviceMock struct {
	CriarFn       func(ctx context.Context, req CriarObrigacaoRequest) (*models.ObrigacaoAcessoria, error)
	ListarFn      func(ctx context.Context, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error)
	BuscarPorIDFn func(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error)
	AtualizarFn   func(ctx context.Context, id uint, req AtualizarObrigacaoRequest) (*models.ObrigacaoAcessoria, error)
	DeletarFn     func(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error)
}

func (m *serviceMock) Criar(ctx context.Context, req CriarObrigacaoRequest) (*models.ObrigacaoAcessoria, error) {
	if m.CriarFn == nil {
		return nil, errors.New("CriarFn not set")
	}
	return m.CriarFn(ctx, req)
}

func (m *serviceMock) Listar(ctx context.Context, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error) {
	if m.ListarFn == nil {
		return nil, errors.New("ListarFn not set")
	}
	return m.ListarFn(ctx, empresaID, skip, limit)
}

func (m *serviceMock) BuscarPorID(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error) {
	if m.BuscarPorIDFn == nil {
		return nil, errors.New("BuscarPorIDFn not set")
	}
	return m.BuscarPorIDFn(ctx, id)
}

func (m *serviceMock) Atualizar(ctx context.Context, id uint, req AtualizarObrigacaoRequest) (*models.ObrigacaoAcessoria, error) {
	if m.AtualizarFn == nil {
		return nil, errors.New("AtualizarFn not set")
	}
	return m.AtualizarFn(ctx, id, req)
}

func (m *serviceMock) Deletar(ctx context.Context, id uint) (*models.ObrigacaoAcessoria, error) {
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
