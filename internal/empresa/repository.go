package empresa

import (
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/models"
)

type Repository interface {
	Salvar(db *gorm.DB, e *models.Empresa) error
	BuscarPorID(db *gorm.DB, id uint) (*models.Empresa, error)
	BuscarPorCNPJ(db *gorm.DB, cnpj string) (*models.Empresa, error)
	BuscarPorEmail(db *gorm.DB, email string) (*models.Empresa, error)
	Listar(db *gorm.DB, skip, limit int) ([]models.Empresa, error)
	Atualizar(db *gorm.DB, e *models.Empresa) error
	Deletar(db *gorm.DB, id uint) error
	ContarObrigacoes(db *gorm.DB, empresaID uint) (int64, error)
	ListarObrigacoes(db *gorm.DB, empresaIDs []uint) ([]models.ObrigacaoAcessoria, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *models.Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*models.Empresa, error) {
	var e models.Empresa
	err := db.First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) BuscarPorCNPJ(db *gorm.DB, cnpj string) (*models.Empresa, error) {
	var e models.Empresa
	err := db.Where("cnpj = ?", cnpj).First(&e).Error
	return &e, err
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*models.Empresa, error) {
	var e models.Empresa
	err := db.Where("email = ?", email).First(&e).Error
	return &e, err
}

func (r *repositoryImpl) Listar(db *gorm.DB, skip, limit int) ([]models.Empresa, error) {
	var empresas []models.Empresa
	err := db.Order("id").Offset(skip).Limit(limit).Find(&empresas).Error
	return empresas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, e *models.Empresa) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&models.Empresa{}, id).Error
}

func (r *repositoryImpl) ContarObrigacoes(db *gorm.DB, empresaID uint) (int64, error) {
	var n int64
	err := db.Model(&models.ObrigacaoAcessoria{}).Where("empresa_id = ?", empresaID).Count(&n).Error
	return n, err
}

// ListarObrigacoes busca de uma vez as obrigações de várias empresas.
func (r *repositoryImpl) ListarObrigacoes(db *gorm.DB, empresaIDs []uint) ([]models.ObrigacaoAcessoria, error) {
	var obrigacoes []models.ObrigacaoAcessoria
	if len(empresaIDs) == 0 {
		return obrigacoes, nil
	}
	err := db.Where("empresa_id IN ?", empresaIDs).Order("id").Find(&obrigacoes).Error
	return obrigacoes, err
}
