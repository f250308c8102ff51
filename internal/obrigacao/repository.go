package obrigacao

import (
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/models"
)

type Repository interface {
	Salvar(db *gorm.DB, o *models.ObrigacaoAcessoria) error
	BuscarPorID(db *gorm.DB, id uint) (*models.ObrigacaoAcessoria, error)
	BuscarPorNome(db *gorm.DB, empresaID uint, nome string) (*models.ObrigacaoAcessoria, error)
	Listar(db *gorm.DB, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error)
	Atualizar(db *gorm.DB, o *models.ObrigacaoAcessoria) error
	Deletar(db *gorm.DB, id uint) error
	EmpresaExiste(db *gorm.DB, empresaID uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *models.ObrigacaoAcessoria) error {
	return db.Omit("Empresa").Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*models.ObrigacaoAcessoria, error) {
	var o models.ObrigacaoAcessoria
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, empresaID uint, nome string) (*models.ObrigacaoAcessoria, error) {
	var o models.ObrigacaoAcessoria
	err := db.Where("empresa_id = ? AND nome = ?", empresaID, nome).First(&o).Error
	return &o, err
}

// Listar filtra por empresa quando empresaID != 0.
func (r *repositoryImpl) Listar(db *gorm.DB, empresaID uint, skip, limit int) ([]models.ObrigacaoAcessoria, error) {
	var obrigacoes []models.ObrigacaoAcessoria
	q := db.Model(&models.ObrigacaoAcessoria{})
	if empresaID != 0 {
		q = q.Where("empresa_id = ?", empresaID)
	}
	err := q.Order("id").Offset(skip).Limit(limit).Find(&obrigacoes).Error
	return obrigacoes, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *models.ObrigacaoAcessoria) error {
	return db.Omit("Empresa").Save(o).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&models.ObrigacaoAcessoria{}, id).Error
}

func (r *repositoryImpl) EmpresaExiste(db *gorm.DB, empresaID uint) (bool, error) {
	var n int64
	err := db.Model(&models.Empresa{}).Where("id = ?", empresaID).Count(&n).Error
	return n > 0, err
}
