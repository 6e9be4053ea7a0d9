package implementation

import (
	"context"
	"errors"

	"geocache-bot/internal/entity"
	"geocache-bot/internal/mapper"
	"geocache-bot/internal/model"
	"geocache-bot/internal/repository/contract"
	"geocache-bot/internal/repository/specification"

	"gorm.io/gorm"
)

type PlayerSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlayerSessionMapper
}

func NewPlayerSessionRepository(db *gorm.DB) contract.PlayerSessionRepository {
	return &PlayerSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlayerSessionMapper(),
	}
}

func (r *PlayerSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlayerSessionRepositoryImpl) Create(ctx context.Context, session *entity.PlayerSession) error {
	modelSession := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(modelSession).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(modelSession)
	return nil
}

func (r *PlayerSessionRepositoryImpl) Update(ctx context.Context, session *entity.PlayerSession) error {
	modelSession := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(modelSession).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(modelSession)
	return nil
}

func (r *PlayerSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlayerSession, error) {
	var modelSession model.PlayerSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSession).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSession), nil
}

func (r *PlayerSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlayerSession, error) {
	var modelSessions []*model.PlayerSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSessions).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSessions), nil
}

func (r *PlayerSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PlayerSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PlayerSessionRepositoryImpl) ExistsByDisplayName(ctx context.Context, name string) (bool, error) {
	count, err := r.Count(ctx, specification.NameInUse{Name: name})
	return count > 0, err
}
