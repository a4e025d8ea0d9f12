package userrepo

import (
	"context"
	"errors"

	"maintenance/internal/adapters/out/postgres/query"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// table runs the statements the three account tables have in common.
type table[D any] struct {
	db      *gorm.DB
	entity  string
	columns query.Columns
}

func newTable[D any](db *gorm.DB, entity string, extraColumns map[string]string) table[D] {
	columns := make(query.Columns, len(profileColumns)+len(extraColumns))
	for k, v := range profileColumns {
		columns[k] = v
	}
	for k, v := range extraColumns {
		columns[k] = v
	}
	return table[D]{db: db, entity: entity, columns: columns}
}

func (t table[D]) insert(ctx context.Context, dto *D, email string) error {
	if err := t.db.WithContext(ctx).Create(dto).Error; err != nil {
		return query.Wrap("add "+t.entity, "email", email, err)
	}
	return nil
}

func (t table[D]) update(ctx context.Context, id kernel.ID, dto *D, email string) error {
	result := t.db.WithContext(ctx).Model(new(D)).Where("id = ?", int64(id)).Select("*").Updates(dto)
	if result.Error != nil {
		return query.Wrap("update "+t.entity, "email", email, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(t.entity, id)
	}
	return nil
}

func (t table[D]) get(ctx context.Context, id kernel.ID) (D, error) {
	return t.first(t.db.WithContext(ctx), id, "id = ?", int64(id))
}

func (t table[D]) getForUpdate(ctx context.Context, id kernel.ID) (D, error) {
	return t.first(t.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id, "id = ?", int64(id))
}

func (t table[D]) getByEmail(ctx context.Context, email kernel.Email) (D, error) {
	return t.first(t.db.WithContext(ctx), email.String(), "email = ?", email.String())
}

func (t table[D]) first(db *gorm.DB, key any, cond string, arg any) (D, error) {
	var dto D
	if err := db.First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto, errs.NewObjectNotFoundError(t.entity, key)
		}
		return dto, query.Wrap("get "+t.entity, "id", key, err)
	}
	return dto, nil
}

func (t table[D]) existsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(D)).Where("email = ?", email.String()).Count(&n).Error; err != nil {
		return false, query.Wrap("check "+t.entity+" email", "email", email.String(), err)
	}
	return n > 0, nil
}

func (t table[D]) list(ctx context.Context, criteria ports.Criteria) ([]D, error) {
	scoped, err := query.Apply(t.db.WithContext(ctx).Model(new(D)), criteria, t.columns)
	if err != nil {
		return nil, err
	}
	dtos := make([]D, 0)
	if err = scoped.Find(&dtos).Error; err != nil {
		return nil, query.Wrap("list "+t.entity, "", nil, err)
	}
	return dtos, nil
}

func (t table[D]) delete(ctx context.Context, id kernel.ID) error {
	result := t.db.WithContext(ctx).Delete(new(D), int64(id))
	if result.Error != nil {
		return query.Wrap("delete "+t.entity, "id", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(t.entity, id)
	}
	return nil
}

func mapAll[D any, A any](dtos []D, toDomain func(D) (A, error)) ([]A, error) {
	out := make([]A, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func requireNew(id kernel.ID, entity string) error {
	if !id.IsZero() {
		return errs.NewObjectAlreadyExistsError(entity, id)
	}
	return nil
}
