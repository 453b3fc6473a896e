package usecase

import (
	"context"
	"errors"
	"iter"

	"appointment-data-proxy/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ErrReferenceNotFound is returned when an entity refers to a row that does
// not exist in another database.
var ErrReferenceNotFound = errors.New("referenced entity not found")

// EntityUsecase is the operation surface shared by every entity.
type EntityUsecase[Req any, Resp any, K repository.Key, Filter any] interface {
	Get(ctx context.Context, key K) (*Resp, error)
	Create(ctx context.Context, req *Req) (*Resp, error)
	Update(ctx context.Context, req *Req) (*Resp, error)
	Delete(ctx context.Context, key K) error
	Stream(ctx context.Context, filter *Filter) iter.Seq2[Resp, error]
}

// entityConverter translates between the transport and domain shapes of one entity.
type entityConverter[E any, F any, Req any, Resp any, Filter any] struct {
	toEntity   func(req *Req) E
	toResponse func(e E) Resp
	toFilter   func(f *Filter) *F
}

type entityUsecase[E any, K repository.Key, F any, Req any, Resp any, Filter any] struct {
	log       *logrus.Logger
	name      string
	repo      repository.Repository[E, K, F]
	conv      entityConverter[E, F, Req, Resp, Filter]
	batchSize int

	// checkReferences runs before Create and Update when set.
	checkReferences func(ctx context.Context, e E) error
}

func (u *entityUsecase[E, K, F, Req, Resp, Filter]) Get(ctx context.Context, key K) (*Resp, error) {
	e, err := u.repo.Get(ctx, key)
	if err != nil {
		u.warn("find", err)
		return nil, err
	}

	resp := u.conv.toResponse(e)
	return &resp, nil
}

func (u *entityUsecase[E, K, F, Req, Resp, Filter]) Create(ctx context.Context, req *Req) (*Resp, error) {
	e := u.conv.toEntity(req)

	if u.checkReferences != nil {
		if err := u.checkReferences(ctx, e); err != nil {
			u.warn("check references of", err)
			return nil, err
		}
	}

	if err := u.repo.Create(ctx, e); err != nil {
		u.warn("create", err)
		return nil, err
	}

	resp := u.conv.toResponse(e)
	return &resp, nil
}

func (u *entityUsecase[E, K, F, Req, Resp, Filter]) Update(ctx context.Context, req *Req) (*Resp, error) {
	e := u.conv.toEntity(req)

	if u.checkReferences != nil {
		if err := u.checkReferences(ctx, e); err != nil {
			u.warn("check references of", err)
			return nil, err
		}
	}

	if err := u.repo.Update(ctx, e); err != nil {
		u.warn("update", err)
		return nil, err
	}

	resp := u.conv.toResponse(e)
	return &resp, nil
}

func (u *entityUsecase[E, K, F, Req, Resp, Filter]) Delete(ctx context.Context, key K) error {
	if err := u.repo.Delete(ctx, key); err != nil {
		u.warn("delete", err)
		return err
	}
	return nil
}

// Stream yields every entity matching filter using the configured batch size.
func (u *entityUsecase[E, K, F, Req, Resp, Filter]) Stream(ctx context.Context, filter *Filter) iter.Seq2[Resp, error] {
	entities := u.repo.StreamAll(ctx, u.batchSize, u.conv.toFilter(filter))

	return func(yield func(Resp, error) bool) {
		for e, err := range entities {
			if err != nil {
				var zero Resp
				if !errors.Is(err, context.Canceled) {
					u.warn("stream", err)
				}
				yield(zero, err)
				return
			}
			if !yield(u.conv.toResponse(e), nil) {
				return
			}
		}
	}
}

// warn logs failures that are not an expected result kind.
func (u *entityUsecase[E, K, F, Req, Resp, Filter]) warn(op string, err error) {
	if isResultKind(err) {
		return
	}
	u.log.Warnf("Failed to %s %s: %+v", op, u.name, err)
}

func isResultKind(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrAlreadyExists) ||
		errors.Is(err, repository.ErrReferenceViolation) ||
		errors.Is(err, ErrReferenceNotFound)
}
