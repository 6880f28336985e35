// Package store is the generic gorm-backed CRUD layer shared by every
// catalog repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	apperrors "github.com/killallgit/catalog-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows a query; it has the shape gorm's Scopes expects
type Scope = func(*gorm.DB) *gorm.DB

// Query collects the predicates, ordering and eager loads of one read
type Query struct {
	Scopes   []Scope
	Order    []clause.OrderByColumn
	Preloads []string
}

// PageRequest is a normalized page number and size
type PageRequest struct {
	Page    int
	PerPage int
}

// Page is one bounded slice of a result set plus total-count metadata
type Page[T any] struct {
	Items       []T
	Total       int64
	CurrentPage int
	PerPage     int
}

// LastPage is the number of the final page; an empty result still has page 1
func (p *Page[T]) LastPage() int {
	if p.Total == 0 || p.PerPage <= 0 {
		return 1
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// From is the 1-based position of the first item on the page, 0 when empty
func (p *Page[T]) From() int {
	if len(p.Items) == 0 {
		return 0
	}
	return (p.CurrentPage-1)*p.PerPage + 1
}

// To is the 1-based position of the last item on the page, 0 when empty
func (p *Page[T]) To() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.From() + len(p.Items) - 1
}

func (p *Page[T]) HasPrev() bool { return p.CurrentPage > 1 }

func (p *Page[T]) HasNext() bool { return p.CurrentPage < p.LastPage() }

// Store implements the CRUD contract for one entity type
type Store[T any] struct {
	db       *gorm.DB
	resource string
}

// New creates a store for T. resource names the entity in errors ("Podcast").
func New[T any](db *gorm.DB, resource string) *Store[T] {
	return &Store[T]{db: db, resource: resource}
}

// Resource returns the entity name used in errors
func (s *Store[T]) Resource() string {
	return s.resource
}

// DB returns the underlying handle bound to ctx
func (s *Store[T]) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Transaction runs fn with a store bound to a single transaction
func (s *Store[T]) Transaction(ctx context.Context, fn func(tx *Store[T]) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store[T]{db: tx, resource: s.resource})
	})
}

func (s *Store[T]) query(ctx context.Context, q Query) *gorm.DB {
	db := s.db.WithContext(ctx).Model(new(T)).Scopes(q.Scopes...)
	for _, p := range q.Preloads {
		db = db.Preload(p)
	}
	for _, o := range q.Order {
		db = db.Order(o)
	}
	return db
}

// FindByID fails with NotFound if no row matches
func (s *Store[T]) FindByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	return s.First(ctx, Query{Scopes: []Scope{Equals("id", id)}, Preloads: preloads}, id)
}

// FindBy returns the single row whose column equals value
func (s *Store[T]) FindBy(ctx context.Context, column string, value any, preloads ...string) (*T, error) {
	return s.First(ctx, Query{Scopes: []Scope{Equals(column, value)}, Preloads: preloads}, value)
}

// First returns the first row matching q; key is reported in the NotFound error
func (s *Store[T]) First(ctx context.Context, q Query, key any) (*T, error) {
	var entity T
	err := s.query(ctx, q).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(s.resource, key)
		}
		return nil, apperrors.DatabaseError("select "+s.resource, err)
	}
	return &entity, nil
}

// FindByField is an unfiltered equality lookup
func (s *Store[T]) FindByField(ctx context.Context, field string, value any) ([]T, error) {
	var items []T
	if err := s.query(ctx, Query{Scopes: []Scope{Equals(field, value)}}).Find(&items).Error; err != nil {
		return nil, apperrors.DatabaseError("select "+s.resource, err)
	}
	return items, nil
}

// Create inserts entity. Uniqueness and foreign-key failures surface as ConstraintViolation.
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return s.translateWrite(err, "insert")
	}
	return nil
}

// Update loads the row, applies the overwrite, saves it and returns the refreshed row
func (s *Store[T]) Update(ctx context.Context, id uint, apply func(*T)) (*T, error) {
	entity, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(entity)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return nil, s.translateWrite(err, "update")
	}
	return s.FindByID(ctx, id)
}

// Delete removes the row; schema cascades take care of dependents
func (s *Store[T]) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, s.translateWrite(res.Error, "delete")
	}
	if res.RowsAffected == 0 {
		return false, apperrors.NotFound(s.resource, id)
	}
	return true, nil
}

// Paginate counts the filtered rows and returns the requested page
func (s *Store[T]) Paginate(ctx context.Context, q Query, req PageRequest) (*Page[T], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = DefaultPerPage
	}

	var total int64
	if err := s.query(ctx, Query{Scopes: q.Scopes}).Count(&total).Error; err != nil {
		return nil, apperrors.DatabaseError("count "+s.resource, err)
	}

	page := &Page[T]{Total: total, CurrentPage: req.Page, PerPage: req.PerPage, Items: []T{}}
	if total == 0 {
		return page, nil
	}

	offset := (req.Page - 1) * req.PerPage
	if err := s.query(ctx, q).Offset(offset).Limit(req.PerPage).Find(&page.Items).Error; err != nil {
		return nil, apperrors.DatabaseError("select "+s.resource, err)
	}
	return page, nil
}

// List returns at most limit rows matching q
func (s *Store[T]) List(ctx context.Context, q Query, limit int) ([]T, error) {
	items := []T{}
	db := s.query(ctx, q)
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, apperrors.DatabaseError("select "+s.resource, err)
	}
	return items, nil
}

// Count returns the number of rows matching scopes
func (s *Store[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var total int64
	if err := s.query(ctx, Query{Scopes: scopes}).Count(&total).Error; err != nil {
		return 0, apperrors.DatabaseError("count "+s.resource, err)
	}
	return total, nil
}

// Exists reports whether a row with id is present
func (s *Store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	n, err := s.Count(ctx, Equals("id", id))
	return n > 0, err
}

// Taken reports whether another row (id != exceptID) already holds value in column
func (s *Store[T]) Taken(ctx context.Context, column string, value any, exceptID uint) (bool, error) {
	scopes := []Scope{Equals(column, value)}
	if exceptID != 0 {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where(clause.Neq{Column: clause.Column{Name: "id"}, Value: exceptID})
		})
	}
	n, err := s.Count(ctx, scopes...)
	return n > 0, err
}

func (s *Store[T]) translateWrite(err error, op string) error {
	if IsConstraintViolation(err) {
		return apperrors.ConstraintViolation(s.resource, err)
	}
	return fmt.Errorf("%s %s: %w", op, s.resource, err)
}
