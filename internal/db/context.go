package db

import (
	"context" // Cancellation passed to GORM
	"errors"  // Not-found detection
	"fmt"     // Error wrapping
	"slices"  // Clip keeps builders independent

	"fina/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM
)

type changeKind int

const (
	added changeKind = iota
	modified
	removed
)

func (k changeKind) String() string {
	switch k {
	case added:
		return "add"
	case modified:
		return "update"
	default:
		return "remove"
	}
}

// change is one pending write; value is always a pointer to a model.
type change struct {
	kind  changeKind // Insert, update or delete
	value any        // Pointer to the model
}

// Context is a unit of work over the database. Writes made through its sets
// are kept in memory until SaveChanges applies them in a single database
// transaction. A Context that is dropped without SaveChanges leaves the
// database untouched. It is not safe for concurrent use; create one per
// operation.
type Context struct {
	db      *gorm.DB // Database connection
	pending []change // Writes in recording order
}

// NewContext starts a unit of work on db
func NewContext(db *gorm.DB) *Context {
	return &Context{db: db}
}

// Categories is the category set of this unit of work
func (c *Context) Categories() Set[domain.Category] {
	return SetOf[domain.Category](c)
}

// Transactions is the transaction set of this unit of work
func (c *Context) Transactions() Set[domain.Transaction] {
	return SetOf[domain.Transaction](c)
}

// HasChanges reports whether writes are waiting for SaveChanges
func (c *Context) HasChanges() bool {
	return len(c.pending) > 0
}

// Discard drops every pending write
func (c *Context) Discard() {
	c.pending = nil
}

// SaveChanges applies the pending writes in the order they were recorded.
// Either all of them are committed or none; on failure the pending list is
// kept so the caller can inspect or discard it.
func (c *Context) SaveChanges(ctx context.Context) error {
	if len(c.pending) == 0 {
		return nil // Nothing to write
	}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range c.pending {
			var res *gorm.DB
			switch ch.kind {
			case added:
				res = tx.Create(ch.value) // Fills the primary key
			case modified:
				res = tx.Save(ch.value) // Writes every column
			case removed:
				res = tx.Delete(ch.value) // By primary key
			}
			if res.Error != nil {
				return fmt.Errorf("%s %T: %w", ch.kind, ch.value, res.Error) // Rolls back every change
			}
		}
		return nil
	})
	if err != nil {
		return err // Pending list kept
	}
	c.pending = nil // Committed
	return nil
}

func (c *Context) track(kind changeKind, value any) {
	c.pending = append(c.pending, change{kind: kind, value: value})
}

// Set gives table-like access to one entity type inside a Context
type Set[T any] struct {
	ctx *Context
}

// SetOf returns the set of T tracked by c
func SetOf[T any](c *Context) Set[T] {
	return Set[T]{ctx: c}
}

// Add schedules entity for insertion; its primary key is filled on SaveChanges
func (s Set[T]) Add(entity *T) {
	s.ctx.track(added, entity)
}

// Update schedules entity to be written back in full
func (s Set[T]) Update(entity *T) {
	s.ctx.track(modified, entity)
}

// Remove schedules entity for deletion by primary key
func (s Set[T]) Remove(entity *T) {
	s.ctx.track(removed, entity)
}

// Query starts a deferred query over the set
func (s Set[T]) Query() Query[T] {
	return Query[T]{db: s.ctx.db}
}

type condition struct {
	query any   // GORM condition
	args  []any // Bound parameters
}

// Query is an immutable, lazily executed query. Builder methods return a new
// Query; only ToList, FirstOrDefault and Count reach the database.
type Query[T any] struct {
	db     *gorm.DB    // Database connection
	where  []condition // Filters, ANDed
	orders []string    // Sort columns in priority order
	skip   int         // Offset
	take   int         // Limit, 0 for none
}

// Where adds a filter using GORM condition syntax, e.g. ("user_id = ?", id)
func (q Query[T]) Where(query any, args ...any) Query[T] {
	q.where = append(slices.Clip(q.where), condition{query: query, args: args})
	return q
}

// OrderBy appends a sort column; column must be a trusted identifier
func (q Query[T]) OrderBy(column string) Query[T] {
	q.orders = append(slices.Clip(q.orders), column)
	return q
}

// OrderByDesc appends a descending sort column
func (q Query[T]) OrderByDesc(column string) Query[T] {
	return q.OrderBy(column + " desc")
}

// Skip sets how many rows to skip before reading
func (q Query[T]) Skip(n int) Query[T] {
	q.skip = n
	return q
}

// Take limits how many rows are read
func (q Query[T]) Take(n int) Query[T] {
	q.take = n
	return q
}

func (q Query[T]) filtered(ctx context.Context) *gorm.DB {
	tx := q.db.WithContext(ctx).Model(new(T))
	for _, w := range q.where {
		tx = tx.Where(w.query, w.args...)
	}
	return tx
}

func (q Query[T]) ordered(ctx context.Context) *gorm.DB {
	tx := q.filtered(ctx)
	for _, o := range q.orders {
		tx = tx.Order(o)
	}
	return tx
}

// ToList materializes the query
func (q Query[T]) ToList(ctx context.Context) ([]T, error) {
	tx := q.ordered(ctx)
	if q.take > 0 {
		tx = tx.Limit(q.take)
	}
	if q.skip > 0 {
		tx = tx.Offset(q.skip)
	}
	items := make([]T, 0) // Empty list rather than null in JSON
	if err := tx.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %T: %w", *new(T), err)
	}
	return items, nil
}

// FirstOrDefault returns the first matching row, or nil when there is none
func (q Query[T]) FirstOrDefault(ctx context.Context) (*T, error) {
	tx := q.ordered(ctx)
	if q.skip > 0 {
		tx = tx.Offset(q.skip)
	}
	var item T
	err := tx.Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absent is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("first %T: %w", item, err)
	}
	return &item, nil
}

// Count returns the number of matching rows, ignoring order, skip and take
func (q Query[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := q.filtered(ctx).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %T: %w", *new(T), err)
	}
	return n, nil
}
