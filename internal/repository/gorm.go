package repository

import (
	"context"
	"errors"
	"strings"

	"toolverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewGormStore creates a store backed by a SQL database through GORM.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:     NewUserRepository(db),
		Tools:     NewToolRepository(db),
		UserTools: NewUserToolRepository(db),
		BlogPosts: NewBlogPostRepository(db),
		Seeder:    &gormSeeder{db: db},
		Backend:   db.Dialector.Name(),
	}
}

// translate maps GORM errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-folded LIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// window applies limit/offset with the same bounds rules as catalog.Paginate.
// It reports false when the window is empty and the query can be skipped.
func window(db *gorm.DB, limit, offset *int) (*gorm.DB, bool) {
	if offset != nil {
		if *offset < 0 {
			return db, false
		}
		db = db.Offset(*offset)
	}
	if limit != nil {
		if *limit <= 0 {
			return db, false
		}
		db = db.Limit(*limit)
	}
	return db, true
}

type gormSeeder struct {
	db *gorm.DB
}

func (s *gormSeeder) SeedTools(ctx context.Context, tools []*models.Tool) error {
	if len(tools) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tools).Error
}

func (s *gormSeeder) SeedBlogPosts(ctx context.Context, posts []*models.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&posts).Error
}

func (s *gormSeeder) SeedUsers(ctx context.Context, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error
}
