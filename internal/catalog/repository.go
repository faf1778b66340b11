package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
	"github.com/MRevitt/BobsUsedBooks/pkg/pagination"
)

// Repository encapsulates catalog (book) persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// GetByID returns the book with its lookup references loaded.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Preload("BookType").
		Preload("Genre").
		Preload("Condition").
		First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns catalog rows ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// ListPage returns a page of catalog rows, newest first, with a cursor to
// the next page when more rows remain.
func (r *Repository) ListPage(ctx context.Context, params pagination.Params) ([]models.Book, string, error) {
	cursor, err := pagination.DecodeCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	limit := pagination.LimitWithBuffer(params.Limit)
	query := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if !cursor.CreatedAt.IsZero() {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var books []models.Book
	if err := query.Find(&books).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(books) == limit {
		books = books[:limit-1]
		last := books[len(books)-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return books, next, nil
}

// Create inserts the provided book.
func (r *Repository) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return book, nil
}

// Update saves the provided book.
func (r *Repository) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return book, nil
}

// AdjustQuantity applies a stock delta to the book row.
func (r *Repository) AdjustQuantity(ctx context.Context, id int64, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a catalog row. Order and cart lines referencing the book
// keep the delete restricted at the engine.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return db.ClassifyConstraint(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
