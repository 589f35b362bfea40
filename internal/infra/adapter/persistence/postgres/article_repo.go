package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

const articleColumns = "id, title, excerpt, content, thumbnail, category, tags, read_time, created_at, updated_at"

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// scanner abstracts *sql.Row and *sql.Rows for scanArticle.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanArticle reads one article row. Nullable columns map to nil pointers;
// a tags column that fails to decode is treated as absent rather than
// failing the whole query.
func scanArticle(s scanner) (*entity.Article, error) {
	var (
		article   entity.Article
		thumbnail sql.NullString
		category  sql.NullString
		tagsRaw   []byte
		readTime  sql.NullInt64
	)
	if err := s.Scan(&article.ID, &article.Title, &article.Excerpt, &article.Content,
		&thumbnail, &category, &tagsRaw, &readTime,
		&article.CreatedAt, &article.UpdatedAt); err != nil {
		return nil, err
	}
	if thumbnail.Valid {
		article.Thumbnail = &thumbnail.String
	}
	if category.Valid {
		article.Category = &category.String
	}
	if readTime.Valid {
		rt := int(readTime.Int64)
		article.ReadTime = &rt
	}
	if len(tagsRaw) > 0 {
		if err := json.Unmarshal(tagsRaw, &article.Tags); err != nil {
			article.Tags = nil
		}
	}
	return &article, nil
}

// tagsParam converts a tag list to the JSONB insert parameter.
// An empty list is stored as NULL, matching the "absent" reading of the column.
func tagsParam(tags []string) (interface{}, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return raw, nil
}

func (repo *ArticleRepo) ListPage(ctx context.Context, q repository.ListQuery, offset, limit int) ([]*entity.Article, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(q)
	orderByClause := repo.queryBuilder.BuildOrderByClause(q)

	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
%s
LIMIT $%d OFFSET $%d`, articleColumns, whereClause, orderByClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPage: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) CountMatching(ctx context.Context, q repository.ListQuery) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(q)
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountMatching: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE id = $1
LIMIT 1`, articleColumns)

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	tags, err := tagsParam(article.Tags)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	const query = `
INSERT INTO articles
       (title, excerpt, content, thumbnail, category, tags, read_time, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err = repo.db.QueryRowContext(ctx, query,
		article.Title, article.Excerpt, article.Content,
		article.Thumbnail, article.Category, tags, article.ReadTime,
		article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	tags, err := tagsParam(article.Tags)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	const query = `
UPDATE articles SET
       title      = $1,
       excerpt    = $2,
       content    = $3,
       thumbnail  = $4,
       category   = $5,
       tags       = $6,
       read_time  = $7,
       updated_at = $8
WHERE id = $9`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Excerpt, article.Content,
		article.Thumbnail, article.Category, tags, article.ReadTime,
		article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

// CategoryCounts groups the live article set by category and counts usage.
// There is no cached aggregate table; the query runs against the articles
// table on every call.
func (repo *ArticleRepo) CategoryCounts(ctx context.Context) ([]repository.NameCount, error) {
	const query = `
SELECT category, COUNT(*) AS count
FROM articles
WHERE category IS NOT NULL
GROUP BY category
ORDER BY count DESC, category ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CategoryCounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]repository.NameCount, 0, 16)
	for rows.Next() {
		var nc repository.NameCount
		if err := rows.Scan(&nc.Name, &nc.Count); err != nil {
			return nil, fmt.Errorf("CategoryCounts: Scan: %w", err)
		}
		counts = append(counts, nc)
	}
	return counts, rows.Err()
}

// ListTagSets returns the decoded tag list of every article that has one.
// Rows whose tags column is not a valid JSON string array are skipped
// defensively instead of failing the aggregate.
func (repo *ArticleRepo) ListTagSets(ctx context.Context) ([][]string, error) {
	const query = `SELECT tags FROM articles WHERE tags IS NOT NULL`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListTagSets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sets := make([][]string, 0, 100)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("ListTagSets: Scan: %w", err)
		}
		var tags []string
		if err := json.Unmarshal(raw, &tags); err != nil {
			continue
		}
		if len(tags) == 0 {
			continue
		}
		sets = append(sets, tags)
	}
	return sets, rows.Err()
}
