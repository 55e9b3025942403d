package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
)

type productRepository struct {
	storage *Storage
}

func (r *productRepository) Create(ctx context.Context, p *model.Product, file *model.ProductFile, images []model.ProductImage) (*model.Product, error) {
	created := *p
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertProduct = `INSERT INTO products (seller_id, name, description, price, category, approved)
                               VALUES ($1, $2, $3, $4, $5, $6)
                               RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertProduct, p.SellerID, p.Name, p.Description, p.Price, p.Category, p.Approved).
			Scan(&created.ID, &created.CreatedAt); err != nil {
			return err
		}

		if file != nil {
			const insertFile = `INSERT INTO product_files (product_id, object_key, filename, size_bytes) VALUES ($1, $2, $3, $4)`
			if _, err := tx.Exec(ctx, insertFile, created.ID, file.ObjectKey, file.Filename, file.SizeBytes); err != nil {
				return err
			}
		}

		const insertImage = `INSERT INTO product_images (product_id, object_key, position) VALUES ($1, $2, $3)`
		for _, img := range images {
			if _, err := tx.Exec(ctx, insertImage, created.ID, img.ObjectKey, img.Position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, seller_id, name, description, price, category, approved, created_at
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.SellerID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Approved, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	const query = `SELECT id, seller_id, name, description, price, category, approved, created_at
                   FROM products WHERE id = ANY($1) AND price > 0`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ApprovedOnly {
		conds = append(conds, "approved")
	}
	if filter.PendingOnly {
		conds = append(conds, "NOT approved")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.SellerID != 0 {
		args = append(args, filter.SellerID)
		conds = append(conds, fmt.Sprintf("seller_id=$%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := " ORDER BY created_at ASC"
	if filter.SortDesc {
		order = " ORDER BY created_at DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	args = append(args, limit)
	paging := fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		paging += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	query := `SELECT id, seller_id, name, description, price, category, approved, created_at FROM products` +
		where + order + paging
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Delete(ctx context.Context, id, sellerID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1 AND seller_id=$2`, id, sellerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE products SET approved=$1 WHERE id=$2`, approved, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) FileForProduct(ctx context.Context, productID int64) (*model.ProductFile, error) {
	const query = `SELECT id, product_id, object_key, filename, size_bytes, created_at
                   FROM product_files WHERE product_id=$1 ORDER BY created_at LIMIT 1`
	var f model.ProductFile
	err := r.storage.pool.QueryRow(ctx, query, productID).
		Scan(&f.ID, &f.ProductID, &f.ObjectKey, &f.Filename, &f.SizeBytes, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *productRepository) ImagesForProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	const query = `SELECT id, product_id, object_key, position
                   FROM product_images WHERE product_id=$1 ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ProductImage
	for rows.Next() {
		var img model.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ObjectKey, &img.Position); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) CountBySeller(ctx context.Context, sellerID int64) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE seller_id=$1`, sellerID).Scan(&count)
	return count, err
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SellerID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Approved, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
