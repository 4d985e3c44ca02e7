package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/sharpdata/internal/adapter/storage"
	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

var orderColumns = []string{
	"o.id", "o.user_id", "o.status", "o.api_status", "o.reference_id", "o.network",
	"o.created_at", "o.updated_at", "u.id", "u.name", "u.phone",
}

func (or *Repository) selectOrders() sq.SelectBuilder {
	return or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders o").
		LeftJoin("users u ON u.id = o.user_id")
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order     domain.Order
		userID    *uint64
		apiStatus *string
		network   *string
		ownerID   *uint64
		ownerName *string
		phone     *string
	)

	err := row.Scan(
		&order.ID,
		&userID,
		&order.Status,
		&apiStatus,
		&order.ReferenceID,
		&network,
		&order.CreatedAt,
		&order.UpdatedAt,
		&ownerID,
		&ownerName,
		&phone,
	)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		order.UserID = *userID
	}
	if apiStatus != nil {
		order.APIStatus = domain.APIStatus(*apiStatus)
	}
	if network != nil {
		order.Network = *network
	}
	if ownerID != nil {
		order.User = &domain.User{ID: *ownerID, Phone: phone}
		if ownerName != nil {
			order.User.Name = *ownerName
		}
	}
	return &order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	sql, args, err := or.selectOrders().Where(sq.Eq{"o.id": orderID}).ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(or.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, fmt.Errorf("read order %d: %w", orderID, err)
	}

	order.Items, err = or.listOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (or *Repository) listOrderItems(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	statement := or.db.QueryBuilder.
		Select("op.id", "op.product_id", "p.name", "op.quantity", "op.price::text",
			"op.beneficiary_number", "pv.id", "pv.variant_attributes").
		From("order_product op").
		Join("products p ON p.id = op.product_id").
		LeftJoin("product_variants pv ON pv.id = op.product_variant_id").
		Where(sq.Eq{"op.order_id": orderID}).
		OrderBy("op.id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items of order %d: %w", orderID, err)
	}
	defer rows.Close()

	list := make([]*domain.OrderItem, 0)
	for rows.Next() {
		var (
			item        domain.OrderItem
			price       string
			beneficiary *string
			variantID   *uint64
			attributes  []byte
		)
		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&price,
			&beneficiary,
			&variantID,
			&attributes,
		)
		if err != nil {
			return nil, err
		}

		item.Price, err = decimal.Parse(price)
		if err != nil {
			return nil, fmt.Errorf("item %d price %q: %w", item.ID, price, err)
		}
		if beneficiary != nil {
			item.BeneficiaryNumber = *beneficiary
		}
		if variantID != nil {
			item.Variant = &domain.ProductVariant{ID: *variantID}
			if len(attributes) > 0 {
				if err := json.Unmarshal(attributes, &item.Variant.Attributes); err != nil {
					return nil, fmt.Errorf("variant %d attributes: %w", *variantID, err)
				}
			}
		}
		list = append(list, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (or *Repository) ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	sql, args, err := or.selectOrders().
		Where(sq.Eq{"o.status": values}).
		OrderBy("o.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (or *Repository) UpdateOrderReference(ctx context.Context, orderID uint64, referenceID string) error {
	return or.updateOrder(ctx, or.db.QueryBuilder.Update("orders").
		Set("reference_id", referenceID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID}))
}

func (or *Repository) UpdateOrderAPIStatus(ctx context.Context, orderID uint64, status domain.APIStatus) error {
	var value any
	if status != domain.APIStatusUnset {
		value = string(status)
	}
	return or.updateOrder(ctx, or.db.QueryBuilder.Update("orders").
		Set("api_status", value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID}))
}

func (or *Repository) updateOrder(ctx context.Context, statement sq.UpdateBuilder) error {
	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

// UpdateOrderStatus only writes when the stored status still equals from.
func (or *Repository) UpdateOrderStatus(ctx context.Context, orderID uint64, from, to domain.OrderStatus) (bool, error) {
	sql, args, err := or.db.QueryBuilder.Update("orders").
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%w: %s", domain.ErrBadRequest, pgErr.Message)
	}
	return err
}
