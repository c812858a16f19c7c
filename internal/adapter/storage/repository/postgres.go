package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/lcmanager/internal/adapter/storage"
	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const presetsTable = "filter_presets"

var presetColumns = []string{
	"name", "description", "criteria", "requested_amount::text", "portfolio_id", "created_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (pr *Repository) CreatePreset(ctx context.Context, preset *domain.Preset) (*domain.Preset, error) {
	criteria, err := json.Marshal(preset.Criteria)
	if err != nil {
		return nil, fmt.Errorf("error encoding criteria: %w", err)
	}

	statement := pr.db.QueryBuilder.Insert(presetsTable).
		Columns("name", "description", "criteria", "requested_amount", "portfolio_id", "created_at").
		Values(preset.Name, preset.Description, criteria, preset.RequestedAmount.String(),
			preset.PortfolioID, preset.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = pr.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return preset, nil
}

func (pr *Repository) ReadPreset(ctx context.Context, name string) (*domain.Preset, error) {
	statement := pr.db.QueryBuilder.
		Select(presetColumns...).
		From(presetsTable).
		Where(sq.Eq{"name": name})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	preset, err := scanPreset(pr.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return preset, nil
}

func (pr *Repository) ListPresets(ctx context.Context) ([]*domain.Preset, error) {
	statement := pr.db.QueryBuilder.
		Select(presetColumns...).
		From(presetsTable).
		OrderBy("created_at", "name")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := pr.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Preset, 0)
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, preset)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (pr *Repository) DeletePreset(ctx context.Context, name string) error {
	statement := pr.db.QueryBuilder.
		Delete(presetsTable).
		Where(sq.Eq{"name": name})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := pr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func scanPreset(row pgx.Row) (*domain.Preset, error) {
	preset := domain.Preset{}
	var criteria []byte
	var amount string

	err := row.Scan(
		&preset.Name,
		&preset.Description,
		&criteria,
		&amount,
		&preset.PortfolioID,
		&preset.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(criteria, &preset.Criteria); err != nil {
		return nil, fmt.Errorf("error decoding criteria of %s: %w", preset.Name, err)
	}
	preset.RequestedAmount, err = decimal.Parse(amount)
	if err != nil {
		return nil, fmt.Errorf("error decoding amount of %s: %w", preset.Name, err)
	}

	return &preset, nil
}
