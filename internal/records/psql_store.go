package records

import (
	"context"
	"fmt"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const CreateTableSQL = `
CREATE TABLE IF NOT EXISTS personal_record
(
    exercise    VARCHAR PRIMARY KEY,
    weight_kg   DOUBLE PRECISION NOT NULL,
    reps        INTEGER NOT NULL DEFAULT 0,
    template_id VARCHAR NOT NULL DEFAULT '',
    updated_at  TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);`

type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) Migrate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.psql.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.db.Exec(ctx, CreateTableSQL); err != nil {
		return fmt.Errorf("create personal_record table: %w", err)
	}
	return nil
}

func (s *PsqlStore) Load(ctx context.Context) (_ Table, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.psql.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(ctx, `SELECT exercise, weight_kg, reps, template_id FROM personal_record;`)
	if err != nil {
		return nil, fmt.Errorf("query personal records: %w", err)
	}
	defer rows.Close()

	table := Table{}
	for rows.Next() {
		var (
			exercise string
			r        Record
		)
		if err := rows.Scan(&exercise, &r.WeightKg, &r.Reps, &r.TemplateID); err != nil {
			return nil, fmt.Errorf("scan personal record: %w", err)
		}
		table[exercise] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate personal records: %w", err)
	}

	return table, nil
}

// Save upserts every record of the table in a single transaction. Rows are
// never deleted since the table only ever grows.
func (s *PsqlStore) Save(ctx context.Context, table Table) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.psql.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for exercise, r := range table {
		batch.Queue(`
			INSERT INTO personal_record (exercise, weight_kg, reps, template_id, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (exercise) DO UPDATE
			SET weight_kg = EXCLUDED.weight_kg,
			    reps = EXCLUDED.reps,
			    template_id = EXCLUDED.template_id,
			    updated_at = now()
			WHERE personal_record.weight_kg <> EXCLUDED.weight_kg
			   OR personal_record.reps <> EXCLUDED.reps;`,
			exercise, r.WeightKg, r.Reps, r.TemplateID,
		)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert personal records: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit personal records: %w", err)
	}
	return nil
}
