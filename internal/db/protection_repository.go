package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/blocklock/internal/access"
	"github.com/udisondev/blocklock/internal/model"
)

// DateLayout is the format of Protection.Created for loaded rows.
const DateLayout = "2006-01-02 15:04:05"

const protectionColumns = `id, block_id, owner, type, world, x, y, z, data, flags, date`

// ProtectionRepository provides database access for the protections table.
// Every stored attribute of model.Protection maps to one column.
type ProtectionRepository struct {
	pool       *pgxpool.Pool
	secretCost int // bcrypt cost for SetPassword; <= 0 means access.DefaultCost
}

// NewProtectionRepository creates a new ProtectionRepository. secretCost is
// the bcrypt cost used by SetPassword.
func NewProtectionRepository(pool *pgxpool.Pool, secretCost int) *ProtectionRepository {
	return &ProtectionRepository{pool: pool, secretCost: secretCost}
}

// scanProtection fills a fresh record through its setters.
func scanProtection(row pgx.Row) (*model.Protection, error) {
	var (
		id, blockID, kind, x, y, z int32
		owner, world, data         string
		flags                      int64
		date                       time.Time
	)
	if err := row.Scan(&id, &blockID, &owner, &kind, &world, &x, &y, &z, &data, &flags, &date); err != nil {
		return nil, err
	}

	p := &model.Protection{}
	p.SetID(id)
	p.SetBlockID(blockID)
	p.SetOwner(owner)
	p.SetKind(model.Kind(kind))
	p.SetWorld(world)
	p.SetX(x)
	p.SetY(y)
	p.SetZ(z)
	p.SetSecret(data)
	p.SetFlags(uint32(flags))
	p.SetCreated(date.Format(DateLayout))
	return p, nil
}

func (r *ProtectionRepository) queryOne(ctx context.Context, what string, sql string, args ...any) (*model.Protection, error) {
	p, err := scanProtection(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying protection %s: %w", what, err)
	}
	return p, nil
}

func (r *ProtectionRepository) queryMany(ctx context.Context, what string, sql string, args ...any) ([]*model.Protection, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query protections %s: %w", what, err)
	}
	defer rows.Close()

	var result []*model.Protection
	for rows.Next() {
		p, err := scanProtection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan protection: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// LoadByID returns the protection with the given id.
// Returns nil, nil if it does not exist.
func (r *ProtectionRepository) LoadByID(ctx context.Context, id int32) (*model.Protection, error) {
	return r.queryOne(ctx, fmt.Sprintf("id=%d", id),
		`SELECT `+protectionColumns+` FROM protections WHERE id = $1`, id)
}

// LoadAt returns the protection on the given block.
// Returns nil, nil if the block is not protected.
func (r *ProtectionRepository) LoadAt(ctx context.Context, pos model.BlockPos) (*model.Protection, error) {
	return r.queryOne(ctx, "at "+pos.String(),
		`SELECT `+protectionColumns+` FROM protections
		 WHERE world = $1 AND x = $2 AND y = $3 AND z = $4`,
		pos.World, pos.X, pos.Y, pos.Z)
}

// LoadByWorld returns every protection in a world ordered by id.
func (r *ProtectionRepository) LoadByWorld(ctx context.Context, world string) ([]*model.Protection, error) {
	return r.queryMany(ctx, "in world "+world,
		`SELECT `+protectionColumns+` FROM protections WHERE world = $1 ORDER BY id`, world)
}

// LoadByOwner returns every protection of an owner ordered by id.
// Owner names compare case-insensitively.
func (r *ProtectionRepository) LoadByOwner(ctx context.Context, owner string) ([]*model.Protection, error) {
	return r.queryMany(ctx, "of "+owner,
		`SELECT `+protectionColumns+` FROM protections WHERE LOWER(owner) = LOWER($1) ORDER BY id`, owner)
}

// Worlds returns the distinct worlds that hold at least one protection.
func (r *ProtectionRepository) Worlds(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT world FROM protections ORDER BY world`)
	if err != nil {
		return nil, fmt.Errorf("query worlds: %w", err)
	}
	defer rows.Close()

	var worlds []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan world: %w", err)
		}
		worlds = append(worlds, w)
	}
	return worlds, rows.Err()
}

// Create inserts p and assigns the generated id to it.
// A creation date already set on p (DateLayout) is stored as is; an empty one
// is filled with the database time. Any other format is rejected.
func (r *ProtectionRepository) Create(ctx context.Context, p *model.Protection) error {
	var created *time.Time
	if p.Created() != "" {
		t, err := time.Parse(DateLayout, p.Created())
		if err != nil {
			return fmt.Errorf("insert protection at %s: creation date %q: %w", p.Block(), p.Created(), err)
		}
		created = &t
	}

	var (
		id   int32
		date time.Time
	)
	err := r.pool.QueryRow(ctx,
		`INSERT INTO protections (block_id, owner, type, world, x, y, z, data, flags, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10::timestamp, NOW()))
		 RETURNING id, date`,
		p.BlockID(), p.Owner(), int32(p.Kind()), p.World(), p.X(), p.Y(), p.Z(),
		p.Secret(), int64(p.Flags()), created,
	).Scan(&id, &date)
	if err != nil {
		return fmt.Errorf("insert protection at %s: %w", p.Block(), err)
	}

	p.SetID(id)
	p.SetCreated(date.Format(DateLayout))
	slog.Debug("protection created", "protection_id", id, "owner", p.Owner(), "block", p.Block().String())
	return nil
}

// SetFlag turns f on or off for p and writes the flags column only when the
// bit actually changed. Returns whether a write happened. On a failed write
// the in-memory flags are restored.
func (r *ProtectionRepository) SetFlag(ctx context.Context, p *model.Protection, f model.Flag, on bool) (bool, error) {
	before := p.Flags()

	if on {
		if !p.AddFlag(f) {
			return false, nil
		}
	} else {
		if !p.HasFlag(f) {
			return false, nil
		}
		p.RemoveFlag(f)
	}

	if err := r.updateColumn(ctx, p.ID(), "flags", int64(p.Flags())); err != nil {
		p.SetFlags(before)
		return false, err
	}
	return true, nil
}

// UpdateOwner transfers p to owner.
func (r *ProtectionRepository) UpdateOwner(ctx context.Context, p *model.Protection, owner string) error {
	if err := r.updateColumn(ctx, p.ID(), "owner", owner); err != nil {
		return err
	}
	p.SetOwner(owner)
	return nil
}

// UpdateKind changes the access policy of p.
func (r *ProtectionRepository) UpdateKind(ctx context.Context, p *model.Protection, kind model.Kind) error {
	if err := r.updateColumn(ctx, p.ID(), "type", int32(kind)); err != nil {
		return err
	}
	p.SetKind(kind)
	return nil
}

// UpdateSecret stores new password material for p.
func (r *ProtectionRepository) UpdateSecret(ctx context.Context, p *model.Protection, secret string) error {
	if err := r.updateColumn(ctx, p.ID(), "data", secret); err != nil {
		return err
	}
	p.SetSecret(secret)
	return nil
}

// SetPassword hashes plain with the repository's bcrypt cost and stores the
// hash as the secret of p.
func (r *ProtectionRepository) SetPassword(ctx context.Context, p *model.Protection, plain string) error {
	hash, err := access.HashSecret(plain, r.secretCost)
	if err != nil {
		return fmt.Errorf("set password of protection %d: %w", p.ID(), err)
	}
	return r.UpdateSecret(ctx, p, hash)
}

// UpdateBlockID records the resolved block type of p.
func (r *ProtectionRepository) UpdateBlockID(ctx context.Context, p *model.Protection, blockID int32) error {
	if err := r.updateColumn(ctx, p.ID(), "block_id", blockID); err != nil {
		return err
	}
	p.SetBlockID(blockID)
	return nil
}

// column is always one of the constants passed by the Update methods above.
func (r *ProtectionRepository) updateColumn(ctx context.Context, id int32, column string, value any) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE protections SET `+column+` = $1 WHERE id = $2`, value, id)
	if err != nil {
		return fmt.Errorf("update protection %d %s: %w", id, column, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update protection %d %s: %w", id, column, ErrNotFound)
	}
	return nil
}

// Delete removes a protection by id. Deleting a missing id is not an error.
func (r *ProtectionRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM protections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete protection %d: %w", id, err)
	}
	return nil
}

// ErrNotFound is returned by updates that matched no row.
var ErrNotFound = errors.New("protection not found")
