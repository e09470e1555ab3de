package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/domain"
	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Settlement runs in a serializable transaction; the
// conditional update on placements is the at-most-once enforcement point.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// GetPlacement returns the placement for (adID, websiteID), or nil when none exists.
func (r *LedgerRepository) GetPlacement(ctx context.Context, adID, websiteID int64) (*domain.Placement, error) {
	var p domain.Placement
	err := r.pool.QueryRow(ctx, `SELECT id, ad_id, website_id, approved, approved_at, confirmed, confirmed_at, created_at
        FROM placements WHERE ad_id = $1 AND website_id = $2`, adID, websiteID).
		Scan(&p.ID, &p.AdID, &p.WebsiteID, &p.Approved, &p.ApprovedAt, &p.Confirmed, &p.ConfirmedAt, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlacementCategories returns the categories chosen on a placement with
// each category's website owner resolved by join.
func (r *LedgerRepository) GetPlacementCategories(ctx context.Context, placementID int64) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT c.id, c.website_id, w.owner_id, c.name, c.visitor_min, c.visitor_max, c.created_at
        FROM placement_categories pc
        JOIN categories c ON c.id = pc.category_id
        JOIN websites w ON w.id = c.website_id
        WHERE pc.placement_id = $1
        ORDER BY c.id`, placementID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var c domain.Category
		err := row.Scan(&c.ID, &c.WebsiteID, &c.OwnerID, &c.Name, &c.VisitorMin, &c.VisitorMax, &c.CreatedAt)
		return c, err
	})
}

// ApprovePlacement marks a placement approved on behalf of moderation.
// Already-approved placements are left as they are; a missing placement is
// an error.
func (r *LedgerRepository) ApprovePlacement(ctx context.Context, adID, websiteID int64) error {
	ct, err := r.pool.Exec(ctx, `UPDATE placements SET approved = true, approved_at = COALESCE(approved_at, now())
        WHERE ad_id = $1 AND website_id = $2`, adID, websiteID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrPlacementNotFound
	}
	return nil
}

// CreatePayment inserts a pending payment row.
func (r *LedgerRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	return r.pool.QueryRow(ctx, `INSERT INTO payments
        (tx_ref, ad_id, website_id, web_owner_id, amount, currency, status, provider_txn_id, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
		p.TxRef, p.AdID, p.WebsiteID, p.WebOwnerID, p.Amount, p.Currency, p.Status, p.ProviderTxnID, p.CreatedAt, p.UpdatedAt).
		Scan(&p.ID)
}

// DeletePayment removes a payment by tx_ref. Compensating action for a
// failed checkout creation.
func (r *LedgerRepository) DeletePayment(ctx context.Context, txRef string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE tx_ref = $1`, txRef)
	return err
}

// GetPaymentByTxRef returns the payment for txRef, or nil when absent.
func (r *LedgerRepository) GetPaymentByTxRef(ctx context.Context, txRef string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.pool.QueryRow(ctx, `SELECT id, tx_ref, ad_id, website_id, web_owner_id, amount, currency, status, provider_txn_id, created_at, updated_at
        FROM payments WHERE tx_ref = $1`, txRef).
		Scan(&p.ID, &p.TxRef, &p.AdID, &p.WebsiteID, &p.WebOwnerID, &p.Amount, &p.Currency, &p.Status, &p.ProviderTxnID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPaymentFailed moves a pending payment to failed. A payment that
// already reached a terminal state is left untouched so a late failure
// signal can never clobber a successful settlement.
func (r *LedgerRepository) MarkPaymentFailed(ctx context.Context, txRef, providerTxnID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE payments SET status = $2, provider_txn_id = $3, updated_at = now()
        WHERE tx_ref = $1 AND status = $4`, txRef, domain.PaymentFailed, providerTxnID, domain.PaymentPending)
	return err
}

// Settle performs the multi-entity settlement for a verified payment:
// confirm the placement, attach the ad to each category's selected set,
// credit the owner's balance, create one delivery tracker per category and
// mark the payment successful. Everything runs inside one serializable
// transaction; any failure aborts the whole settlement.
func (r *LedgerRepository) Settle(ctx context.Context, params port.SettleParams) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock the placement and re-check the precondition
	var placementID int64
	var approved, confirmed bool
	err = tx.QueryRow(ctx, `SELECT id, approved, confirmed FROM placements
        WHERE ad_id = $1 AND website_id = $2 FOR UPDATE`, params.AdID, params.WebsiteID).
		Scan(&placementID, &approved, &confirmed)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrPlacementNotFound
	}
	if err != nil {
		return err
	}
	if confirmed {
		// a concurrent delivery of the same callback settled first
		return port.ErrConcurrentSettlementLost
	}
	if !approved {
		return port.ErrNotApproved
	}

	// re-validate categories; time has passed since initiation
	rows, err := tx.Query(ctx, `SELECT c.id, w.owner_id, c.visitor_max
        FROM placement_categories pc
        JOIN categories c ON c.id = pc.category_id
        JOIN websites w ON w.id = c.website_id
        WHERE pc.placement_id = $1 AND c.visitor_min IS NOT NULL AND c.visitor_max IS NOT NULL
        ORDER BY c.id
        FOR UPDATE OF c`, placementID)
	if err != nil {
		return err
	}
	type slot struct {
		categoryID int64
		ownerID    int64
		visitorMax int64
	}
	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (slot, error) {
		var s slot
		err := row.Scan(&s.categoryID, &s.ownerID, &s.visitorMax)
		return s, err
	})
	if err != nil {
		return err
	}
	var total int
	if err = tx.QueryRow(ctx, `SELECT count(*) FROM placement_categories WHERE placement_id = $1`, placementID).Scan(&total); err != nil {
		return err
	}
	if len(slots) == 0 || len(slots) != total {
		return port.ErrInvalidCategoryConfig
	}

	// conditional confirm: the at-most-once enforcement point
	ct, err := tx.Exec(ctx, `UPDATE placements SET confirmed = true, confirmed_at = now()
        WHERE id = $1 AND approved AND NOT confirmed`, placementID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrConcurrentSettlementLost
	}

	// attach the ad to each touched category's selected set
	for _, s := range slots {
		_, err = tx.Exec(ctx, `INSERT INTO category_ads (category_id, ad_id)
            VALUES ($1, $2) ON CONFLICT DO NOTHING`, s.categoryID, params.AdID)
		if err != nil {
			return err
		}
	}

	// credit the owner's balance
	_, err = tx.Exec(ctx, `INSERT INTO balances (owner_id, total_earnings, available_balance, updated_at)
        VALUES ($1, $2, $2, now())
        ON CONFLICT (owner_id) DO UPDATE SET
            total_earnings = balances.total_earnings + EXCLUDED.total_earnings,
            available_balance = balances.available_balance + EXCLUDED.available_balance,
            updated_at = now()`, params.OwnerID, params.Amount)
	if err != nil {
		return err
	}

	// one delivery tracker per category, the amount split evenly
	shares := domain.SplitEvenly(params.Amount, len(slots))
	var paymentID int64
	if err = tx.QueryRow(ctx, `SELECT id FROM payments WHERE tx_ref = $1 FOR UPDATE`, params.TxRef).Scan(&paymentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrPaymentNotFound
		}
		return err
	}
	for i, s := range slots {
		_, err = tx.Exec(ctx, `INSERT INTO trackers
            (payment_id, category_id, owner_id, amount, views_required, current_views, status, created_at)
            VALUES ($1,$2,$3,$4,$5,0,$6,now())`,
			paymentID, s.categoryID, params.OwnerID, shares[i], s.visitorMax, domain.TrackerPending)
		if err != nil {
			return err
		}
	}

	// terminal payment state; zero rows means a racing settlement won
	ct, err = tx.Exec(ctx, `UPDATE payments SET status = $2, provider_txn_id = $3, updated_at = now()
        WHERE id = $1 AND status = $4`, paymentID, domain.PaymentSuccessful, params.ProviderTxnID, domain.PaymentPending)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrConcurrentSettlementLost
	}
	return nil
}

// GetBalance returns the owner's balance. Owners without a row read as a
// zero balance rather than an error.
func (r *LedgerRepository) GetBalance(ctx context.Context, ownerID int64) (*domain.Balance, error) {
	var b domain.Balance
	err := r.pool.QueryRow(ctx, `SELECT owner_id, total_earnings, available_balance, updated_at
        FROM balances WHERE owner_id = $1`, ownerID).
		Scan(&b.OwnerID, &b.TotalEarnings, &b.AvailableBalance, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.Balance{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListTrackers returns all delivery trackers belonging to an owner.
func (r *LedgerRepository) ListTrackers(ctx context.Context, ownerID int64) ([]domain.Tracker, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, payment_id, category_id, owner_id, amount, views_required, current_views, status, created_at
        FROM trackers WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tracker, error) {
		var t domain.Tracker
		err := row.Scan(&t.ID, &t.PaymentID, &t.CategoryID, &t.OwnerID, &t.Amount, &t.ViewsRequired, &t.CurrentViews, &t.Status, &t.CreatedAt)
		return t, err
	})
}

// RecordView increments a tracker's view count. Status is untouched:
// payout eligibility is derived from the count, and status transitions
// belong to payout processing.
func (r *LedgerRepository) RecordView(ctx context.Context, trackerID int64) (*domain.Tracker, error) {
	var t domain.Tracker
	err := r.pool.QueryRow(ctx, `UPDATE trackers SET current_views = current_views + 1
        WHERE id = $1
        RETURNING id, payment_id, category_id, owner_id, amount, views_required, current_views, status, created_at`,
		trackerID).
		Scan(&t.ID, &t.PaymentID, &t.CategoryID, &t.OwnerID, &t.Amount, &t.ViewsRequired, &t.CurrentViews, &t.Status, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrTrackerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
