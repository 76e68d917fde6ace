package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// every repository works both standalone and inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repos bundles every repository over one Querier.
type Repos struct {
	Leads        *LeadRepository
	StageHistory *StageHistoryRepository
	Activities   *ActivityRepository
	LostReasons  *LostReasonRepository
	Organization *OrganizationInfoRepository
	Demos        *DemoDetailsRepository
	Proposals    *ProposalRepository
}

func NewRepos(q Querier) *Repos {
	return &Repos{
		Leads:        NewLeadRepository(q),
		StageHistory: NewStageHistoryRepository(q),
		Activities:   NewActivityRepository(q),
		LostReasons:  NewLostReasonRepository(q),
		Organization: NewOrganizationInfoRepository(q),
		Demos:        NewDemoDetailsRepository(q),
		Proposals:    NewProposalRepository(q),
	}
}

// Store exposes the repositories on the shared pool plus a transactional
// scope for multi-write operations.
type Store struct {
	*Repos
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{Repos: NewRepos(db), db: db}
}

// InTx runs fn with repositories bound to a single transaction. Any error
// from fn rolls everything back.
func (s *Store) InTx(ctx context.Context, fn func(r *Repos) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(NewRepos(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
