package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
)

// ErrDuplicateUsername is returned by Create when the unique constraint on
// account.username rejects the insert. The service pre-checks uniqueness, but
// the constraint is the authoritative enforcement point under concurrency.
var ErrDuplicateUsername = errors.New("username already exists")

const uniqueViolation = "23505"

// AccountRepository persists accounts in PostgreSQL. Lookups return
// (nil, nil) when no row matches: absence is a normal outcome, not an error.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByUsername(username string) (*models.Account, error) {
	query := `
		SELECT account_id, username, password
		FROM account
		WHERE username = $1
	`
	var account models.Account
	err := r.db.QueryRow(query, username).Scan(&account.ID, &account.Username, &account.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) FindByID(id int64) (*models.Account, error) {
	query := `
		SELECT account_id, username, password
		FROM account
		WHERE account_id = $1
	`
	var account models.Account
	err := r.db.QueryRow(query, id).Scan(&account.ID, &account.Username, &account.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// Create inserts the account and returns it with the store-assigned id.
func (r *AccountRepository) Create(account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO account (username, password)
		VALUES ($1, $2)
		RETURNING account_id
	`
	err := r.db.QueryRow(query, account.Username, account.Password).Scan(&account.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Exists(id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM account WHERE account_id = $1)`
	var exists bool
	if err := r.db.QueryRow(query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}
