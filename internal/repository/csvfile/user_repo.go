package csvfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/JRossell27/Job-tracker/internal/domain"
)

// CredentialFile is the shared credential file name inside the data directory.
const CredentialFile = "users.csv"

const (
	colUser         = "User"
	colPasswordHash = "PasswordHash"
)

var credentialHeader = []string{colUser, colPasswordHash}

type userRepo struct {
	path string
	mu   sync.Mutex
}

func NewUserRepository(dir string) domain.UserRepository {
	return &userRepo{path: filepath.Join(dir, CredentialFile)}
}

func (r *userRepo) CredentialFile() string {
	return CredentialFile
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrUserNotFound
	}

	idx := t.colIndex()
	ui, uok := idx[colUser]
	hi, hok := idx[colPasswordHash]
	if !uok || !hok {
		return nil, domain.ErrUserNotFound
	}

	for _, row := range t.rows {
		if ui < len(row) && row[ui] == username {
			hash := ""
			if hi < len(row) {
				hash = row[hi]
			}
			return &domain.User{Username: username, PasswordHash: hash}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := readTable(r.path)
	if err != nil {
		return err
	}
	if t == nil {
		t = &table{header: credentialHeader}
	}

	idx := t.colIndex()
	if ui, ok := idx[colUser]; ok {
		for _, row := range t.rows {
			if ui < len(row) && row[ui] == user.Username {
				return domain.ErrUserExists
			}
		}
	}

	t.rows = append(t.rows, []string{user.Username, user.PasswordHash})
	return writeTable(r.path, t)
}
