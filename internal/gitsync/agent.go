// Package gitsync commits tracker data files to the local git working copy
// and pushes them to a configured remote.
package gitsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/JRossell27/Job-tracker/internal/domain"
)

// MarkerFile is rewritten with a timestamp on every enabled sync attempt so
// the staging step always has a detectable change to consider.
const MarkerFile = "last_synced.txt"

// Config carries the agent's settings. Token, Identity, and one of Repo or
// RemoteURL must all be present for sync to be enabled.
type Config struct {
	// RepoPath is the git working copy holding the tracker files.
	RepoPath string
	// Token authenticates the push; it rides on each push call and is never
	// written into the repository's remote configuration.
	Token    string
	Identity string
	// Repo is the owner/name remote identifier on github.com.
	Repo string
	// RemoteURL, when set, overrides the URL derived from Repo.
	RemoteURL string
}

type Agent struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) *Agent {
	if cfg.RemoteURL == "" && cfg.Repo != "" {
		cfg.RemoteURL = fmt.Sprintf("https://github.com/%s.git", strings.TrimSuffix(cfg.Repo, ".git"))
	}
	return &Agent{cfg: cfg, now: time.Now}
}

// Enabled reports whether all required sync settings are present.
func (a *Agent) Enabled() bool {
	return a.cfg.Token != "" && a.cfg.Identity != "" && a.cfg.RemoteURL != ""
}

// Sync stages the given files (paths relative to the working copy) together
// with the sync marker, commits when any of them changed, and pushes. With
// incomplete settings it is a no-op that performs no write at all. Any
// staging, commit, or push failure is returned as-is; there is no retry.
func (a *Agent) Sync(ctx context.Context, files ...string) (domain.SyncOutcome, error) {
	if !a.Enabled() {
		return domain.SyncDisabled, nil
	}

	stamp := a.now().Format(time.DateTime)
	marker := filepath.Join(a.cfg.RepoPath, MarkerFile)
	if err := os.WriteFile(marker, []byte(fmt.Sprintf("Last synced: %s\n", stamp)), 0o644); err != nil {
		return "", fmt.Errorf("write sync marker: %w", err)
	}

	repo, err := git.PlainOpen(a.cfg.RepoPath)
	if err != nil {
		return "", fmt.Errorf("open working copy %s: %w", a.cfg.RepoPath, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	staged := append([]string{MarkerFile}, files...)
	for _, f := range staged {
		if _, err := wt.Add(f); err != nil {
			return "", fmt.Errorf("stage %s: %w", f, err)
		}
	}

	status, err := wt.Status()
	if err != nil {
		return "", err
	}
	// Only the staged files decide cleanliness. Unrelated files living in the
	// same directory (other users' trackers, scratch files) must neither force
	// a commit nor trip an empty-commit error.
	dirty := false
	for _, f := range staged {
		if fs, ok := status[f]; ok && fs.Staging != git.Unmodified {
			dirty = true
			break
		}
	}
	if !dirty {
		return domain.SyncClean, nil
	}

	_, err = wt.Commit(fmt.Sprintf("Job tracker updated %s", stamp), &git.CommitOptions{
		Author: &object.Signature{
			Name:  a.cfg.Identity,
			Email: fmt.Sprintf("%s@users.noreply.github.com", a.cfg.Identity),
			When:  a.now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	if err := a.push(ctx, repo); err != nil {
		return "", fmt.Errorf("push: %w", err)
	}
	return domain.SyncPushed, nil
}

func (a *Agent) push(ctx context.Context, repo *git.Repository) error {
	// The origin remote is created on first use with the credential-free URL.
	if _, err := repo.Remote(git.DefaultRemoteName); errors.Is(err, git.ErrRemoteNotFound) {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: git.DefaultRemoteName,
			URLs: []string{a.cfg.RemoteURL},
		})
		if err != nil {
			return err
		}
	}

	opts := &git.PushOptions{
		RemoteName: git.DefaultRemoteName,
		RemoteURL:  a.cfg.RemoteURL,
		RefSpecs:   []gitconfig.RefSpec{"refs/heads/*:refs/heads/*"},
	}
	if strings.HasPrefix(a.cfg.RemoteURL, "http") {
		// Credentials are injected per push only; the stored remote
		// configuration never carries the token.
		opts.Auth = &githttp.BasicAuth{Username: a.cfg.Identity, Password: a.cfg.Token}
	}

	if err := repo.PushContext(ctx, opts); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return err
	}
	return nil
}
