package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/designlint/designlint/internal/domain"
)

// GitInfoAdapter implements domain.GitInfo using go-git. Exported design
// documents usually live in a token repository; the commit hash ties an
// audit entry to the document revision it ran against.
type GitInfoAdapter struct{}

var _ domain.GitInfo = (*GitInfoAdapter)(nil)

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
