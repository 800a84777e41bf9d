package port

import "context"

// FileChange is one changed file in a working tree.
type FileChange struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// RepoStatus summarizes a version-controlled working tree.
type RepoStatus struct {
	CurrentBranch string       `json:"current_branch"`
	Branches      []string     `json:"branches"`
	Staged        []FileChange `json:"staged"`
	Unstaged      []FileChange `json:"unstaged"`
}

// VersionControl is implemented by the host's VCS integration. The shell
// only routes UI commands to it; process shelling lives outside this
// module.
type VersionControl interface {
	Status(ctx context.Context, dir string) (RepoStatus, error)
	Stage(ctx context.Context, dir, file string) error
	Unstage(ctx context.Context, dir, file string) error
	Commit(ctx context.Context, dir, message string) error
	Push(ctx context.Context, dir string) error
	CheckoutBranch(ctx context.Context, dir, branch string) error
}
