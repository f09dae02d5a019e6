package candidate

import "context"

// Repository は候補者永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, c *Candidate) (*Candidate, error)
	Update(ctx context.Context, c *Candidate) (*Candidate, error)
	FindByID(ctx context.Context, id string) (*Candidate, error)
	// FindByIDForUpdate は行ロックを取得して候補者を読み込みます。トランザクション内で呼び出してください。
	FindByIDForUpdate(ctx context.Context, id string) (*Candidate, error)
	List(ctx context.Context, filter ListCandidatesFilter) ([]*Candidate, string, error)
}

// ListCandidatesFilter は一覧取得用フィルタです。
type ListCandidatesFilter struct {
	Status *Status
	// Search は氏名・カナ・国籍の部分一致です。
	Search *string
	Limit  int
	Offset int
}
