package deps

import (
	"github.com/hemadri138/veritas-project/config"
	"github.com/hemadri138/veritas-project/internal/db"
	"github.com/hemadri138/veritas-project/internal/repository"
	"github.com/pkg/errors"
)

type Dependencies struct {
	DB       *db.DB
	Users    *repository.UserRepo
	Claims   *repository.ClaimRepo
	Votes    *repository.VoteRepo
	Evidence *repository.EvidenceRepo
}

func New(cfg *config.Config) (*Dependencies, error) {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	pool := database.Pool()
	deps := Dependencies{
		DB:       database,
		Users:    repository.NewUserRepo(pool),
		Claims:   repository.NewClaimRepo(pool),
		Votes:    repository.NewVoteRepo(pool),
		Evidence: repository.NewEvidenceRepo(pool),
	}
	return &deps, nil
}

func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
