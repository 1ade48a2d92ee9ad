// Package app wires repositories, usecases and the HTTP server together.
package app

import (
	"taskbridge/config"
	convrepo "taskbridge/internal/conversation/repository"
	convusecase "taskbridge/internal/conversation/usecase"
	"taskbridge/internal/job"
	jobrepo "taskbridge/internal/job/repository"
	jobusecase "taskbridge/internal/job/usecase"
	proposalrepo "taskbridge/internal/proposal/repository"
	proposalusecase "taskbridge/internal/proposal/usecase"
	reviewrepo "taskbridge/internal/review/repository"
	reviewusecase "taskbridge/internal/review/usecase"
	"taskbridge/internal/server"
	"taskbridge/internal/store"
	userrepo "taskbridge/internal/user/repository"
	userusecase "taskbridge/internal/user/usecase"
	"taskbridge/pkg/logger"

	"github.com/uptrace/bun"
)

type App struct {
	Users         *userusecase.UserUsecase
	Conversations *convusecase.ConversationUsecase
	Proposals     *proposalusecase.ProposalUsecase
	Jobs          *jobusecase.JobUsecase
	Reviews       *reviewusecase.ReviewUsecase
	Server        *server.Server
}

func New(cfg *config.Config, db *bun.DB, log logger.Logger) *App {
	tx := store.NewTransactor(db)

	users := userrepo.NewUserRepository(db, log)
	conversations := convrepo.NewConversationRepository(db, log)
	proposals := proposalrepo.NewProposalRepository(db, log)
	jobs := jobrepo.NewJobRepository(db, log)
	reviews := reviewrepo.NewReviewRepository(db, log)

	ledger := convusecase.NewMessageLedger(conversations, tx, cfg.Marketplace.PreviewLength)
	narrator := convusecase.NewNarrator(ledger, log)
	materializer := jobusecase.NewMaterializer(jobs, conversations, job.StaticCategory(cfg.Marketplace.DefaultCategory), tx)

	a := &App{
		Users:         userusecase.NewUserUsecase(users, log),
		Conversations: convusecase.NewConversationUsecase(conversations, ledger, tx, log),
		Proposals:     proposalusecase.NewProposalUsecase(proposals, conversations, ledger, materializer, narrator, tx, log),
		Jobs:          jobusecase.NewJobUsecase(jobs, narrator, tx, log),
		Reviews:       reviewusecase.NewReviewUsecase(reviews, jobs, users, narrator, tx, cfg.Marketplace.ReviewWindow(), log),
	}
	a.Server = server.New(cfg, server.Usecases{
		Users:         a.Users,
		Conversations: a.Conversations,
		Proposals:     a.Proposals,
		Jobs:          a.Jobs,
		Reviews:       a.Reviews,
	}, log)
	return a
}
