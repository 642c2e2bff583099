package setup

import (
	"time"

	"github.com/suraksha-dev/suraksha/internal/aiclient"
	"github.com/suraksha-dev/suraksha/internal/handler"
	"github.com/suraksha-dev/suraksha/internal/render"
	"github.com/suraksha-dev/suraksha/internal/seed"
	"github.com/suraksha-dev/suraksha/internal/service"
	"github.com/suraksha-dev/suraksha/internal/storage"
	"github.com/suraksha-dev/suraksha/internal/storage/fs"
	"github.com/suraksha-dev/suraksha/internal/storage/pg"
	"github.com/suraksha-dev/suraksha/internal/utils"
	"github.com/suraksha-dev/suraksha/shared/config"
	"github.com/suraksha-dev/suraksha/shared/jwt"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Store   *storage.Store
	Handler *handler.Handler
	Jwt     jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the
// application. The slot backend is postgres when configured, files on
// disk otherwise; an empty store gets the bundled seed content.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	var backend storage.Backend
	var err error
	if cfg.Public.UsePg {
		backend, err = pg.New(cfg)
	} else {
		backend, err = fs.New(cfg.Public.StorePath)
	}
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(backend)
	if err != nil {
		return nil, err
	}
	if err := store.Seed(seed.Forums()); err != nil {
		return nil, err
	}

	users := storage.NewUsers()
	if err := seed.Users(users); err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	notifications := service.NewNotifications()

	auth := service.NewAuth(users, jwtService)
	forum := service.NewForum(store, utils.New())
	post := service.NewPost(store, &utils.PostValidator{}, notifications)
	vote := service.NewVote(store)
	assistant := service.NewAssistant(aiclient.New(
		cfg.Private.GeminiApiKey,
		cfg.Public.AssistantModel,
		cfg.Public.AssistantTimeout*time.Second,
	))

	h := handler.New(auth, forum, post, vote, notifications, assistant, render.New(), cfg)

	return &Dependencies{
		Config:  cfg,
		Store:   store,
		Handler: h,
		Jwt:     jwtService,
	}, nil
}
