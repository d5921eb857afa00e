package cmd

import (
	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/config"
	"github.com/ludexhq/ludex/internal/log"
	"github.com/ludexhq/ludex/internal/session"
)

// runtime is the wired client stack for one command invocation: config,
// logger, session store and service, and the API client with the request
// authorizer installed as its transport.
type runtime struct {
	cfg        config.Config
	logger     *log.Logger
	store      *session.Store
	sessions   *session.Service
	authorizer *api.Authorizer
	client     *api.Client
}

// newRuntime loads configuration and wires the stack. The authorizer's
// navigator is left unset; interactive commands install one before starting
// the TUI, non-interactive ones rely on the returned error alone.
func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	rt := &runtime{cfg: cfg, logger: logger}

	rt.store, err = session.NewStore(cfg.SessionFile())
	if err != nil {
		// The store degrades to anonymous on a bad file; keep going.
		logger.Warn("session state unreadable, starting anonymous", "error", err)
	}

	rt.authorizer = api.NewAuthorizer(nil, rt.store,
		api.InvalidateFunc(func() { rt.sessions.Invalidate() }), nil)

	rt.client = api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.Timeout),
		api.WithTransport(rt.authorizer),
		api.WithLogger(logger))

	rt.sessions = session.NewService(rt.store, rt.client, logger)

	return rt, nil
}
