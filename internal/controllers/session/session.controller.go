package sessionController

import (
	"context"
	"errors"
	"strings"
	appContext "toolcrib/internal/context"
	syncController "toolcrib/internal/controllers/sync"
	"toolcrib/internal/models"
	"toolcrib/internal/services"
	"toolcrib/internal/state"
	"toolcrib/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

const (
	LoginSucceededNotice  = "Login realizado com sucesso!"
	LoginFailedNotice     = "Erro ao fazer login"
	LoginOfflineNotice    = "Erro de conexão com o servidor"
	LogoutSucceededNotice = "Logout realizado com sucesso!"
	LogoutFailedNotice    = "Erro ao fazer logout"
)

type SessionController struct {
	api   *services.APIService
	sync  syncController.SyncControllerInterface
	store *state.Store
	log   logger.Logger
}

type SessionControllerInterface interface {
	Probe(ctx context.Context) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Current() *models.User
}

func New(
	services services.Service,
	sync syncController.SyncControllerInterface,
	store *state.Store,
) SessionControllerInterface {
	return &SessionController{
		api:   services.API,
		sync:  sync,
		store: store,
		log:   logger.New("sessionController"),
	}
}

// Probe restores an existing server session. Failure leaves the session
// empty without any notice.
func (sc *SessionController) Probe(ctx context.Context) error {
	ctx = appContext.WithTrace(ctx)
	log := sc.log.TraceFromContext(ctx).Function("Probe")

	sc.store.Dispatch(state.ProbeStarted{})

	user, err := sc.api.CurrentUser(ctx)
	if err != nil {
		sc.store.Dispatch(state.ProbeFinished{})
		log.Debug("no active session", "error", err)
		return err
	}

	sc.store.Dispatch(state.ProbeFinished{User: user})
	log.Info("session restored", "username", user.Username)

	_ = sc.sync.ReloadAll(ctx)
	return nil
}

func (sc *SessionController) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return syncController.ErrIncomplete
	}

	ctx = appContext.WithTrace(ctx)
	log := sc.log.TraceFromContext(ctx).Function("Login")

	sc.store.Dispatch(state.LoginStarted{})

	user, err := sc.api.Login(ctx, types.LoginRequest{Username: username, Password: password})
	if err != nil {
		sc.store.Dispatch(state.LoginFailed{})

		notice := LoginFailedNotice
		if errors.Is(err, services.ErrTransport) {
			notice = LoginOfflineNotice
		} else if message, ok := services.ServerMessage(err); ok {
			notice = message
		}
		sc.store.Dispatch(state.ErrorNoticed{Message: notice})

		return log.Err("login failed", err, "username", username)
	}

	sc.store.Dispatch(state.LoginSucceeded{User: user})
	sc.store.Dispatch(state.SuccessNoticed{Message: LoginSucceededNotice})
	log.Info("logged in", "username", user.Username, "permission", user.Permission)

	_ = sc.sync.ReloadAll(ctx)
	return nil
}

// Logout clears the local session whenever the server answered, whatever the
// status. When no response arrives the session stays in place.
func (sc *SessionController) Logout(ctx context.Context) error {
	ctx = appContext.WithTrace(ctx)
	log := sc.log.TraceFromContext(ctx).Function("Logout")

	err := sc.api.Logout(ctx)
	if errors.Is(err, services.ErrTransport) {
		sc.store.Dispatch(state.ErrorNoticed{Message: LogoutFailedNotice})
		return log.Err("logout failed, session kept", err)
	}
	if err != nil {
		log.Warn("logout rejected, clearing local session anyway", "error", err)
	}

	sc.store.Dispatch(state.SessionCleared{})
	sc.store.Dispatch(state.SuccessNoticed{Message: LogoutSucceededNotice})
	log.Info("logged out")
	return nil
}

func (sc *SessionController) Current() *models.User {
	return sc.store.Snapshot().User
}
