package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/matchvision/internal/domain/fixture"
	"github.com/riskibarqy/matchvision/internal/domain/league"
	"github.com/riskibarqy/matchvision/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchvision/internal/domain/news"
	"github.com/riskibarqy/matchvision/internal/domain/player"
	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/viewmodel"
)

// Dependencies are the shared collaborators of every screen the API renders.
type Dependencies struct {
	Queue     *dispatch.Queue
	Leagues   league.Repository
	Fixtures  fixture.Repository
	Standings leaguestanding.Repository
	Players   player.Repository
	News      news.Repository
	Identity  user.Identity
	Profiles  user.ProfileStore
	// Session is the process-wide signed-in session.
	Session *viewmodel.Session
	Logger  *logging.Logger
	Now     func() time.Time
}

type Handler struct {
	queue     *dispatch.Queue
	leagues   league.Repository
	fixtures  fixture.Repository
	standings leaguestanding.Repository
	players   player.Repository
	news      news.Repository
	identity  user.Identity
	profiles  user.ProfileStore
	logger    *logging.Logger
	validator *validator.Validate
	now       func() time.Time

	// sessionMu serializes session actions so each request observes the
	// outcome of its own action.
	sessionMu sync.Mutex
	session   *viewmodel.Session
}

func NewHandler(deps Dependencies) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Handler{
		queue:     deps.Queue,
		leagues:   deps.Leagues,
		fixtures:  deps.Fixtures,
		standings: deps.Standings,
		players:   deps.Players,
		news:      deps.News,
		identity:  deps.Identity,
		profiles:  deps.Profiles,
		session:   deps.Session,
		logger:    logger.Named("httpapi"),
		validator: validator.New(),
		now:       now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// screenView is the part of a view-model a handler drives.
type screenView[S any] interface {
	Wait()
	Snapshot() S
}

// settle waits for the screen's loads and returns its final state.
func settle[S any](vm screenView[S]) S {
	vm.Wait()
	return vm.Snapshot()
}
