package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/config"
	"github.com/dmitrijs2005/ecotracker/internal/logging"
	"github.com/dmitrijs2005/ecotracker/internal/models"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/session"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/users"
	"github.com/dmitrijs2005/ecotracker/internal/services"
	"github.com/dmitrijs2005/ecotracker/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the store, services and the interactive loop together.
// current caches the logged-in user record for prompt/status display; the
// persisted session slot stays the source of truth.
type App struct {
	config     *config.Config
	log        logging.Logger
	db         *sql.DB
	users      *services.UserService
	sessions   *services.SessionService
	activities *services.ActivityService
	current    *models.User
	reader     *bufio.Reader
}

// NewApp opens the local database, runs migrations, and builds the service
// graph. The returned App owns the database handle; call Close when done.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	userRepo := users.NewSQLiteRepository(db)
	sessionRepo := session.NewSQLiteRepository(db)

	return &App{
		config:     c,
		log:        log,
		db:         db,
		users:      services.NewUserService(userRepo),
		sessions:   services.NewSessionService(sessionRepo, userRepo),
		activities: services.NewActivityService(db),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

// restoreSession resolves the persisted session slot so a restarted program
// comes back logged in. A missing or dangling slot just means logged out.
func (a *App) restoreSession(ctx context.Context) {
	user, err := a.sessions.Current(ctx)
	if err != nil {
		return
	}
	a.current = user
	printlnFn(fmt.Sprintf("Welcome back, %s! You have %d EcoPoints.", user.Name, user.EcoPoints))
	a.maybeCongratulate(user.EcoPoints)
}

// maybeCongratulate prints the reward banner once the lifetime total passes
// the threshold.
func (a *App) maybeCongratulate(points int) {
	if points >= common.RewardThreshold {
		printlnFn(fmt.Sprintf("🎉 Congratulations, %s! You've reached %d+ EcoPoints! Keep up the amazing work! 🏆",
			a.current.Name, common.RewardThreshold))
	}
}

// Run restores the session and starts the interactive loop. It returns when
// the user exits or input reaches EOF.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to EcoTracker (type 'help' for commands)")
	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s %dp)", a.current.Email, a.current.EcoPoints)
}
