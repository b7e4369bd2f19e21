package app

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"peersupport/api"
	"peersupport/auth"
	"peersupport/chat"
	"peersupport/config"
	"peersupport/database"
	"peersupport/forum"
	"peersupport/journal"
	"peersupport/models"
	"peersupport/postdetail"
	"peersupport/query"
	"peersupport/store"
	"peersupport/utils"
	"peersupport/volunteers"
)

// App encapsulates the client's state: the HTTP client, the stores, the
// query cache, the services, and the view state of the running session.
type App struct {
	DB      *sql.DB
	API     *api.Client
	Cache   *query.Cache
	Session *store.SessionStore
	Forums  *store.ForumStore

	Auth    *auth.Service
	Forum   *forum.Service
	Journal *journal.Service

	PageSize int
	ChatCfg  models.ChatConfig
	chatKey  string

	// View state. The REPL is single-threaded, so these are only touched
	// from command handlers.
	CurrentPost *postdetail.Controller
	EmotionFeed *volunteers.EmotionFeed
	Directory   *volunteers.DirectoryFeed
	ActiveFeed  string // "volunteers" or "directory", whichever paged last
	Chat        *chat.Session
}

// New creates and initializes a new App instance.
func New() (*App, error) {
	config.LoadConfig()
	utils.InitLogger()

	var apiCfg models.APIConfig
	if err := viper.UnmarshalKey("api", &apiCfg); err != nil {
		return nil, fmt.Errorf("invalid api configuration: %w", err)
	}
	if apiCfg.BaseURL == "" {
		return nil, fmt.Errorf("no api base_url configured; set api.base_url in config.yaml or API_BASE_URL in the environment")
	}

	db, err := database.InitDB(viper.GetString("db.path"))
	if err != nil {
		return nil, fmt.Errorf("error initializing local database: %w", err)
	}

	staleAfter := time.Duration(viper.GetInt("refresh.stale_minutes")) * time.Minute
	cache := query.NewCache(staleAfter)

	session := store.NewSessionStore(database.NewSessionDB(db))
	session.Hydrate()

	forumStore := store.NewForumStore(cache)
	client := api.NewClient(apiCfg.BaseURL, time.Duration(apiCfg.Timeout)*time.Second)

	var chatCfg models.ChatConfig
	if err := viper.UnmarshalKey("chat", &chatCfg); err != nil {
		return nil, fmt.Errorf("invalid chat configuration: %w", err)
	}

	return &App{
		DB:       db,
		API:      client,
		Cache:    cache,
		Session:  session,
		Forums:   forumStore,
		Auth:     auth.NewService(client, session, forumStore, cache),
		Forum:    forum.NewService(client, session, forumStore, cache),
		Journal:  journal.NewService(database.NewJournalDB(db), session),
		PageSize: apiCfg.PageSize,
		ChatCfg:  chatCfg,
		chatKey:  viper.GetString("CHAT_API_KEY"),
	}, nil
}

// OpenPost scopes the detail view state to one post.
func (a *App) OpenPost(postID int64) *postdetail.Controller {
	a.CurrentPost = postdetail.NewController(a.API, a.Session, a.Forums, a.Cache, postID)
	return a.CurrentPost
}

// StartChat opens an AI chat session about the given concern.
func (a *App) StartChat(concern string) *chat.Session {
	a.Chat = chat.NewSession(a.ChatCfg, a.chatKey, concern)
	return a.Chat
}

// ResetView discards per-screen state. Called on logout.
func (a *App) ResetView() {
	a.CurrentPost = nil
	a.EmotionFeed = nil
	a.Directory = nil
	a.ActiveFeed = ""
	a.Chat = nil
}

// Start begins background work.
func (a *App) Start() {
	startScheduler(a)
}

// Stop gracefully shuts the app down.
func (a *App) Stop() {
	stopScheduler()
	if a.DB != nil {
		a.DB.Close()
	}
	utils.Sync()
	fmt.Println("Goodbye. Take care of yourself.")
}

// Run is the main entry point for the client. dispatch handles one input
// line and reports whether the loop should continue.
func Run(dispatch func(a *App, line string) bool) {
	a, err := New()
	if err != nil {
		log.Fatalf("Error initializing app: %v", err)
	}

	a.Start()
	defer a.Stop()

	// Exit cleanly on CTRL-C even while waiting for input.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-sc
		a.Stop()
		os.Exit(0)
	}()

	fmt.Println("Welcome. Type 'help' to see what you can do.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !dispatch(a, line) {
			return
		}
	}
}
