package main

import (
	"database/sql"
	"log"
	"net/http"
	"runtime/debug"

	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"miraBack/internal/config"
	"miraBack/internal/handlers"
	"miraBack/internal/repositories"
	"miraBack/internal/services"
	"miraBack/utils"
)

type application struct {
	errorLog   *log.Logger
	infoLog    *log.Logger
	db         *sql.DB
	redis      *redis.Client
	signingKey string

	wsManager *WebSocketManager

	userRepo *repositories.UserRepository

	messageService *services.MessageService

	userHandler         *handlers.UserHandler
	missionHandler      *handlers.MissionHandler
	postulationHandler  *handlers.PostulationHandler
	avisHandler         *handlers.AvisHandler
	messageHandler      *handlers.MessageHandler
	postHandler         *handlers.PostHandler
	followHandler       *handlers.FollowHandler
	notificationHandler *handlers.NotificationHandler
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		return nil, err
	}
	storage, err := utils.NewStorage(utils.StorageConfig{
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		return nil, err
	}

	wsManager := NewWebSocketManager()

	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	missionRepo := &repositories.MissionRepository{DB: db}
	postulationRepo := &repositories.PostulationRepository{DB: db}
	avisRepo := &repositories.AvisRepository{DB: db}
	messageRepo := &repositories.MessageRepository{Db: db}
	postRepo := &repositories.PostRepository{DB: db}
	followRepo := &repositories.FollowRepository{DB: db}
	deviceTokenRepo := &repositories.DeviceTokenRepository{DB: db}

	// Services
	notificationService := &services.NotificationService{Client: fcmClient, TokenRepo: deviceTokenRepo}
	userService := &services.UserService{
		UserRepo:     userRepo,
		TokenManager: tokenManager,
		Storage:      storage,
		SigningKey:   cfg.JWT.SigningKey,
	}
	missionService := &services.MissionService{MissionRepo: missionRepo, Events: wsManager}
	postulationService := &services.PostulationService{
		PostulationRepo: postulationRepo,
		MissionRepo:     missionRepo,
		Events:          wsManager,
		Notifier:        notificationService,
	}
	avisService := &services.AvisService{
		AvisRepo:        avisRepo,
		MissionRepo:     missionRepo,
		PostulationRepo: postulationRepo,
		Events:          wsManager,
		Notifier:        notificationService,
	}
	messageService := &services.MessageService{
		MessageRepo:     messageRepo,
		MissionRepo:     missionRepo,
		PostulationRepo: postulationRepo,
		Notifier:        notificationService,
	}
	postService := &services.PostService{PostRepo: postRepo, Storage: storage}
	followService := &services.FollowService{FollowRepo: followRepo}

	return &application{
		errorLog:   errorLog,
		infoLog:    infoLog,
		db:         db,
		redis:      rdb,
		signingKey: cfg.JWT.SigningKey,
		wsManager:  wsManager,

		userRepo:       userRepo,
		messageService: messageService,

		userHandler:         &handlers.UserHandler{Service: userService},
		missionHandler:      &handlers.MissionHandler{Service: missionService},
		postulationHandler:  &handlers.PostulationHandler{Service: postulationService},
		avisHandler:         &handlers.AvisHandler{Service: avisService},
		messageHandler:      &handlers.MessageHandler{Service: messageService},
		postHandler:         &handlers.PostHandler{Service: postService},
		followHandler:       &handlers.FollowHandler{Service: followService},
		notificationHandler: &handlers.NotificationHandler{Service: notificationService},
	}, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Printf("%s\n%s", err.Error(), debug.Stack())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
