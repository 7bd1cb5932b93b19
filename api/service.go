package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/Drolfothesgnir/m4tags/tmpstore"
	"github.com/Drolfothesgnir/m4tags/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	PingURL      = "/ping"
	KindsURL     = "/kinds"
	ScanURL      = "/scan"
	FilesURL     = "/files"
	FileTagsURL  = "/files/tags"
	FindTagsURL  = "/tags"
	defaultLimit = 20
)

var (
	// api errors
	ErrInvalidParams     = errors.New("invalid parameters")
	ErrContentTooLarge   = errors.New("content is too large")
	ErrFileNotFound      = errors.New("file not found")
	ErrInternal          = errors.New("internal error")
	ErrPersistenceFailed = errors.New("cannot store the tags")
)

type Service struct {
	config util.Config
	store  db.Store
	cache  tmpstore.Store
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config, tag store and scan cache.
func NewService(
	config util.Config,
	store db.Store,
	cache tmpstore.Store,
) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	if err := registerValidators(); err != nil {
		return nil, err
	}

	service := &Service{
		config: config,
		store:  store,
		cache:  cache,
	}

	server := &http.Server{
		Addr: addr,
	}

	// uploads are capped by MAX_UPLOAD_SIZE, a few seconds is plenty to read one
	server.ReadHeaderTimeout = 5 * time.Second
	server.ReadTimeout = 10 * time.Second
	server.WriteTimeout = 15 * time.Second
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
