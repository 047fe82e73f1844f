package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/htmlscan/batch"
	db "github.com/Drolfothesgnir/htmlscan/db/sqlc"
	"github.com/Drolfothesgnir/htmlscan/tmpstore"
	"github.com/Drolfothesgnir/htmlscan/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	AnalyzeURL = "/analyze"
	BatchesURL = "/batches"

	// name of the multipart field carrying the documents
	FilesFormField = "files"

	// response header carrying the id of the stored batch
	BatchIDHeader = "X-Batch-ID"
)

type Service struct {
	config     util.Config
	dispatcher *batch.Dispatcher
	store      db.Store
	cache      tmpstore.Store
	server     *http.Server
	router     *gin.Engine
}

// Returns new service instance with provided config, dispatcher and stores.
func NewService(
	config util.Config,
	dispatcher *batch.Dispatcher,
	store db.Store,
	cache tmpstore.Store,
) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	service := &Service{
		config:     config,
		dispatcher: dispatcher,
		store:      store,
		cache:      cache,
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// uploads of many documents take longer than regular requests.
	server.ReadTimeout = 30 * time.Second
	// caps time you'll spend writing the response
	server.WriteTimeout = 60 * time.Second
	// how long to keep idle keep-alive connections open.
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

func (service *Service) Addr() string {
	return service.server.Addr
}
