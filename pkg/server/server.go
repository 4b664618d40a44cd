package server

import (
	"github.com/enb/bemfront/internal/builder"
	"github.com/enb/bemfront/internal/server"
	"github.com/enb/bemfront/pkg/config"
)

type Server interface {
	Start(withBuilder bool) error
}

func NewServer(cfg *config.Configuration, rootFolder string, port string, override404 string) Server {
	return server.NewServer(builder.NewBuilder(cfg, rootFolder), port, override404)
}
