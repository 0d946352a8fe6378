// Package web serves a read-only preview API over the enrichment
// internals: rule matching, document loading, section parsing and the
// session dedup record. It exists for debugging rule tables, not for the
// hook path, which never goes through HTTP.
package web

import (
	"github.com/gin-gonic/gin"

	"dochook/internal/docs"
	"dochook/internal/rules"
	"dochook/internal/session"
)

// Server is the dochook preview server
type Server struct {
	store    *docs.Store
	sessions session.Store
	table    []rules.Rule
	router   *gin.Engine
}

// NewServer creates a new preview server
func NewServer(store *docs.Store, sessions session.Store, table []rules.Rule) *Server {
	router := gin.Default()

	s := &Server{
		store:    store,
		sessions: sessions,
		table:    table,
		router:   router,
	}

	api := router.Group("/api")
	{
		api.GET("/match", s.handleMatch)
		api.GET("/rules", s.handleRules)
		api.GET("/docs", s.handleListDocs)
		api.GET("/doc", s.handleDoc)
		api.GET("/sections", s.handleSections)
		api.GET("/session/:id", s.handleSession)
		api.DELETE("/session/:id", s.handleClearSession)
	}

	return s
}

// Run starts the preview server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
