package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dochook/internal/docs"
	"dochook/internal/rules"
)

const maxQuerySize = 10 << 10 // 10KB

func (s *Server) handleMatch(c *gin.Context) {
	query := c.Query("q")

	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "q parameter required",
		})
		return
	}
	if len(query) > maxQuerySize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query exceeds maximum size of 10KB",
		})
		return
	}

	matched := rules.Match(query, s.table)
	refs := make([]string, 0, len(matched))
	for _, ref := range matched {
		refs = append(refs, ref.String())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"refs":    refs,
		"count":   len(refs),
	})
}

func (s *Server) handleRules(c *gin.Context) {
	type ruleView struct {
		Keywords []string `json:"keywords"`
		Doc      string   `json:"doc"`
	}

	views := make([]ruleView, 0, len(s.table))
	for _, r := range s.table {
		views = append(views, ruleView{Keywords: r.Keywords, Doc: r.Target.String()})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"rules":   views,
		"count":   len(views),
	})
}

func (s *Server) handleListDocs(c *gin.Context) {
	paths, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"docs":    paths,
		"count":   len(paths),
	})
}

func (s *Server) handleDoc(c *gin.Context) {
	relPath := c.Query("path")
	anchor := c.Query("anchor")

	if relPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "path parameter required",
		})
		return
	}

	lines, err := s.store.Load(relPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "document not found",
		})
		return
	}

	if anchor != "" {
		section, found := docs.Extract(lines, anchor, 0)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "section not found",
			})
			return
		}
		lines = section
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"path":    relPath,
		"anchor":  anchor,
		"lines":   lines,
		"count":   len(lines),
	})
}

func (s *Server) handleSections(c *gin.Context) {
	relPath := c.Query("path")
	if relPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "path parameter required",
		})
		return
	}

	lines, err := s.store.Load(relPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "document not found",
		})
		return
	}

	type sectionView struct {
		Level int    `json:"level"`
		Title string `json:"title"`
		Slug  string `json:"slug"`
		Start int    `json:"start"`
		End   int    `json:"end"`
	}

	parsed := docs.ParseSections(lines)
	views := make([]sectionView, 0, len(parsed))
	for _, sec := range parsed {
		views = append(views, sectionView{
			Level: sec.Level,
			Title: sec.Title,
			Slug:  sec.Slug,
			Start: sec.Start,
			End:   sec.End,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"path":     relPath,
		"sections": views,
		"count":    len(views),
	})
}

func (s *Server) handleSession(c *gin.Context) {
	id := c.Param("id")

	refs, err := s.sessions.Loaded(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": id,
		"loaded":  refs,
		"count":   len(refs),
	})
}

func (s *Server) handleClearSession(c *gin.Context) {
	id := c.Param("id")

	if err := s.sessions.Clear(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": id,
	})
}
