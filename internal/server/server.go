// Package server exposes the engine to the dashboard over HTTP. It is
// a thin boundary: every response is derived from a fresh recomputation
// and the only state kept here is the recent snapshot-diff event feed.
package server

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/healthguard/vigil/internal/config"
	"github.com/healthguard/vigil/internal/core"
	"github.com/healthguard/vigil/internal/core/model"
)

// maxEvents bounds the in-memory snapshot-diff feed.
const maxEvents = 100

type Server struct {
	cfg    *config.Config
	engine *core.Engine
	log    *zap.Logger

	mu     sync.Mutex
	last   *core.Snapshot
	events []core.SnapshotDiff
	posts  []model.PostRecord
}

func New(cfg *config.Config, engine *core.Engine, log *zap.Logger) *Server {
	return &Server{cfg: cfg, engine: engine, log: log}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/edges", s.AddEdges)
	r.GET("/graph", s.GetGraph)
	r.GET("/spreaders", s.GetSpreaders)
	r.GET("/network", s.GetNetwork)
	r.GET("/layout", s.GetLayout)
	r.GET("/snapshot", s.GetSnapshot)
	r.GET("/events", s.GetEvents)
	r.POST("/posts", s.AddPosts)
	r.GET("/posts", s.ListPosts)
	r.POST("/posts/score", s.ScorePost)
	r.POST("/posts/score/batch", s.ScorePosts)
	r.GET("/report/summary", s.GetSummaryReport)

	return r
}

// recordSnapshot appends the diff against the previously recorded
// snapshot to the event feed. No-change recomputations emit nothing.
func (s *Server) recordSnapshot(snap core.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil {
		diff := core.Diff(*s.last, snap)
		if !diff.Empty() {
			s.events = append(s.events, diff)
			if len(s.events) > maxEvents {
				s.events = s.events[len(s.events)-maxEvents:]
			}
		}
	}
	s.last = &snap
}

// Track scores posts and adds them to the tracked set the summary
// report is built over. Used by the ingestion preload and /posts.
func (s *Server) Track(posts []model.PostRecord) {
	if len(posts) == 0 {
		return
	}
	scored := s.engine.ScorePosts(posts)
	s.mu.Lock()
	s.posts = append(s.posts, scored...)
	s.mu.Unlock()
}

func (s *Server) trackedPosts() []model.PostRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PostRecord, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *Server) recentEvents() []core.SnapshotDiff {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.SnapshotDiff, len(s.events))
	copy(out, s.events)
	return out
}

// httpStatus maps engine errors onto response codes: bad input is the
// caller's problem, everything else is ours.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidEdge),
		errors.Is(err, model.ErrInvalidParameter),
		errors.Is(err, model.ErrUnsupportedLayout):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
