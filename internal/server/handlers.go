package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/healthguard/vigil/internal/core"
	"github.com/healthguard/vigil/internal/core/graphbuild"
	"github.com/healthguard/vigil/internal/core/layout"
	"github.com/healthguard/vigil/internal/core/model"
	"github.com/healthguard/vigil/internal/core/netfilter"
	"github.com/healthguard/vigil/internal/report"
)

type graphView struct {
	Nodes []string             `json:"nodes"`
	Edges []model.WeightedEdge `json:"edges"`
}

func viewOf(g model.Graph) graphView {
	return graphView{Nodes: g.Nodes(), Edges: g.Edges()}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type addEdgesRequest struct {
	Edges []model.InteractionEdge `json:"edges"`
}

// AddEdges appends interaction rows to the store. Bad rows are skipped
// and reported back; the valid ones still land, after which a snapshot
// is recomputed so the event feed sees the change.
func (s *Server) AddEdges(c *gin.Context) {
	var req addEdgesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Edges) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no edges provided"})
		return
	}

	rejected := s.engine.Store.AppendBatch(req.Edges)
	reasons := make([]string, 0, len(rejected))
	for _, err := range rejected {
		reasons = append(reasons, err.Error())
	}

	snap, err := s.engine.Recompute(core.DefaultRecomputeParams())
	if err != nil {
		s.log.Warn("recompute after edge append failed", zap.Error(err))
	} else {
		s.recordSnapshot(snap)
	}

	c.JSON(http.StatusOK, gin.H{
		"accepted": len(req.Edges) - len(rejected),
		"rejected": reasons,
	})
}

func (s *Server) GetGraph(c *gin.Context) {
	g, err := graphbuild.Build(s.engine.Store.Edges())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(g))
}

func (s *Server) GetSpreaders(c *gin.Context) {
	topN, err := intQuery(c, "top_n", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := graphbuild.Build(s.engine.Store.Edges())
	if err != nil {
		s.fail(c, err)
		return
	}

	rankings, err := s.engine.Ranker.Rank(g, topN)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spreaders": rankings})
}

func (s *Server) GetNetwork(c *gin.Context) {
	minConnections, err := intQuery(c, "min_connections", 2)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := graphbuild.Build(s.engine.Store.Edges())
	if err != nil {
		s.fail(c, err)
		return
	}

	filtered, stats, err := netfilter.Apply(g, minConnections)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph": viewOf(filtered), "stats": stats})
}

func (s *Server) GetLayout(c *gin.Context) {
	algo, err := layout.ParseAlgorithm(c.DefaultQuery("algorithm", string(layout.ForceDirected)))
	if err != nil {
		s.fail(c, err)
		return
	}

	opts := layout.Options{Iterations: s.iterationsFor(algo)}
	if raw, ok := c.GetQuery("seed"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		opts.Seed = layout.Seed(seed)
	}

	g, err := graphbuild.Build(s.engine.Store.Edges())
	if err != nil {
		s.fail(c, err)
		return
	}

	positions, err := layout.Compute(g, algo, opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"algorithm": algo, "positions": positions})
}

func (s *Server) GetSnapshot(c *gin.Context) {
	params, err := s.recomputeParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := s.engine.Recompute(params)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.recordSnapshot(snap)

	c.JSON(http.StatusOK, gin.H{
		"id":        snap.ID,
		"timestamp": snap.Timestamp,
		"params":    snap.Params,
		"graph":     viewOf(snap.Graph),
		"filtered":  viewOf(snap.Filtered),
		"rankings":  snap.Rankings,
		"stats":     snap.Stats,
		"positions": snap.Positions,
	})
}

func (s *Server) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": s.recentEvents()})
}

func (s *Server) ScorePost(c *gin.Context) {
	var post model.PostRecord
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if post.PostID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_id is required"})
		return
	}
	c.JSON(http.StatusOK, s.engine.ScorePost(post))
}

type scorePostsRequest struct {
	Posts []model.PostRecord `json:"posts"`
}

func (s *Server) ScorePosts(c *gin.Context) {
	var req scorePostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": s.engine.ScorePosts(req.Posts)})
}

// AddPosts scores the submitted posts and adds them to the tracked
// set, so they show up in the summary report and /posts.
func (s *Server) AddPosts(c *gin.Context) {
	var req scorePostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Posts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no posts provided"})
		return
	}
	s.Track(req.Posts)
	c.JSON(http.StatusOK, gin.H{"tracked": len(req.Posts)})
}

func (s *Server) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": s.trackedPosts()})
}

func (s *Server) GetSummaryReport(c *gin.Context) {
	params, err := s.recomputeParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := s.engine.Recompute(params)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.String(http.StatusOK, report.Summary(snap, s.trackedPosts(), time.Now().UTC()))
}

// recomputeParams folds the optional query knobs over the defaults.
func (s *Server) recomputeParams(c *gin.Context) (core.RecomputeParams, error) {
	params := core.DefaultRecomputeParams()

	var err error
	if params.TopN, err = intQuery(c, "top_n", params.TopN); err != nil {
		return core.RecomputeParams{}, err
	}
	if params.MinConnections, err = intQuery(c, "min_connections", params.MinConnections); err != nil {
		return core.RecomputeParams{}, err
	}

	if raw, ok := c.GetQuery("algorithm"); ok {
		if params.Algorithm, err = layout.ParseAlgorithm(raw); err != nil {
			return core.RecomputeParams{}, err
		}
	}
	if raw, ok := c.GetQuery("seed"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return core.RecomputeParams{}, fmt.Errorf("seed must be an integer")
		}
		params.Seed = layout.Seed(seed)
	}

	params.Iterations = s.iterationsFor(params.Algorithm)
	return params, nil
}

// iterationsFor applies the configured iteration budgets per algorithm.
func (s *Server) iterationsFor(algo layout.Algorithm) int {
	switch algo {
	case layout.ForceDirected:
		return s.cfg.Layout.ForceIterations
	case layout.StressMajorization:
		return s.cfg.Layout.StressIterations
	default:
		return 0
	}
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
