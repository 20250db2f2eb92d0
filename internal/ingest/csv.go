// Package ingest reads the external CSV feeds (flagged posts and
// interaction edges) and validates every row before it can reach the
// engine. Malformed rows are skipped and logged, never repaired.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/healthguard/vigil/internal/core/graphbuild"
	"github.com/healthguard/vigil/internal/core/model"
)

// Timestamp layouts accepted in post feeds, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Loader struct {
	log *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	return &Loader{log: log}
}

// LoadEdgesFile reads an interaction edge feed shaped like
// network_edges.csv (source, target, weight). It returns the valid
// records and the number of skipped rows.
func (l *Loader) LoadEdgesFile(path string) ([]model.InteractionEdge, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open edge feed '%s': %w", path, err)
	}
	defer f.Close()
	return l.LoadEdges(f)
}

// LoadEdges parses an edge feed from a reader. The first row must be a
// header naming at least source, target and weight columns.
func (l *Loader) LoadEdges(r io.Reader) ([]model.InteractionEdge, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read edge feed header: %w", err)
	}
	col, err := columnIndex(header, "source", "target", "weight")
	if err != nil {
		return nil, 0, err
	}

	var edges []model.InteractionEdge
	skipped := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			l.log.Warn("unreadable edge row", zap.Int("line", line), zap.Error(err))
			continue
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(row[col["weight"]]), 64)
		if err != nil {
			skipped++
			l.log.Warn("bad edge weight", zap.Int("line", line), zap.String("value", row[col["weight"]]))
			continue
		}

		edge := model.InteractionEdge{
			Source: strings.TrimSpace(row[col["source"]]),
			Target: strings.TrimSpace(row[col["target"]]),
			Weight: weight,
		}
		if err := graphbuild.Validate(edge); err != nil {
			skipped++
			l.log.Warn("rejected edge row", zap.Int("line", line), zap.Error(err))
			continue
		}
		edges = append(edges, edge)
	}
	return edges, skipped, nil
}

// LoadPostsFile reads a post feed shaped like sample_posts.csv.
func (l *Loader) LoadPostsFile(path string) ([]model.PostRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open post feed '%s': %w", path, err)
	}
	defer f.Close()
	return l.LoadPosts(f)
}

// LoadPosts parses a post feed. Required columns: post_id, platform,
// category, timestamp, shares, likes, comments, status. Optional:
// user_id, username, content, views, archived, archive_url.
func (l *Loader) LoadPosts(r io.Reader) ([]model.PostRecord, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read post feed header: %w", err)
	}
	col, err := columnIndex(header,
		"post_id", "platform", "category", "timestamp",
		"shares", "likes", "comments", "status")
	if err != nil {
		return nil, 0, err
	}
	optional := optionalColumns(header, "user_id", "username", "content", "views", "archived", "archive_url")

	var posts []model.PostRecord
	skipped := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			l.log.Warn("unreadable post row", zap.Int("line", line), zap.Error(err))
			continue
		}

		post, err := l.parsePost(row, col, optional)
		if err != nil {
			skipped++
			l.log.Warn("rejected post row", zap.Int("line", line), zap.Error(err))
			continue
		}
		posts = append(posts, post)
	}
	return posts, skipped, nil
}

func (l *Loader) parsePost(row []string, col, optional map[string]int) (model.PostRecord, error) {
	ts, err := parseTimestamp(row[col["timestamp"]])
	if err != nil {
		return model.PostRecord{}, err
	}

	shares, err := parseCount(row[col["shares"]], "shares")
	if err != nil {
		return model.PostRecord{}, err
	}
	likes, err := parseCount(row[col["likes"]], "likes")
	if err != nil {
		return model.PostRecord{}, err
	}
	comments, err := parseCount(row[col["comments"]], "comments")
	if err != nil {
		return model.PostRecord{}, err
	}

	views := 0
	if idx, ok := optional["views"]; ok {
		if views, err = parseCount(row[idx], "views"); err != nil {
			return model.PostRecord{}, err
		}
	}

	status := model.VerificationStatus(strings.TrimSpace(row[col["status"]]))
	if !status.Valid() {
		return model.PostRecord{}, fmt.Errorf("unknown verification status %q", status)
	}

	postID := strings.TrimSpace(row[col["post_id"]])
	if postID == "" {
		return model.PostRecord{}, fmt.Errorf("empty post_id")
	}

	post := model.PostRecord{
		PostID:    postID,
		Platform:  strings.TrimSpace(row[col["platform"]]),
		Category:  strings.TrimSpace(row[col["category"]]),
		Timestamp: ts,
		Shares:    shares,
		Likes:     likes,
		Comments:  comments,
		Views:     views,
		Status:    status,
	}
	if idx, ok := optional["user_id"]; ok {
		post.UserID = strings.TrimSpace(row[idx])
	}
	if idx, ok := optional["username"]; ok {
		post.Username = strings.TrimSpace(row[idx])
	}
	if idx, ok := optional["content"]; ok {
		post.Content = row[idx]
	}
	if idx, ok := optional["archived"]; ok {
		post.Archived = strings.EqualFold(strings.TrimSpace(row[idx]), "true")
	}
	if idx, ok := optional["archive_url"]; ok {
		post.ArchiveURL = strings.TrimSpace(row[idx])
	}
	return post, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

func parseCount(value, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("bad %s count %q", field, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s count %d", field, n)
	}
	return n, nil
}

func columnIndex(header []string, required ...string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("feed header missing column %q", name)
		}
	}
	return col, nil
}

func optionalColumns(header []string, names ...string) map[string]int {
	col := make(map[string]int)
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		for _, want := range names {
			if normalized == want {
				col[want] = i
			}
		}
	}
	return col
}
