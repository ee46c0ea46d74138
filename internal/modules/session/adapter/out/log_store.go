package out

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/session/domain"
	sessionout "tempo/internal/modules/session/port/out"
	"tempo/internal/platform/slug"

	"gopkg.in/yaml.v3"
)

// FileSessionLogStore writes one markdown note per finished session,
// bucketed by date under the logs directory.
type FileSessionLogStore struct {
	logsPath string
}

func NewFileSessionLogStore(logsPath string) sessionout.SessionLogStore {
	return &FileSessionLogStore{logsPath: logsPath}
}

func (s *FileSessionLogStore) Save(_ context.Context, log domain.SessionLog) (string, error) {
	date := log.EndedAt
	dir := filepath.Join(s.logsPath, date.Format("2006"), date.Format("01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s.md", date.Format("02"), date.Format("150405"), slug.Make(log.Label))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             log.ID,
		"day":            log.DayKey,
		"label":          log.Label,
		"started_at":     log.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		"ended_at":       log.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
		"study_seconds":  log.StudySeconds,
		"break_seconds":  log.BreakSeconds,
		"goal_progress":  log.GoalProgress,
		"daily_goal":     log.DailyGoal,
	}
	front, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal log frontmatter: %w", err)
	}

	buf := bytes.Buffer{}
	buf.WriteString("---\n")
	buf.Write(front)
	buf.WriteString("---\n\n")
	fmt.Fprintf(&buf, "# Session %s\n\n- Studied: %dm %ds\n- Breaks: %dm %ds\n- Goal: %d/%d seconds\n",
		log.DayKey,
		log.StudySeconds/60, log.StudySeconds%60,
		log.BreakSeconds/60, log.BreakSeconds%60,
		log.GoalProgress, log.DailyGoal,
	)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write session log: %w", err)
	}
	return path, nil
}
