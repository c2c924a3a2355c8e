package learnpath

import (
	"context"
	"log/slog"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/observability/logging"
	"ai-toolkit/internal/observability/metrics"
)

// Generator builds learning paths. It holds no state and is safe for
// concurrent use.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate validates req and returns the matching path with the request's
// level and time commitment echoed back.
func (g *Generator) Generate(ctx context.Context, req Request) (*entity.LearningPath, error) {
	req, err := req.normalize()
	if err != nil {
		return nil, err
	}

	template := selectTemplate(req.Goal)
	var path *entity.LearningPath
	switch template {
	case TemplateWeb:
		path = webPath(req.TimeCommitment)
	case TemplateData:
		path = dataPath(req.TimeCommitment)
	default:
		path = customPath(req.Goal, req.TimeCommitment)
	}
	path.Level = string(req.Level)
	path.TimeCommitment = string(req.TimeCommitment)

	metrics.RecordLearningPathGenerated(template)
	logging.WithRequestID(ctx, slog.Default()).Info("learning path generated",
		slog.String("template", template),
		slog.String("level", path.Level),
		slog.String("time_commitment", path.TimeCommitment),
		slog.Int("steps", len(path.Steps)))

	return path, nil
}
