package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"riskradar/internal/content"
	"riskradar/internal/model"
	"riskradar/internal/repository"
	"riskradar/internal/scoring"
)

// TableProvider supplies the active table for a pathway.
type TableProvider interface {
	GetTable(ctx context.Context, pathway model.Pathway) (*model.PathwayTable, error)
}

// AssessmentService runs the full pipeline: score the answers against the
// pathway's weight table, derive the behavioral signals, generate the report
// content, and persist the result.
type AssessmentService struct {
	tables  TableProvider
	reports repository.ReportRepo
	engine  *scoring.Engine
	now     func() time.Time
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(tables TableProvider, reports repository.ReportRepo, engine *scoring.Engine) *AssessmentService {
	if engine == nil {
		engine = scoring.NewEngine(log.Default())
	}
	return &AssessmentService{
		tables:  tables,
		reports: reports,
		engine:  engine,
		now:     time.Now,
	}
}

// Evaluate computes the full report for an answer set. The computation
// itself is synchronous and pure; only table retrieval and persistence touch
// the outside world.
func (s *AssessmentService) Evaluate(ctx context.Context, pathway model.Pathway, answers map[string]string) (*model.Report, error) {
	if !pathway.Valid() {
		return nil, fmt.Errorf("unknown pathway %q", pathway)
	}

	table, err := s.tables.GetTable(ctx, pathway)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}

	result := s.engine.Score(answers, table.Weights)
	analysis := scoring.Analyze(answers, result)

	report := &model.Report{
		Pathway:               pathway,
		RiskLevel:             result.RiskLevel,
		Confidence:            confidence(len(result.MatchedWeights)),
		OverallRiskPercentage: result.OverallRiskPercentage,
		RiskBreakdown:         result.BreakdownMap(),
		Analysis:              analysis,
		ReportContent:         content.Generate(pathway, result.RiskLevel, result, analysis),
		Meta: model.ReportMeta{
			Source:            pathway,
			Score:             result.OverallRiskPercentage,
			GeneratedAt:       s.now().UTC(),
			TotalQuestions:    len(table.Questions),
			AnsweredQuestions: len(answers),
		},
	}

	if s.reports != nil {
		id, err := s.reports.Create(ctx, report)
		if err != nil {
			return nil, fmt.Errorf("store report: %w", err)
		}
		report.ID = id
	}

	log.Printf("assessment: %s scored %d%% (%s), matched %d/%d answers",
		pathway, result.OverallRiskPercentage, result.RiskLevel,
		len(result.MatchedWeights), len(answers))
	return report, nil
}

// GetByID retrieves a stored report.
func (s *AssessmentService) GetByID(ctx context.Context, id string) (*model.Report, error) {
	return s.reports.GetByID(ctx, id)
}

// ListByPathway retrieves recent reports for a pathway.
func (s *AssessmentService) ListByPathway(ctx context.Context, pathway model.Pathway, limit int64) ([]*model.Report, error) {
	return s.reports.ListByPathway(ctx, pathway, limit)
}

// confidence grows with the number of matched weight entries, capped at 95.
func confidence(matched int) int {
	c := 70 + matched*3
	if c > 95 {
		return 95
	}
	return c
}
