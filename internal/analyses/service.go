package analyses

import (
	"go.uber.org/zap"

	"resume-ats/internal/i18n"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/resume/model"
)

// Report is a scored résumé with everything the score panel shows.
type Report struct {
	Result
	Locale          i18n.Locale      `json:"locale"`
	Band            Band             `json:"band"`
	Recommendation  string           `json:"recommendation"`
	Recommendations []Recommendation `json:"recommendations"`
	Explanation     ScoreExplanation `json:"explanation"`
}

// Service contains the scoring entry point used by the HTTP API and the CLI.
type Service struct {
	logger *zap.Logger
}

// NewService constructs a Service. A nil logger discards output.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: telemetry.OrNop(logger)}
}

// Score runs the assessment and decorates it for loc. The score itself never depends on loc.
func (s *Service) Score(r model.Resume, loc i18n.Locale) Report {
	if !loc.Valid() {
		loc = i18n.Default
	}
	res := Analyze(r)
	metrics.IncScoreComputed(res.Score)

	report := Report{
		Result:          res,
		Locale:          loc,
		Band:            BandFor(res.Score),
		Recommendation:  RecommendationText(res.Score, loc),
		Recommendations: buildRecommendations(res),
		Explanation:     Explain(res.Findings),
	}
	s.logger.Debug("score.computed",
		zap.Int("score", res.Score),
		zap.String("band", string(report.Band)),
		zap.Int("findings", len(res.Findings)),
		zap.Int("keywords", len(res.Keywords)),
		zap.String("locale", loc.String()),
	)
	return report
}

// Keywords returns the reference keyword list in match order.
func (s *Service) Keywords() []string {
	return ReferenceKeywords()
}
