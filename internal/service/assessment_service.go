package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/cache"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/repository"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/scoring"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrNoAnswers          = errors.New("assessment has no answers")
	ErrNotCalculated      = errors.New("assessment has not been calculated yet")
)

// AnalyzeRequest carries the fetched provider data for a deep
// analysis run. All fields are optional; whatever is present gets
// categorized and folded into the recalculated result.
type AnalyzeRequest struct {
	EmailThreads   []model.EmailThread   `json:"emailThreads,omitempty"`
	CalendarEvents []model.CalendarEvent `json:"calendarEvents,omitempty"`
	RawMetrics     *model.RawMetrics     `json:"rawMetrics,omitempty"`
}

// AssessmentService orchestrates the funnel: submission, scoring,
// deep analysis, and the post-scoring lead pipeline
type AssessmentService struct {
	repo     repository.AssessmentRepo
	sessions cache.SessionCache
	analyzer *AnalyzerService
	crm      *CRMService
	email    *EmailService
	notifier Notifier
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	repo repository.AssessmentRepo,
	sessions cache.SessionCache,
	analyzer *AnalyzerService,
	crm *CRMService,
	email *EmailService,
) *AssessmentService {
	return &AssessmentService{
		repo:     repo,
		sessions: sessions,
		analyzer: analyzer,
		crm:      crm,
		email:    email,
		notifier: noopNotifier{},
	}
}

// SetNotifier attaches the WebSocket hub after construction
func (s *AssessmentService) SetNotifier(n Notifier) {
	if n != nil {
		s.notifier = n
	}
}

// Submit stores a new assessment, scores it from answers alone, and
// kicks off the lead pipeline. Deep analysis can upgrade the result
// later via Analyze.
func (s *AssessmentService) Submit(ctx context.Context, answers model.AssessmentAnswers) (*model.Assessment, *model.AssessmentSession, error) {
	if len(answers) == 0 {
		return nil, nil, ErrNoAnswers
	}

	result := scoring.Calculate(scoring.Input{
		Mode:    model.ModeAnswersOnly,
		Answers: answers,
	})

	assessment := &model.Assessment{
		ID:      uuid.New().String(),
		Answers: answers,
		Mode:    model.ModeAnswersOnly,
		Result:  &result,
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, nil, err
	}

	session := &model.AssessmentSession{
		ID:           uuid.New().String(),
		AssessmentID: assessment.ID,
		Answers:      answers,
		Result:       &result,
		CreatedAt:    time.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		// The assessment is persisted; a dead session only costs the
		// respondent a reload
		log.Printf("[ASSESSMENT] session store failed for %s: %v", assessment.ID, err)
	}

	go s.pushLead(assessment)

	return assessment, session, nil
}

// Analyze runs the deep-analysis path: categorize the provider data,
// recompute the result, and persist both
func (s *AssessmentService) Analyze(ctx context.Context, id string, req AnalyzeRequest) (*model.Assessment, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	s.notifier.NotifyProgress(id, "categorizing_email", 10)
	emailSignals := s.analyzer.CategorizeEmails(ctx, req.EmailThreads)

	s.notifier.NotifyProgress(id, "categorizing_calendar", 45)
	meetingSignals := s.analyzer.CategorizeMeetings(ctx, req.CalendarEvents)

	s.notifier.NotifyProgress(id, "synthesizing_solutions", 70)
	solutions := s.analyzer.SynthesizeSolutions(ctx, emailSignals, meetingSignals)

	s.notifier.NotifyProgress(id, "calculating", 90)
	result := scoring.Calculate(scoring.Input{
		Mode:           model.ModeDeepAnalysis,
		Answers:        assessment.Answers,
		EmailSignals:   emailSignals,
		MeetingSignals: meetingSignals,
		RawMetrics:     req.RawMetrics,
		Solutions:      solutions,
	})

	assessment.Mode = model.ModeDeepAnalysis
	assessment.EmailSignals = emailSignals
	assessment.MeetingSignals = meetingSignals
	assessment.RawMetrics = req.RawMetrics
	assessment.Solutions = solutions
	assessment.Result = &result

	if err := s.repo.UpdateSignals(ctx, assessment); err != nil {
		s.notifier.NotifyError(id, "failed to save analysis")
		return nil, err
	}

	s.notifier.NotifyComplete(id)
	return assessment, nil
}

// Recalculate re-runs the engine over the stored inputs, including any
// synthesized solutions, so the rebuilt result matches what Analyze
// stored. Used by the admin dashboard after scoring changes.
func (s *AssessmentService) Recalculate(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	result := scoring.Calculate(scoring.Input{
		Mode:           assessment.Mode,
		Answers:        assessment.Answers,
		EmailSignals:   assessment.EmailSignals,
		MeetingSignals: assessment.MeetingSignals,
		RawMetrics:     assessment.RawMetrics,
		Solutions:      assessment.Solutions,
	})
	assessment.Result = &result

	if err := s.repo.UpdateResult(ctx, id, &result); err != nil {
		return nil, err
	}
	return assessment, nil
}

// Get returns one assessment by id
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// Results returns a calculated assessment plus its stage
func (s *AssessmentService) Results(ctx context.Context, id string) (*model.Assessment, model.Stage, error) {
	assessment, err := s.Get(ctx, id)
	if err != nil {
		return nil, model.Stage{}, err
	}
	if assessment.Result == nil {
		return nil, model.Stage{}, ErrNotCalculated
	}
	return assessment, scoring.StageForScore(float64(assessment.Result.Score)), nil
}

// Delete permanently removes an assessment
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if assessment == nil {
		return ErrAssessmentNotFound
	}
	return s.repo.Delete(ctx, id)
}

// List returns recent assessments for the admin dashboard
func (s *AssessmentService) List(ctx context.Context, limit int64) ([]*model.Assessment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, limit)
}

// pushLead sends the CRM row and the results email. Runs detached
// from the request so funnel latency never depends on third parties.
func (s *AssessmentService) pushLead(assessment *model.Assessment) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	email := assessment.Answers.Email()
	if email == "" || assessment.Result == nil {
		return
	}

	stage := scoring.StageForScore(float64(assessment.Result.Score))
	lead := &model.Lead{
		Name:         assessment.Answers.Name(),
		Email:        email,
		Score:        assessment.Result.Score,
		StageName:    stage.Name,
		StageEmoji:   stage.Emoji,
		RevenueRange: assessment.Answers.RevenueRange(),
	}

	if err := s.crm.CreateLead(ctx, lead); err != nil {
		log.Printf("[ASSESSMENT] CRM push failed for %s: %v", assessment.ID, err)
	}
	if err := s.email.SendResults(ctx, email, lead.Name, assessment.Result, stage); err != nil {
		log.Printf("[ASSESSMENT] results email failed for %s: %v", assessment.ID, err)
	}
}
