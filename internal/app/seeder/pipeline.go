// Package seeder bootstraps a fresh content database with an administrator
// and the starter topics. Every phase is idempotent.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/topic"
)

const (
	PhaseAdmin  = "admin"
	PhaseTopics = "topics"
)

// allPhases defines the canonical execution order.
var allPhases = []string{PhaseAdmin, PhaseTopics}

// AdminCreator creates the first administrator.
type AdminCreator interface {
	InitAdmin(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
}

// TopicCreator lists and creates topics.
type TopicCreator interface {
	ListTopics(ctx context.Context, input topic.ListInput) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, input topic.CreateInput) (*domain.Topic, error)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	admins  AdminCreator
	topics  TopicCreator
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, admins AdminCreator, topics TopicCreator, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		admins:  admins,
		topics:  topics,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the requested phases in canonical order. An empty list runs
// every phase. Unknown phase names are rejected before anything runs.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	if len(phases) == 0 {
		phases = allPhases
	}
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("seeder: unknown phase %q", ph)
		}
	}

	for _, ph := range allPhases {
		if !slices.Contains(phases, ph) {
			continue
		}

		start := time.Now()
		var res PhaseResult
		switch ph {
		case PhaseAdmin:
			res = p.seedAdmin(ctx)
		case PhaseTopics:
			res = p.seedTopics(ctx)
		}
		res.Duration = time.Since(start)
		p.results[ph] = res

		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", ph),
			slog.Int("inserted", res.Inserted),
			slog.Int("skipped", res.Skipped),
			slog.Duration("duration", res.Duration),
		)
		if res.Err != nil {
			return fmt.Errorf("seeder: phase %s: %w", ph, res.Err)
		}
	}
	return nil
}

func (p *Pipeline) seedAdmin(ctx context.Context) PhaseResult {
	if p.cfg.AdminPassword == "" {
		return PhaseResult{Err: errors.New("ADMIN_PASSWORD is required")}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}

	fluent := domain.ProficiencyFluent
	result, err := p.admins.InitAdmin(ctx, auth.RegisterInput{
		Name:        p.cfg.AdminName,
		Email:       p.cfg.AdminEmail,
		Password:    p.cfg.AdminPassword,
		Proficiency: &fluent,
	})
	switch {
	case errors.Is(err, auth.ErrAdminExists):
		p.log.InfoContext(ctx, "admin already exists")
		return PhaseResult{Skipped: 1}
	case err != nil:
		return PhaseResult{Err: err}
	}

	p.log.InfoContext(ctx, "admin user created", slog.String("email", result.User.Email))
	return PhaseResult{Inserted: 1}
}

// seedTopics creates every sample topic whose English name is not taken.
// Names match after NormalizeText, so case and spacing differences collide.
func (p *Pipeline) seedTopics(ctx context.Context) PhaseResult {
	existing, err := p.topics.ListTopics(ctx, topic.ListInput{})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list topics: %w", err)}
	}
	taken := make(map[string]bool, len(existing))
	for _, t := range existing {
		taken[domain.NormalizeText(t.Name.En)] = true
	}

	var res PhaseResult
	for _, t := range sampleTopics() {
		if taken[domain.NormalizeText(t.Name.En)] || p.cfg.DryRun {
			res.Skipped++
			continue
		}
		if _, err := p.topics.CreateTopic(ctx, t); err != nil {
			res.Err = fmt.Errorf("create topic %q: %w", t.Name.En, err)
			return res
		}
		res.Inserted++
	}
	return res
}
