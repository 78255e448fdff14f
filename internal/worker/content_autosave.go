package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// AutosaveActor is recorded on content_persisted events raised by the scheduler.
var AutosaveActor = domain.Identity{ID: "autosave", Name: "Content Autosave", Role: domain.RoleAdmin}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ContentPersister is the part of the content registry the autosave job drives.
type ContentPersister interface {
	Dirty() bool
	Persist(ctx context.Context, actor domain.Identity) error
}

// ContentAutosave periodically writes unsaved site content to the content store.
type ContentAutosave struct {
	sched   *cron.Cron
	content ContentPersister
	logger  *zap.Logger
	timeout time.Duration
}

// StartContentAutosave schedules the job. An empty spec disables autosave and returns nil.
func StartContentAutosave(spec string, content ContentPersister, logger *zap.Logger) (*ContentAutosave, error) {
	if spec == "" {
		return nil, nil
	}
	a := &ContentAutosave{
		sched:   cron.New(cron.WithParser(cronParser)),
		content: content,
		logger:  logger,
		timeout: 10 * time.Second,
	}
	if _, err := a.sched.AddFunc(spec, a.Run); err != nil {
		return nil, err
	}
	a.sched.Start()
	logger.Info("content autosave scheduled", zap.String("spec", spec))
	return a, nil
}

// Run persists the content when it changed since the last save.
func (a *ContentAutosave) Run() {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("content autosave panicked", zap.Any("panic", r))
		}
	}()
	if !a.content.Dirty() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	if err := a.content.Persist(ctx, AutosaveActor); err != nil {
		a.logger.Error("content autosave failed", zap.Error(err))
		return
	}
	a.logger.Info("content autosaved")
}

// Stop halts the scheduler and waits for a running job.
func (a *ContentAutosave) Stop() {
	if a == nil {
		return
	}
	<-a.sched.Stop().Done()
}
