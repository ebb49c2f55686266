// Package reminder runs the daily sweep that warns members whose validity
// window is about to close.
package reminder

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Emizy/fitness-club-manager-api/internal/logger"
	"github.com/Emizy/fitness-club-manager-api/internal/membership"
)

// WindowDays is how far ahead the sweep looks for closing memberships.
const WindowDays = 3

// Mailer is the slice of the email service the scheduler needs.
type Mailer interface {
	SendMembershipExpiryReminder(ctx context.Context, to, name string, endDate time.Time) error
}

type Scheduler struct {
	memberships membership.Repository
	mailer      Mailer
	spec        string
	cron        *cron.Cron
}

func New(memberships membership.Repository, mailer Mailer, spec string) *Scheduler {
	return &Scheduler{
		memberships: memberships,
		mailer:      mailer,
		spec:        spec,
		cron:        cron.New(),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		if err := s.Run(context.Background()); err != nil {
			logger.Errorf("Expiry reminder sweep failed: %v", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	logger.Infof("Expiry reminder scheduler started with spec %q", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Run performs one sweep: every active membership ending within the next
// WindowDays gets a reminder queued.
func (s *Scheduler) Run(ctx context.Context) error {
	now := time.Now()
	expiring, err := s.memberships.ListExpiring(ctx, now, now.AddDate(0, 0, WindowDays))
	if err != nil {
		return err
	}

	for _, m := range expiring {
		if err := s.mailer.SendMembershipExpiryReminder(ctx, m.UserEmail, m.UserName, m.EndDate); err != nil {
			logger.Errorf("Failed to queue expiry reminder for %s: %v", m.UserEmail, err)
			continue
		}
		logger.Infof("Queued expiry reminder for membership %d (ends %s)", m.MembershipID, m.EndDate.Format("2006-01-02"))
	}

	logger.Infof("Expiry reminder sweep done, %d membership(s) notified", len(expiring))
	return nil
}
