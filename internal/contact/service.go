package contact

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/praisepoint/site-api/internal/contact/model"
	"github.com/praisepoint/site-api/internal/contact/validator"
	"github.com/praisepoint/site-api/internal/system/utils"
)

// CRMSink delivers a validated submission to the CRM form-ingestion endpoint
type CRMSink interface {
	Deliver(ctx context.Context, submission *model.ContactSubmission) error
}

// MailSink sends the internal notification email for a submission
type MailSink interface {
	Notify(ctx context.Context, submission *model.ContactSubmission) error
}

// ContactService defines the exported service interface
type ContactService interface {
	Submit(ctx context.Context, submission *model.ContactSubmission) map[string]string
}

// contactService implements the ContactService interface
type contactService struct {
	crm    CRMSink
	mail   MailSink
	logger *logrus.Logger
}

// NewService creates a new contact service with its two delivery sinks
func NewService(crm CRMSink, mail MailSink, logger *logrus.Logger) ContactService {
	return &contactService{
		crm:    crm,
		mail:   mail,
		logger: logger,
	}
}

// Submit validates the payload and, on success, attempts delivery to both
// sinks. Validation is the only hard failure path: a non-empty error map
// means no downstream call was made. Sink failures are logged and swallowed;
// user-facing success must not depend on third-party availability.
func (s *contactService) Submit(ctx context.Context, submission *model.ContactSubmission) map[string]string {
	if errors := validator.ValidateSubmission(submission); len(errors) > 0 {
		return errors
	}

	submissionID := utils.GenerateUUID()
	log := s.logger.WithFields(logrus.Fields{
		"submission_id": submissionID,
		"company":       submission.Company,
	})

	// The sinks are independent: they run concurrently and neither's
	// failure blocks or is conflated with the other's outcome. No retry,
	// no redelivery.
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.crm.Deliver(ctx, submission); err != nil {
			log.WithError(err).Error("CRM delivery failed")
		}
	}()

	go func() {
		defer wg.Done()
		if err := s.mail.Notify(ctx, submission); err != nil {
			log.WithError(err).Error("Mail notification failed")
		}
	}()

	wg.Wait()

	log.Info("Contact submission processed")
	return nil
}
