package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/praisepoint/site-api/internal/assistant"
	"github.com/praisepoint/site-api/internal/consent"
	"github.com/praisepoint/site-api/internal/contact"
	"github.com/praisepoint/site-api/internal/contact/hubspot"
	"github.com/praisepoint/site-api/internal/contact/mailer"
	"github.com/praisepoint/site-api/internal/content"
	"github.com/praisepoint/site-api/internal/router"
	"github.com/praisepoint/site-api/internal/seo"
	"github.com/praisepoint/site-api/internal/sitemap"
	"github.com/praisepoint/site-api/internal/system/config"
)

// buildHandlers wires all services, clients and handlers
func buildHandlers(cfg *config.Config, logger *logrus.Logger) (router.Handlers, error) {
	contentStore, err := content.NewStore()
	if err != nil {
		return router.Handlers{}, fmt.Errorf("failed to load content tables: %w", err)
	}
	logger.Info("Content tables loaded")

	metaBuilder := seo.NewBuilder(&cfg.Site)
	generator := sitemap.NewGenerator(metaBuilder)

	crmClient := hubspot.NewClient(&cfg.HubSpot, logger)
	mailNotifier := mailer.NewResendNotifier(&cfg.Mail, cfg.Site.Name, logger)
	contactService := contact.NewService(crmClient, mailNotifier, logger)

	logger.WithFields(logrus.Fields{
		"crm_configured":  crmClient.IsConfigured(),
		"mail_configured": cfg.Mail.IsConfigured(),
	}).Info("Contact delivery sinks initialized")

	consentService := consent.NewService(&cfg.Consent)

	return router.Handlers{
		Pages:     seo.NewHandler(metaBuilder, &cfg.Site, logger),
		Sitemap:   sitemap.NewHandler(generator, logger),
		Contact:   contact.NewHandler(contactService),
		Consent:   consent.NewHandler(consentService, cfg),
		Assistant: assistant.NewHandler(),
		Content:   content.NewHandler(contentStore),
	}, nil
}
