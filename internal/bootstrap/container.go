package bootstrap

import (
	"log"

	"travel-agency-be/internal/config"
	"travel-agency-be/internal/controller"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/pkg/mailer"
	"travel-agency-be/internal/pkg/telegram"
	"travel-agency-be/internal/repository/unitofwork"
	"travel-agency-be/internal/service"
	"travel-agency-be/internal/validation"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// LeadTopic is the in-process bus topic carrying lead notification events.
const LeadTopic = "lead.notifications"

type Container struct {
	// Controllers
	LocationController controller.ILocationController
	TourController     controller.ITourController
	SiteInfoController controller.ISiteInfoController
	LeadController     controller.ILeadController
	AdminController    controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.Notify.Emails,
	)

	botClient := telegram.NewBotClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if !botClient.Enabled() {
		log.Println("[WARN] Telegram notifications disabled (missing bot token or chat id)")
	}

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(LeadTopic, pubSub)
	notificationService := service.NewNotificationService(botClient, emailService, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		LeadTopic,
		uowFactory,
		notificationService,
		sysLogger,
	)

	leadValidator := validation.NewLeadValidator()
	leadService := service.NewLeadService(uowFactory, leadValidator, publisherService, sysLogger)
	tourService := service.NewTourService(uowFactory)
	locationService := service.NewLocationService(uowFactory)
	siteInfoService := service.NewSiteInfoService(uowFactory)

	// 4. Controllers
	return &Container{
		LocationController: controller.NewLocationController(locationService),
		TourController:     controller.NewTourController(tourService),
		SiteInfoController: controller.NewSiteInfoController(siteInfoService),
		LeadController:     controller.NewLeadController(leadService, cfg.App.UploadDir),
		AdminController:    controller.NewAdminController(leadService, siteInfoService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
