package bootstrap

import (
	"log"
	"time"

	"plant-hub-be/internal/config"
	"plant-hub-be/internal/controller"
	"plant-hub-be/internal/pkg/logger"
	"plant-hub-be/internal/repository/unitofwork"
	"plant-hub-be/internal/service"
	"plant-hub-be/pkg/gpio"
	"plant-hub-be/pkg/imaging"
	"plant-hub-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const activityTopic = "plant-activity"

type Container struct {
	// Controllers
	PlantController        controller.IPlantController
	PhotoHistoryController controller.IPhotoHistoryController
	NoteController         controller.INoteController
	TimelineController     controller.ITimelineController
	ControlController      controller.IControlController

	// Background Services (Exposed for main.go to run)
	ActivityConsumer service.IActivityConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	store, err := storage.NewLocalStore(cfg.Photo.BaseDir, cfg.Photo.StorageDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize photo storage: %v", err)
	}
	compressor := imaging.NewCompressor(cfg.Photo.TargetSizeKB)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub, activityTopic)
	activityConsumer := service.NewActivityConsumerService(pubSub, activityTopic, sysLogger)

	// 3. Hardware
	pulse := time.Duration(cfg.Pump.PulseMs) * time.Millisecond
	var pump gpio.Pump
	if cfg.Pump.Enabled {
		motor, err := gpio.NewMotorPump(cfg.Pump.ForwardPin, cfg.Pump.BackwardPin, pulse)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize pump GPIO: %v", err)
		}
		pump = motor
	} else {
		log.Println("[INFO] Pump hardware disabled, using noop driver")
		pump = gpio.NewNoopPump(pulse)
	}

	// 4. Services
	plantService := service.NewPlantService(uowFactory, publisherService, sysLogger)
	photoService := service.NewPhotoHistoryService(uowFactory, store, compressor, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory, photoService, publisherService, sysLogger)
	timelineService := service.NewTimelineService(uowFactory)
	pumpService := service.NewPumpService(pump, time.Duration(cfg.Pump.CooldownSec)*time.Second, publisherService, sysLogger)

	// 5. Controllers
	return &Container{
		PlantController:        controller.NewPlantController(plantService),
		PhotoHistoryController: controller.NewPhotoHistoryController(photoService),
		NoteController:         controller.NewNoteController(noteService),
		TimelineController:     controller.NewTimelineController(timelineService),
		ControlController:      controller.NewControlController(pumpService),
		ActivityConsumer:       activityConsumer,
		Logger:                 sysLogger,
	}
}
