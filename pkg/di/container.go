package di

import (
	"context"
	"fmt"
	"time"

	"pc2-api/application/serviceimpl"
	"pc2-api/domain/dto"
	"pc2-api/domain/ports"
	"pc2-api/domain/services"
	natspkg "pc2-api/infrastructure/nats"
	"pc2-api/infrastructure/persistence"
	redispkg "pc2-api/infrastructure/redis"
	"pc2-api/infrastructure/storage"
	"pc2-api/infrastructure/websocket"
	"pc2-api/interfaces/api/handlers"
	"pc2-api/pkg/config"
	"pc2-api/pkg/logger"
	"pc2-api/pkg/scheduler"

	"gorm.io/gorm"
)

const overdueJobID = "projects-overdue-sweep"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client    // Redis client สำหรับ cache (optional)
	NATSClient     *natspkg.Client     // NATS connection + JetStream (optional)
	NATSSubscriber *natspkg.Subscriber // NATS → websocket hub
	Storage        ports.StoragePort   // Port/Adapter pattern
	Cache          ports.CachePort     // Redis หรือ NoopCache
	Publisher      ports.EventPublisherPort
	Hub            *websocket.Hub
	EventScheduler scheduler.EventScheduler

	// Services
	Services *handlers.Services

	cancelBackground context.CancelFunc
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.InitDatabase(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

// InitDatabase config + logger + database + migrate (ใช้ร่วมกับ pc2ctl)
func (c *Container) InitDatabase() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	dbConfig := persistence.DatabaseConfig{
		Driver:     c.Config.Database.Driver,
		Host:       c.Config.Database.Host,
		Port:       c.Config.Database.Port,
		User:       c.Config.Database.User,
		Password:   c.Config.Database.Password,
		DBName:     c.Config.Database.DBName,
		SSLMode:    c.Config.Database.SSLMode,
		SQLitePath: c.Config.Database.SQLitePath,
		LogLevel:   c.Config.Database.LogLevel,
	}

	db, err := persistence.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver)

	if err := persistence.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")
	return nil
}

// InitOffline database + services โดยไม่ต่อ Redis/NATS/websocket (ใช้กับ pc2ctl seed)
func (c *Container) InitOffline() error {
	if err := c.InitDatabase(); err != nil {
		return err
	}

	c.Cache = ports.NoopCache{}
	c.Publisher = ports.NoopEventPublisher{}
	if err := c.initStorage(); err != nil {
		return err
	}

	c.initServices()
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelBackground = cancel

	// WebSocket hub รับ event แล้วกระจายให้ client ตาม app
	c.Hub = websocket.NewHub()
	go c.Hub.Run(ctx)

	// Initialize Redis Client (optional - graceful degradation)
	c.Cache = ports.NoopCache{}
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.Cache = redisClient
		}
	}

	// Initialize NATS (optional): ถ้ามี NATS event จะวิ่ง NATS → subscriber → hub
	// เพื่อให้ทุก instance ได้รับ event เดียวกัน
	c.Publisher = c.Hub
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
			URL:    c.Config.NATS.URL,
			Stream: c.Config.NATS.Stream,
		})
		if err != nil {
			logger.Warn("NATS client initialization failed (events stay local)", "error", err)
		} else {
			subscriber := natspkg.NewSubscriber(natsClient)
			err := subscriber.Subscribe(ctx, func(event *ports.DomainEvent) {
				if err := c.Hub.Publish(ctx, event); err != nil {
					logger.Warn("Failed to forward event to websocket hub", "subject", event.Subject, "error", err)
				}
			})
			if err != nil {
				logger.Warn("NATS subscribe failed (events stay local)", "error", err)
				natsClient.Close()
			} else {
				c.NATSClient = natsClient
				c.NATSSubscriber = subscriber
				c.Publisher = natspkg.NewPublisher(natsClient)
			}
		}
	}

	// Initialize Storage (Port/Adapter pattern)
	return c.initStorage()
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initServices() {
	c.Services = NewServices(c.DB, c.Cache, c.Publisher, c.Storage.GetFileURL, c.Config.Redis.TTL)
	c.Services.HealthChecks = c.healthChecks()
	logger.Info("Services initialized", "storage", c.Storage.GetProviderName())
}

// healthChecks dependency ที่ /health ตรวจ (เฉพาะตัวที่เปิดใช้)
func (c *Container) healthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) (any, error) {
			sqlDB, err := c.DB.DB()
			if err != nil {
				return nil, err
			}
			return c.Config.Database.Driver, sqlDB.PingContext(ctx)
		},
	}
	if c.RedisClient != nil {
		checks["redis"] = func(ctx context.Context) (any, error) {
			return nil, c.RedisClient.Ping(ctx)
		}
	}
	if c.NATSClient != nil {
		checks["nats"] = func(ctx context.Context) (any, error) {
			return c.NATSClient.GetStatus(ctx)
		}
	}
	return checks
}

// NewServices ประกอบ repository และ service ของทั้ง 4 app บน db เดียว
func NewServices(
	db *gorm.DB,
	cache ports.CachePort,
	publisher ports.EventPublisherPort,
	fileURL dto.FileURLFunc,
	ttl time.Duration,
) *handlers.Services {
	// Repositories
	taskListRepo := persistence.NewTaskListRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	tagRepo := persistence.NewTagRepository(db)

	galleryCategoryRepo := persistence.NewGalleryCategoryRepository(db)
	photographerRepo := persistence.NewPhotographerRepository(db)
	imageRepo := persistence.NewImageRepository(db)
	imageTagRepo := persistence.NewImageTagRepository(db)

	fileTypeRepo := persistence.NewFileTypeRepository(db)
	collectionRepo := persistence.NewCollectionRepository(db)
	mediaFileRepo := persistence.NewMediaFileRepository(db)
	mediaCommentRepo := persistence.NewMediaCommentRepository(db)

	clientRepo := persistence.NewClientRepository(db)
	projectCategoryRepo := persistence.NewProjectCategoryRepository(db)
	projectRepo := persistence.NewProjectRepository(db)
	projectTaskRepo := persistence.NewProjectTaskRepository(db)
	projectCommentRepo := persistence.NewProjectCommentRepository(db)

	return &handlers.Services{
		TaskListService: serviceimpl.NewTaskListService(taskListRepo, taskRepo),
		TaskService:     serviceimpl.NewTaskService(taskRepo, taskListRepo, tagRepo, publisher),
		TagService:      serviceimpl.NewTagService(tagRepo, taskRepo),

		GalleryCategoryService: serviceimpl.NewGalleryCategoryService(galleryCategoryRepo, cache),
		PhotographerService:    serviceimpl.NewPhotographerService(photographerRepo, cache),
		ImageService:           serviceimpl.NewImageService(imageRepo, galleryCategoryRepo, photographerRepo, cache, ttl),
		ImageTagService:        serviceimpl.NewImageTagService(imageTagRepo, imageRepo),

		FileTypeService:     serviceimpl.NewFileTypeService(fileTypeRepo, cache),
		CollectionService:   serviceimpl.NewCollectionService(collectionRepo, mediaFileRepo, cache),
		MediaFileService:    serviceimpl.NewMediaFileService(mediaFileRepo, fileTypeRepo, collectionRepo, mediaCommentRepo, publisher, cache, ttl),
		MediaCommentService: serviceimpl.NewMediaCommentService(mediaCommentRepo, mediaFileRepo, publisher),

		ClientService:          serviceimpl.NewClientService(clientRepo, cache),
		ProjectCategoryService: serviceimpl.NewProjectCategoryService(projectCategoryRepo),
		ProjectService: serviceimpl.NewProjectService(serviceimpl.ProjectRepositories{
			Projects:   projectRepo,
			Clients:    clientRepo,
			Categories: projectCategoryRepo,
			Images:     imageRepo,
			Tasks:      projectTaskRepo,
			Comments:   projectCommentRepo,
		}, publisher, cache, ttl),
		ProjectTaskService:    serviceimpl.NewProjectTaskService(projectTaskRepo, projectRepo, publisher),
		ProjectCommentService: serviceimpl.NewProjectCommentService(projectCommentRepo, projectRepo),

		FileURL: fileURL,
	}
}

// initScheduler ตั้งงาน overdue sweep; cron ว่าง = ปิด
func (c *Container) initScheduler() error {
	cronExpr := c.Config.Scheduler.OverdueCron
	if cronExpr == "" {
		logger.Info("Overdue sweep disabled")
		return nil
	}

	c.EventScheduler = scheduler.NewEventScheduler()
	if err := c.EventScheduler.AddJob(overdueJobID, cronExpr, func() {
		sweepOverdue(context.Background(), c.Services.ProjectService)
	}); err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}
	c.EventScheduler.Start()
	if job, ok := c.EventScheduler.GetJob(overdueJobID); ok && job.NextRun != nil {
		logger.Info("Overdue sweep scheduled", "cron", job.CronExpr, "next_run", job.NextRun.Format(time.RFC3339))
	}
	return nil
}

func sweepOverdue(ctx context.Context, projects services.ProjectService) {
	count, err := projects.SweepOverdue(ctx)
	if err != nil {
		logger.Error("Overdue sweep failed", "error", err)
		return
	}
	logger.Info("Overdue sweep finished", "overdue", count)
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.NATSSubscriber != nil {
		if err := c.NATSSubscriber.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe from NATS", "error", err)
		}
	}

	if c.cancelBackground != nil {
		c.cancelBackground()
	}

	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}
