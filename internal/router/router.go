package router

import (
	"net/http"

	_ "medguardian/docs"
	mem "medguardian/internal/adapters/storage/memory"
	"medguardian/internal/adapters/storage/sqlstore"
	"medguardian/internal/domain/adherence"
	"medguardian/internal/domain/family"
	"medguardian/internal/domain/intake"
	"medguardian/internal/domain/medications"
	"medguardian/internal/domain/notifications"
	"medguardian/internal/middleware"
	"medguardian/internal/platform/logger"
	"medguardian/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa SQL (postgres o sqlite). Si no, in-memory.
	DB *sqlstore.DB

	Logger              logger.Logger
	DispatchConcurrency int
}

// Services agrupa los servicios por módulo. La CLI los usa sin HTTP.
type Services struct {
	Medications   *medications.Service
	Family        *family.Service
	Intake        *intake.Service
	Adherence     *adherence.Service
	Notifications *notifications.Service
}

func NewServices(opts Options) Services {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var (
		medRepo    medications.Repository
		familyRepo family.Repository
		intakeRepo intake.Repository
		notifRepo  notifications.Repository
	)

	if opts.DB != nil {
		medRepo = sqlstore.NewMedicationRepo(opts.DB)
		familyRepo = sqlstore.NewFamilyRepo(opts.DB)
		intakeRepo = sqlstore.NewIntakeRepo(opts.DB)
		notifRepo = sqlstore.NewNotificationRepo(opts.DB)
	} else {
		medRepo = mem.NewMedicationRepo()
		familyRepo = mem.NewFamilyRepo()
		intakeRepo = mem.NewIntakeRepo()
		notifRepo = mem.NewNotificationRepo()
	}

	medsSvc := medications.NewService(medRepo)
	familySvc := family.NewService(familyRepo)
	dispatcher := notifications.NewDispatcher(notifRepo, notifications.DispatcherOptions{
		Logger:      log.With(map[string]any{"component": "dispatcher"}),
		Concurrency: opts.DispatchConcurrency,
	})

	return Services{
		Medications:   medsSvc,
		Family:        familySvc,
		Intake:        intake.NewService(intakeRepo, medsSvc, familySvc, dispatcher, log.With(map[string]any{"component": "intake"})),
		Adherence:     adherence.NewService(medsSvc, intakeRepo),
		Notifications: notifications.NewService(notifRepo),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svcs := NewServices(opts)

	// Rutas por módulo; todas exigen usuario
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		medications.RegisterRoutes(r, svcs.Medications)
		family.RegisterRoutes(r, svcs.Family)
		intake.RegisterRoutes(r, svcs.Intake)
		adherence.RegisterRoutes(r, svcs.Adherence)
		notifications.RegisterRoutes(r, svcs.Notifications)
	})

	return r
}
