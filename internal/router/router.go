package router

import (
	"errors"
	"net/http"
	"time"

	_ "petclinic/docs"
	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/adapters/storage/redisstore"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory con datos de ejemplo.
	DB *sqlx.DB

	// Opcional: cache de veterinarios y flashes compartidos.
	Redis *redis.Client

	Log logger.Logger

	// Renderer por defecto: plantillas embebidas. Los tests pasan uno que graba.
	Renderer web.Renderer

	PageSize int
	CacheTTL time.Duration
	FlashTTL time.Duration
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	renderer := opts.Renderer
	if renderer == nil {
		tr, err := web.NewTemplateRenderer()
		if err != nil {
			return nil, err
		}
		renderer = tr
	}

	var (
		ownerRepo owners.Repository
		typeRepo  owners.PetTypeRepository
		vetRepo   vets.Repository
		vetCache  vets.Cache
		flashes   web.FlashStore
	)

	if opts.DB != nil {
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		typeRepo = pg.NewPetTypesRepo(opts.DB)
		vetRepo = pg.NewVetsRepo(opts.DB)
	} else {
		ownerRepo = mem.NewOwnerRepo(mem.SampleOwners()...)
		typeRepo = mem.NewPetTypeRepo(mem.SamplePetTypes()...)
		vetRepo = mem.NewVetRepo(mem.SampleVets()...)
	}

	if opts.Redis != nil {
		vetCache = redisstore.NewVetsCache(opts.Redis, opts.CacheTTL)
		flashes = redisstore.NewFlashStore(opts.Redis)
	} else {
		flashes = web.NewMemoryFlashStore()
	}

	views := &web.Views{
		Renderer: renderer,
		Flash:    web.NewFlasher(flashes, opts.FlashTTL, log),
		Log:      log,
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log, views.Fail))
	r.Use(views.Flash.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		views.NotFound(w, r, "The requested page does not exist.")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, "welcome", nil)
	})

	// /oups existe para ver la página de error con un panic real.
	r.Get("/oups", func(http.ResponseWriter, *http.Request) {
		panic(errors.New("Expected: controller used to showcase what happens when an exception is thrown"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo, typeRepo, opts.PageSize)
	vetsSvc := vets.NewService(vetRepo, vetCache, log, opts.PageSize)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, views)
	vets.RegisterRoutes(r, vetsSvc, views)

	return r, nil
}
