// Package themesettings exposes the JSON admin API for reading and updating
// theme setting values.
package themesettings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bananabr/discourse/internal/config"
	"github.com/bananabr/discourse/internal/db/models"
	"github.com/bananabr/discourse/internal/i18n"
	"github.com/bananabr/discourse/internal/settings"
	"github.com/bananabr/discourse/internal/uploads"
	"github.com/bananabr/discourse/internal/web/handler"
)

const (
	// Path is the route prefix for theme settings.
	Path = "/themes/:id/settings"
)

// Service is the theme settings handler.
type Service struct {
	cfg        *config.Config
	db         *gorm.DB
	validator  *validator.Validate
	translator i18n.Translator
	resolver   *uploads.Resolver
}

// Handler is the theme settings handler instance.
var Handler = Service{}

var _ handler.Service = (*Service)(nil)

// Init initializes the theme settings handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()
	s.translator = i18n.NewProvider()
	s.resolver = uploads.NewResolver(db, cfg.CDN.BaseURL)

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Put("/:name", s.Update)
	})

	return nil
}

// settingView is the JSON shape of one resolved setting.
type settingView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       any    `json:"value"`
	Default     any    `json:"default"`
	Description string `json:"description,omitempty"`
}

// routeParams are the validated path parameters of an update request.
type routeParams struct {
	ID   int    `validate:"gt=0"`
	Name string `validate:"required,max=255"`
}

// updatePayload is the request body of an update.
type updatePayload struct {
	Value any `json:"value"`
}

// List resolves every declared setting of the theme to its current value.
func (s *Service) List(c *fiber.Ctx) error {
	theme, defs, err := s.loadTheme(c)
	if err != nil || theme == nil {
		return err
	}

	env := s.env()

	views := make([]settingView, 0, len(defs))
	for _, def := range defs {
		setting := settings.New(def, theme, env)

		value, err := setting.Value()
		if err != nil {
			log.Error().Err(err).Str("setting", def.Name).Msg("failed to resolve setting value")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to resolve setting value",
			})
		}

		views = append(views, settingView{
			Name:        setting.Name(),
			Type:        setting.Type().String(),
			Value:       value,
			Default:     setting.Default(),
			Description: setting.Description(),
		})
	}

	return c.JSON(views)
}

// Update validates and persists a new value for one declared setting.
func (s *Service) Update(c *fiber.Ctx) error {
	params := routeParams{
		ID:   paramsIntOrZero(c, "id"),
		Name: c.Params("name"),
	}

	if err := s.validator.Struct(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid theme id or setting name",
		})
	}

	theme, defs, err := s.loadTheme(c)
	if err != nil || theme == nil {
		return err
	}

	var payload updatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	def, ok := findDefinition(defs, params.Name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "setting is not declared by this theme",
		})
	}

	setting := settings.New(def, theme, s.env())

	stored, err := setting.SetValue(payload.Value)
	if err != nil {
		var verr *settings.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": verr.Message,
			})
		}

		log.Error().Err(err).Str("setting", def.Name).Msg("failed to save setting value")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save setting value",
		})
	}

	return c.JSON(settingView{
		Name:  setting.Name(),
		Type:  setting.Type().String(),
		Value: stored,
	})
}

// loadTheme fetches the theme with its settings and fields preloaded, and
// parses the declared definitions. On failure it writes the error response
// and returns a nil theme.
func (s *Service) loadTheme(c *fiber.Ctx) (*models.Theme, []settings.Definition, error) {
	id := paramsIntOrZero(c, "id")

	var theme models.Theme
	result := s.db.Preload("Settings").Preload("Fields").First(&theme, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "theme not found",
			})
		}

		log.Error().Err(result.Error).Int("theme", id).Msg("failed to load theme")
		return nil, nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load theme",
		})
	}

	defs, err := settings.ParseDefinitions(theme.SettingsSchema)
	if err != nil {
		log.Error().Err(err).Int("theme", id).Msg("failed to parse theme settings schema")
		return nil, nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "theme settings schema is invalid",
		})
	}

	return &theme, defs, nil
}

func (s *Service) env() settings.Env {
	return settings.Env{
		DB:         s.db,
		Uploads:    s.resolver,
		Translator: s.translator,
	}
}

func findDefinition(defs []settings.Definition, name string) (settings.Definition, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def, true
		}
	}
	return settings.Definition{}, false
}

// paramsIntOrZero returns the integer path parameter, or 0 when it does not
// parse; the zero value fails the gt=0 validation downstream.
func paramsIntOrZero(c *fiber.Ctx, key string) int {
	id, err := c.ParamsInt(key)
	if err != nil {
		return 0
	}
	return id
}
