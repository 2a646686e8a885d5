package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/admin"
	"github.com/th41ng/SocialNetwork/pkg/internal/http/api"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "SocialNetwork",
		AppName:               "SocialNetwork",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             50 * 1024 * 1024,
		ErrorHandler:          errorHandler,
	})

	app.Use(authMiddleware)

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/admin")

	return &App{app}
}

// errorHandler turns service faults into their status codes; anything else
// falls through to fiber's own error representation.
func errorHandler(c *fiber.Ctx, err error) error {
	var f *fault.Fault
	if errors.As(err, &f) {
		return c.Status(fault.HTTPStatus(err)).JSON(fiber.Map{"error": f.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}
