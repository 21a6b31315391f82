package exchange

import (
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/kylycht/buysell/form"
	"github.com/kylycht/buysell/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	SessionID string
	Catalog   model.Catalog
	View      form.View
}

type errorData struct {
	Message string
}

func renderPage(c *fiber.Ctx, data pageData) error {
	return render(c, fiber.StatusOK, "exchange.html", data)
}

func renderHome(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "home.html", nil)
}

func renderError(c *fiber.Ctx, status int, msg string) error {
	return render(c, status, "error.html", errorData{Message: msg})
}

func render(c *fiber.Ctx, status int, name string, data interface{}) error {
	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return pages.ExecuteTemplate(c, name, data)
}
