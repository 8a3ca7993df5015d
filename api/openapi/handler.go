// Package openapi serves a Swagger UI over the OpenAPI document that Huma
// generates at runtime.
package openapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "%s",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds the Swagger UI to the Echo instance. specPath is where
// the OpenAPI document is served, normally Huma's /openapi.json.
func RegisterRoutes(e *echo.Echo, title, specPath string) {
	page := fmt.Sprintf(swaggerUIHTML, title, specPath)

	e.GET("/swagger/index.html", func(c echo.Context) error {
		return c.HTML(http.StatusOK, page)
	})
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
