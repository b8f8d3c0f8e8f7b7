package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck ตรวจ dependency หนึ่งตัว; ค่าที่คืนแสดงใน /health
type HealthCheck func(ctx context.Context) (any, error)

const healthCheckTimeout = 2 * time.Second

// apiIndex resource ของแต่ละ app ตามลำดับที่แสดง
var apiIndex = []struct {
	key       string
	prefix    string
	resources []string
}{
	{"galeria_api", "/galeria/api/", []string{"categorias", "fotografos", "etiquetas", "imagenes"}},
	{"multimedia_api", "/multimedia/api/", []string{"tipos", "colecciones", "archivos", "comentarios"}},
	{"proyectos_api", "/proyectos/api/", []string{"clientes", "categorias", "proyectos", "tareas", "comentarios"}},
	{"ejemplo_api", "", nil},
	{"tareas_api", "/tareas/api/", []string{"listas", "tareas", "etiquetas"}},
}

// RootHandler หน้า index ที่ลิงก์ไปทุก collection และ /health
type RootHandler struct {
	checks map[string]HealthCheck
}

func NewRootHandler(checks map[string]HealthCheck) *RootHandler {
	return &RootHandler{checks: checks}
}

// Index GET / และ GET /api (URL แบบ absolute จาก base URL ของ request)
func (h *RootHandler) Index(c *fiber.Ctx) error {
	base := c.BaseURL()

	body := fiber.Map{}
	for _, app := range apiIndex {
		links := fiber.Map{}
		for _, resource := range app.resources {
			links[resource] = base + app.prefix + resource + "/"
		}
		body[app.key] = links
	}
	return c.JSON(body)
}

// Health GET /health; dependency ที่ล้มทำให้ตอบ 503 พร้อม status "degraded"
func (h *RootHandler) Health(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":  "ok",
		"message": "Server is running",
		"service": "PC2 API",
	}
	if len(h.checks) == 0 {
		return c.JSON(body)
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := fiber.StatusOK
	deps := fiber.Map{}
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		detail, err := h.checks[name](ctx)
		cancel()

		if err != nil {
			status = fiber.StatusServiceUnavailable
			deps[name] = fiber.Map{"status": "error", "error": err.Error()}
			continue
		}
		entry := fiber.Map{"status": "ok"}
		if detail != nil {
			entry["detail"] = detail
		}
		deps[name] = entry
	}

	body["dependencies"] = deps
	if status != fiber.StatusOK {
		body["status"] = "degraded"
	}
	return c.Status(status).JSON(body)
}
