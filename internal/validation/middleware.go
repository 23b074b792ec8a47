package validation

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// New builds a Fiber middleware that evaluates the given rule set
// before the handler runs. On any failure the request is answered with
// 400 and the accumulated field errors; the handler is never invoked.
func New(rules []Rule) fiber.Handler {
	needsBody := false
	for _, r := range rules {
		if r.Source == SourceBody {
			needsBody = true
			break
		}
	}

	return func(c *fiber.Ctx) error {
		body := map[string]any{}
		if needsBody {
			// An unparseable body counts as empty, so the required
			// rules report each missing field individually.
			_ = json.Unmarshal(c.Body(), &body)
		}

		if errs := Evaluate(rules, c.AllParams(), body); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": errs,
			})
		}
		return c.Next()
	}
}
