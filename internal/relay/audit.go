package relay

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/congo-pay/intasend-go/internal/audit"
)

// RecentAudit returns the newest audit entries, ?limit=N of them.
func (h *Handler) RecentAudit(c *fiber.Ctx) error {
	limit := audit.ClampLimit(c.QueryInt("limit", audit.DefaultLimit))
	entries, err := h.audit.Recent(c.UserContext(), limit)
	if err != nil {
		h.logger.Error("read audit entries", zap.Error(err))
		return fiber.NewError(fiber.StatusServiceUnavailable, "audit store unavailable")
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	return c.JSON(fiber.Map{"count": len(entries), "results": entries})
}
