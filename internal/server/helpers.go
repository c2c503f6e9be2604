package server

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the handler already wrote an error response
// to the client; callers should just return nil up the Fiber chain.
var errResponseWritten = errors.New("response written")

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// parseID extracts and validates a positive integer route parameter.
// On failure it writes a 400 response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondAppError(c, models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePagination reads page/limit query parameters with sane defaults and a
// hard cap on the page size.
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// parseCommentPagination reads the commentPage/commentLimit query parameters
// used by the aggregated blog detail, with the same cap as parsePagination.
func parseCommentPagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("commentPage", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("commentLimit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// humanizeParam converts a route param name like "blogID" or "comment_id"
// into a readable label for error messages.
func humanizeParam(param string) string {
	param = strings.ReplaceAll(param, "_", " ")
	return strings.ToLower(splitCamel(param))
}

func splitCamel(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		// A run of capitals ("ID") stays one word; only a lower-to-upper
		// boundary starts a new one.
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// respondAppError maps an error's application code to an HTTP status and
// writes the standard error envelope. Unknown errors become 500s.
func respondAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}
	if appErr.Code == models.CodeInternal {
		observability.RecordErrorInContext(c.UserContext(), appErr)
	}
	return models.RespondWithError(c, errStatus(appErr.Code), appErr)
}

func errStatus(code string) int {
	switch code {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeValidation, models.CodeDepthExceeded:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// currentUserID pulls the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	uid, ok := c.Locals("userID").(uint)
	return uid, ok
}
