package echoapi

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/NishanthKarthikeyan/college-broadcast-system/core"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/broadcast"
	"github.com/NishanthKarthikeyan/college-broadcast-system/core/contact"
	rosterstore "github.com/NishanthKarthikeyan/college-broadcast-system/storage/roster"
)

type broadcastApi struct {
	contacts   *contact.Service
	broadcasts *broadcast.Service
	roster     RosterReloader
}

func registerBroadcastAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	contacts *contact.Service,
	broadcasts *broadcast.Service,
	roster RosterReloader,
) {
	api := broadcastApi{
		contacts:   contacts,
		broadcasts: broadcasts,
		roster:     roster,
	}

	// all endpoints require an authenticated admin
	ag := g.Group("", jwt, adminMiddleware())
	ag.POST("/broadcasts", api.create)
	ag.GET("/contacts", api.queryContacts)
	ag.GET("/contacts/meta", api.contactsMeta)
	ag.POST("/roster/reload", api.reloadRoster)
}

// BroadcastResponse is a broadcast result, with a hint when nothing matched.
type BroadcastResponse struct {
	broadcast.Result
	Hint string `json:"hint,omitempty"`
}

// Handlers

func (api *broadcastApi) create(ctx echo.Context) error {
	var data broadcast.Request
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to broadcast.Request")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res, err := api.broadcasts.Run(data)
	if err != nil {
		return errors.Wrap(err, "running broadcast")
	}

	resp := BroadcastResponse{Result: res}
	if res.Matched == 0 {
		resp.Hint = api.noMatchHint(data)
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *broadcastApi) queryContacts(ctx echo.Context) error {
	filter := contact.QueryFilter{
		Year:       ctx.QueryParam("year"),
		Department: ctx.QueryParam("department"),
	}
	contacts, err := api.contacts.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering contacts")
	}
	return ctx.JSON(http.StatusOK, contacts)
}

func (api *broadcastApi) contactsMeta(ctx echo.Context) error {
	years, err := api.contacts.Years()
	if err != nil {
		return errors.Wrap(err, "listing years")
	}
	departments, err := api.contacts.Departments()
	if err != nil {
		return errors.Wrap(err, "listing departments")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"years": years, "departments": departments})
}

func (api *broadcastApi) reloadRoster(ctx echo.Context) error {
	err := api.roster.Reload()
	if err == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if _, ok := err.(*rosterstore.LoadError); ok {
		if os.IsNotExist(errors.Cause(err)) {
			// a configured roster file vanished from under the running server
			return errors.Wrap(core.NewShutdownError(err.Error()), "reloading roster")
		}
		// bad data; the previous snapshot stays in place
		return core.NewValidationError(err)
	}
	return errors.Wrap(err, "reloading roster")
}

// noMatchHint flags filter values that match no known category; a typo'd filter
// is a valid "no recipients" outcome, not an error, so this only decorates the result.
func (api *broadcastApi) noMatchHint(req broadcast.Request) string {
	if hint := api.categoryHint("year", req.Year, api.contacts.Years); hint != "" {
		return hint
	}
	return api.categoryHint("department", req.Department, api.contacts.Departments)
}

func (api *broadcastApi) categoryHint(field, val string, list func() ([]string, error)) string {
	if val == "" {
		return ""
	}
	known, err := list()
	if err != nil {
		return ""
	}
	for _, k := range known {
		if k == val {
			return ""
		}
	}
	if sugg, ok := contact.SuggestCategory(val, known); ok {
		return fmt.Sprintf("unknown %s %q, did you mean %q?", field, val, sugg)
	}
	return fmt.Sprintf("unknown %s %q", field, val)
}
