package assists

import (
	"github.com/funvibe/typeassist/internal/config"
)

// Handler is a registered assist.
type Handler struct {
	ID    string
	Label string
	Apply func(ctx *AssistCtx) (Assist, bool)
}

var handlers = []Handler{
	{ID: config.AddExplicitTypeID, Label: config.AddExplicitTypeLabel, Apply: AddExplicitType},
}

// All returns the registered handlers in registration order.
func All() []Handler {
	out := make([]Handler, len(handlers))
	copy(out, handlers)
	return out
}

// IDs returns the ids of all registered handlers.
func IDs() []string {
	ids := make([]string, len(handlers))
	for i, h := range handlers {
		ids[i] = h.ID
	}
	return ids
}

func ByID(id string) (Handler, bool) {
	for _, h := range handlers {
		if h.ID == id {
			return h, true
		}
	}
	return Handler{}, false
}

// Compute runs every enabled handler at the cursor and returns the assists
// that apply, in registration order.
func Compute(ctx *AssistCtx, settings *config.Settings) []Assist {
	var out []Assist
	for _, h := range handlers {
		if !settings.IsEnabled(h.ID) {
			continue
		}
		if a, ok := h.Apply(ctx); ok {
			out = append(out, a)
		}
	}
	return out
}
