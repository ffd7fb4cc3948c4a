package delivery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sams408/safeon-id-vault/internal/datatable"

	"github.com/gin-gonic/gin"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// listQuery reads ?q plus the filter parameters an entity supports.
func listQuery(c *gin.Context, filterKeys ...string) datatable.Query {
	q := datatable.Query{Search: c.Query("q"), Filters: map[string]string{}}
	for _, key := range filterKeys {
		if v, ok := c.GetQuery(key); ok {
			q.Filters[key] = v
		}
	}
	return q
}

// renderList filters rows and replies with a translated table view, or with
// CSV when ?format=csv. filterOnly columns take part in filtering but are not
// displayed.
func renderList[T any](b base, c *gin.Context, section string, all []T, display, filterOnly []datatable.Column[T], filterKeys ...string) {
	columns := make([]datatable.Column[T], 0, len(display)+len(filterOnly))
	columns = append(columns, display...)
	columns = append(columns, filterOnly...)

	visible := datatable.Apply(all, columns, listQuery(c, filterKeys...))

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="`+section+`.csv"`)
		c.Status(http.StatusOK)
		if err := datatable.WriteCSV(c.Writer, visible, display); err != nil {
			b.log.Errorf("Failed to write %s csv: %v", section, err)
		}
		return
	}

	view := datatable.NewView(
		b.t(c, section+".title", nil),
		b.t(c, section+".search", nil),
		b.t(c, "messages.empty", nil),
		display, all, visible,
	)
	SuccessResponse(c, http.StatusOK, b.t(c, "messages.listed", map[string]string{"count": strconv.Itoa(len(visible))}), view)
}
