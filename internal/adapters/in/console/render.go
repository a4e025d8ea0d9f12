package console

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/asset"
)

const timeLayout = "02/01/2006 15:04"

func (c *Console) table(header string, rows []string) {
	if len(rows) == 0 {
		c.printf("No results\n")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, header)
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, row)
	}
	_ = w.Flush()
}

func (c *Console) printUsers(users []queries.UserView) {
	rows := make([]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, strings.Join([]string{
			u.ID.String(),
			u.Role.String(),
			u.FullName(),
			u.Email,
			activeLabel(u.Active),
			roleDetail(u),
		}, "\t"))
	}
	c.table("ID\tROLE\tNAME\tEMAIL\tSTATE\tDETAIL", rows)
}

func roleDetail(u queries.UserView) string {
	switch {
	case u.Department != "":
		return "department " + u.Department
	case u.Area != "":
		return "area " + u.Area
	case u.MaxActiveOrders > 0:
		return fmt.Sprintf("max %d active orders", u.MaxActiveOrders)
	default:
		return ""
	}
}

func (c *Console) printAssets(assets []queries.AssetView) {
	rows := make([]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, strings.Join([]string{
			a.ID.String(),
			a.AssetType,
			a.Model,
			a.Location,
			asset.FormatDate(a.AcquisitionDate),
		}, "\t"))
	}
	c.table("ID\tTYPE\tMODEL\tLOCATION\tACQUIRED", rows)
}

func (c *Console) printWorkOrders(orders []queries.WorkOrderView) {
	rows := make([]string, 0, len(orders))
	for _, o := range orders {
		technician := "-"
		if o.AssignedTo != nil {
			technician = o.AssignedTo.String()
		}
		rows = append(rows, strings.Join([]string{
			o.ID.String(),
			o.Title,
			o.Status.String(),
			o.Priority.String(),
			o.MaintenanceType.String(),
			technician,
			o.OpenedAt.Format(timeLayout),
			o.Estimate.String(),
			timing(o),
		}, "\t"))
	}
	c.table("ID\tTITLE\tSTATUS\tPRIORITY\tTYPE\tTECHNICIAN\tOPENED\tESTIMATE\tTIMING", rows)
}

// timing summarises the deadline: remaining or overdue time while open,
// on time or late once resolved.
func timing(o queries.WorkOrderView) string {
	if o.ResolvedOnTime != nil {
		if *o.ResolvedOnTime {
			return "resolved on time"
		}
		return "resolved late"
	}
	if o.RemainingTime < 0 {
		return "overdue by " + formatDuration(-o.RemainingTime)
	}
	return formatDuration(o.RemainingTime) + " left"
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
