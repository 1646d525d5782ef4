package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
)

type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, header ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	t.row(header...)
	return t
}

func (t *table) row(cells ...string) {
	_, _ = fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	return t.w.Flush()
}

func renderPlans(out io.Writer, plans []backend.Plan) error {
	t := newTable(out, "ID", "NAME", "TYPE", "PRICE", "DATA/DAY GB", "CALLS", "VALIDITY DAYS")
	for _, p := range plans {
		t.row(integer(p.ID), p.Name, string(p.Type), money(p.Price), decimal(p.DataLimit), integer(p.CallLimit), integer(p.Validity))
	}
	return t.flush()
}

func renderSIMs(out io.Writer, sims []backend.SIM) error {
	t := newTable(out, "ID", "PHONE", "SIM NUMBER", "TYPE", "STATUS", "PLAN", "BALANCE", "ACTIVATED", "VALID UNTIL")
	for _, s := range sims {
		plan := "-"
		if s.Plan != nil {
			plan = s.Plan.Name
		}
		t.row(integer(s.ID), orDash(s.PhoneNumber), orDash(s.SIMNumber), orDash(string(s.PlanType())), s.Status,
			plan, money(s.Balance), orDash(s.ActivationDate), orDash(s.ValidityEndDate))
	}
	return t.flush()
}

func renderBills(out io.Writer, bills []backend.Bill) error {
	t := newTable(out, "ID", "PHONE", "PLAN", "MONTH", "AMOUNT", "STATUS", "GENERATED", "PAID", "EXTRA DATA", "EXTRA CALLS")
	for _, b := range bills {
		phone, plan := "-", "-"
		if b.SIM != nil {
			phone = orDash(b.SIM.PhoneNumber)
		}
		if b.Plan != nil {
			plan = b.Plan.Name
		}
		t.row(integer(b.ID), phone, plan, orDash(b.Month), money(b.Amount), b.Status, orDash(b.GeneratedDate),
			orDash(b.PaidDate), decimal(b.ExtraDataUsed), integer(b.ExtraCallUsed))
	}
	return t.flush()
}

func renderUsages(out io.Writer, usages []backend.Usage) error {
	t := newTable(out, "ID", "DATE", "PHONE", "TYPE", "DATA GB", "CALL MINUTES")
	for _, u := range usages {
		t.row(integer(u.ID), u.Date, orDash(u.PhoneNumber), u.Type, decimal(u.DataUsed), integer(u.CallMinutesUsed))
	}
	return t.flush()
}

func renderCustomers(out io.Writer, customers []backend.Customer) error {
	t := newTable(out, "ID", "NAME", "EMAIL", "PHONE", "AADHAAR")
	for _, c := range customers {
		t.row(integer(c.ID), c.Name, orDash(c.Email), orDash(c.Phone), orDash(c.AadhaarNo))
	}
	return t.flush()
}

func remaining(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}

func integer(v int64) string {
	return fmt.Sprintf("%d", v)
}

func decimal(v float64) string {
	return fmt.Sprintf("%g", v)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printConfirmation(out io.Writer, message, fallback string) error {
	if message == "" {
		message = fallback
	}
	_, err := fmt.Fprintln(out, message)
	return err
}
