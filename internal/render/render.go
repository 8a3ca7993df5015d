// Package render prints Target query results as aligned tables or JSON for
// the command-line tools.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// Locations prints a location table.
func Locations(w io.Writer, locs []domain.Location) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tTYPE\tCITY\tREGION\tZIP\n")
	for i := range locs {
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			locs[i].ID,
			Truncate(locs[i].Name, 40),
			locs[i].Type,
			locs[i].City,
			locs[i].Region,
			locs[i].ZipCode,
		)
	}
	return tw.finish()
}

// Products prints search results, one row per product.
func Products(w io.Writer, products []domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("TCIN\tNAME\tPRICE\tONLINE\tRATING\n")
	for i := range products {
		p := &products[i]
		online := "-"
		if p.Online != nil && p.Online.Availability != "" {
			online = p.Online.Availability
		}
		rating := "-"
		if p.Reviews != nil && p.Reviews.Count > 0 {
			rating = fmt.Sprintf("%.1f (%d)", p.Reviews.Average, p.Reviews.Count)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			p.TCIN,
			Truncate(p.Name, 50),
			priceText(p.Price),
			online,
			rating,
		)
	}
	return tw.finish()
}

// OnlineProduct prints a product's online availability and the locations
// that stock it.
func OnlineProduct(w io.Writer, p *domain.OnlineProduct) error {
	tw := newTabWriter(w)
	tw.writef("TCIN:\t%s\n", p.TCIN)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Price:\t%s\n", priceText(p.Price))
	writeAvailability(tw, p.Availability)
	if err := tw.finish(); err != nil {
		return err
	}
	if p.Availability != nil && len(p.Availability.Locations) > 0 {
		_, _ = fmt.Fprintln(w)
		return Inventory(w, p.Availability.Locations)
	}
	return nil
}

// StoreProduct prints a store-scoped product record and its variants.
func StoreProduct(w io.Writer, p *domain.StoreProduct) error {
	tw := newTabWriter(w)
	tw.writef("TCIN:\t%s\n", p.TCIN)
	tw.writef("Name:\t%s\n", p.Name)
	if p.IsVariant() {
		tw.writef("Variant Of:\t%s\n", p.VariantOf)
	}
	if p.Store != nil {
		tw.writef("Store:\t%s (%s)\n", p.Store.Name, p.Store.ID)
	}
	tw.writef("Price:\t%s\n", priceText(p.Price))
	writeAvailability(tw, p.Availability)
	if len(p.Variants) > 0 {
		tw.writef("Variants:\t%d\n", len(p.Variants))
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(p.Variants) > 0 {
		_, _ = fmt.Fprintln(w)
		vt := newTabWriter(w)
		vt.writef("VARIANT\tNAME\tPRICE\tSTATUS\tIN STORE\n")
		for i := range p.Variants {
			v := &p.Variants[i]
			status, qty := "-", "-"
			if v.Availability != nil {
				status = orDash(v.Availability.Status)
				qty = intText(v.Availability.InStoreQuantity)
			}
			vt.writef("%s\t%s\t%s\t%s\t%s\n", v.TCIN, Truncate(v.Name, 40), priceText(v.Price), status, qty)
		}
		return vt.finish()
	}
	return nil
}

// Inventory prints per-location on-hand quantities.
func Inventory(w io.Writer, locs []domain.AvailabilityLocation) error {
	tw := newTabWriter(w)
	tw.writef("LOCATION\tNAME\tON HAND\tSTATUS\n")
	for i := range locs {
		name := "-"
		if locs[i].Store != nil {
			name = Truncate(locs[i].Store.Name, 40)
		}
		tw.writef("%s\t%s\t%d\t%s\n", locs[i].LocationID, name, locs[i].OnHand, orDash(locs[i].Status))
	}
	return tw.finish()
}

// StockChecks prints one row per watch result.
func StockChecks(w io.Writer, checks []domain.StockCheck) error {
	tw := newTabWriter(w)
	tw.writef("WATCH\tTCIN\tSTORE\tON HAND\tWANTED\tIN STOCK\n")
	for i := range checks {
		c := &checks[i]
		store := c.Watch.StoreID
		if c.StoreName != "" {
			store = Truncate(c.StoreName, 30)
		}
		onHand := strconv.Itoa(c.OnHand)
		if !c.Found {
			onHand = "not found"
		}
		tw.writef("%s\t%s\t%s\t%s\t%d\t%v\n",
			Truncate(c.Watch.Name, 30),
			c.Watch.TCIN,
			store,
			onHand,
			c.Watch.DesiredQuantity,
			c.InStock,
		)
	}
	return tw.finish()
}

// Availability prints an availability summary followed by its per-location
// inventory.
func Availability(w io.Writer, a *domain.Availability) error {
	tw := newTabWriter(w)
	writeAvailability(tw, a)
	if err := tw.finish(); err != nil {
		return err
	}
	if a == nil || len(a.Locations) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(w)
	return Inventory(w, a.Locations)
}

func writeAvailability(tw *tabWriter, a *domain.Availability) {
	if a == nil {
		tw.writef("Availability:\t-\n")
		return
	}
	tw.writef("Availability:\t%s\n", orDash(a.Status))
	tw.writef("Total:\t%s\n", intText(a.TotalQuantity))
	tw.writef("Online:\t%s\n", intText(a.OnlineQuantity))
	tw.writef("In Store:\t%s\n", intText(a.InStoreQuantity))
	if a.ReleaseDate != nil {
		tw.writef("Release Date:\t%s\n", a.ReleaseDate.Format("2006-01-02"))
	}
}

func priceText(p *domain.Price) string {
	if p == nil || p.Price == "" {
		return "-"
	}
	return p.Price
}

func intText(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Truncate shortens s to maxLen runes, marking the cut with "...".
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
