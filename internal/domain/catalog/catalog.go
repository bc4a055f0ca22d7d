package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoZones        = errors.New("no zones selected")
	ErrExclusiveZones = errors.New("more than one zone from an exclusive group")
)

// Entry is one priced catalog row.
type Entry struct {
	ServiceType     string
	Zone            string
	DurationMinutes int
	Price           int64
}

// ComputeDurationAndPrice sums every entry of serviceType whose zone is one of
// zones. A zone listed twice counts once. No match yields zeros.
func ComputeDurationAndPrice(entries []Entry, serviceType string, zones []string) (int, int64) {
	wanted := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		wanted[z] = struct{}{}
	}

	var minutes int
	var price int64
	for _, e := range entries {
		if e.ServiceType != serviceType {
			continue
		}
		if _, ok := wanted[e.Zone]; !ok {
			continue
		}
		minutes += e.DurationMinutes
		price += e.Price
	}
	return minutes, price
}

// ExclusiveGroups lists zones that cannot be booked together: a client picks
// at most one member of each group.
var ExclusiveGroups = map[string][]string{
	"Piernas": {"Medias piernas", "Piernas completas"},
	"Brazos":  {"Brazos", "Medio brazo"},
	"Rostro":  {"Rostro completo", "Cara"},
}

// NormalizeZones trims, drops blanks and removes repeats keeping first order.
func NormalizeZones(zones []string) []string {
	seen := make(map[string]struct{}, len(zones))
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		z = strings.TrimSpace(z)
		if z == "" {
			continue
		}
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	return out
}

func ValidateZones(zones []string) error {
	if len(zones) == 0 {
		return ErrNoZones
	}

	for group, members := range ExclusiveGroups {
		var picked []string
		for _, m := range members {
			for _, z := range zones {
				if z == m {
					picked = append(picked, m)
				}
			}
		}
		if len(picked) > 1 {
			return fmt.Errorf("%w: %s (%s)", ErrExclusiveZones, group, strings.Join(picked, ", "))
		}
	}
	return nil
}

var preferredTypes = []string{"Descartable", "Láser"}

// ServiceTypes returns distinct non-blank types, preferred ones first.
func ServiceTypes(entries []Entry) []string {
	var raw []string
	seen := map[string]struct{}{}
	for _, e := range entries {
		t := strings.TrimSpace(e.ServiceType)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		raw = append(raw, t)
	}

	out := make([]string, 0, len(raw))
	for _, p := range preferredTypes {
		if _, ok := seen[p]; ok {
			out = append(out, p)
		}
	}
	for _, t := range raw {
		if !isPreferred(t) {
			out = append(out, t)
		}
	}
	return out
}

// ZonesFor lists the non-blank zones offered for a type in catalog order.
func ZonesFor(entries []Entry, serviceType string) []string {
	var zones []string
	for _, e := range entries {
		if e.ServiceType == serviceType {
			zones = append(zones, e.Zone)
		}
	}
	return NormalizeZones(zones)
}

// FormatARS renders an amount as "AR$ 12.500".
func FormatARS(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := fmt.Sprintf("%d", n)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "AR$ -" + b.String()
	}
	return "AR$ " + b.String()
}

func isPreferred(t string) bool {
	for _, p := range preferredTypes {
		if p == t {
			return true
		}
	}
	return false
}
