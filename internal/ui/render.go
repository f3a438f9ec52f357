package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DIMO-Network/iss-distance/services/distance"
	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/DIMO-Network/iss-distance/services/report"
	"github.com/DIMO-Network/iss-distance/services/session"
)

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func userCoords(st session.State) string {
	if st.Location == nil {
		return "User Coords- unknown"
	}
	return fmt.Sprintf("User Coords- Lat- %s Long- %s", coord(st.Location.Latitude), coord(st.Location.Longitude))
}

func satelliteCoords(sat geo.Point) string {
	return fmt.Sprintf("ISS Coords- Lat- %s Long- %s", coord(sat.Latitude), coord(sat.Longitude))
}

func radio(current distance.Unit, style func(string) string) string {
	option := func(u distance.Unit, label string) string {
		if u == current {
			return style("(•) " + label)
		}
		return "( ) " + label
	}
	return option(distance.Miles, "Miles") + "  " + option(distance.Kilometers, "Kilometers")
}

// Plain renders the session without colors, one line per item.
func Plain(st session.State, sat geo.Point) string {
	if st.Loading {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(userCoords(st) + "\n")
	b.WriteString(satelliteCoords(sat) + "\n")
	if st.Err != nil {
		b.WriteString("Error: " + st.Err.Error() + "\n")
	} else {
		b.WriteString(report.Sentence(st) + "\n")
	}
	b.WriteString(radio(st.Unit, func(s string) string { return s }) + "\n")
	return b.String()
}
