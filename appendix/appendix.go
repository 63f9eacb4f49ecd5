// Package appendix holds the lookup tables published with the F1 23 UDP
// specification. Ids are decoded as plain integers by package packet; these
// tables turn them into display names.
package appendix

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/gadams999/f123telem/packet"
)

// Table maps a numeric id to its display name.
type Table map[int]string

// Name returns the display name for id, or "Unknown (id)" when the table has
// no entry for it.
func (t Table) Name(id int) string {
	if name, ok := t[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

// Keys returns the ids of t in ascending order.
func (t Table) Keys() []int {
	keys := lo.Keys(t)
	sort.Ints(keys)
	return keys
}

// Lap validity bits of lap history entries.
const (
	LapValid     uint8 = 0x01
	Sector1Valid uint8 = 0x02
	Sector2Valid uint8 = 0x04
	Sector3Valid uint8 = 0x08
)

type lapFlag struct {
	bit  uint8
	name string
}

var lapValidNames = []lapFlag{
	{LapValid, "Lap valid"},
	{Sector1Valid, "Sector 1 valid"},
	{Sector2Valid, "Sector 2 valid"},
	{Sector3Valid, "Sector 3 valid"},
}

// LapValidFlags lists the names of the validity bits set in bits.
func LapValidFlags(bits uint8) []string {
	return lo.FilterMap(lapValidNames, func(f lapFlag, _ int) (string, bool) {
		return f.name, bits&f.bit != 0
	})
}

// EventCodes describes every event string code.
var EventCodes = map[string]string{
	packet.CodeSessionStarted:     "Session Started",
	packet.CodeSessionEnded:       "Session Ended",
	packet.CodeFastestLap:         "Fastest Lap",
	packet.CodeRetirement:         "Retirement",
	packet.CodeDRSEnabled:         "DRS enabled",
	packet.CodeDRSDisabled:        "DRS disabled",
	packet.CodeTeamMateInPits:     "Team mate in pits",
	packet.CodeChequeredFlag:      "Chequered flag",
	packet.CodeRaceWinner:         "Race Winner",
	packet.CodePenalty:            "Penalty Issued",
	packet.CodeSpeedTrap:          "Speed Trap Triggered",
	packet.CodeStartLights:        "Start lights",
	packet.CodeLightsOut:          "Lights out",
	packet.CodeDriveThroughServed: "Drive through served",
	packet.CodeStopGoServed:       "Stop go served",
	packet.CodeFlashback:          "Flashback",
	packet.CodeButtons:            "Button status",
	packet.CodeRedFlag:            "Red Flag",
	packet.CodeOvertake:           "Overtake",
}

// DescribeEvent renders an event as one line of text. Vehicle indexes are
// printed as "car N" since names live in the participants packet.
func DescribeEvent(d packet.EventDetails) string {
	title, ok := EventCodes[d.Code()]
	if !ok {
		title = d.Code()
	}
	switch e := d.(type) {
	case packet.FastestLap:
		return fmt.Sprintf("%s: car %d, %.3fs", title, e.VehicleIdx, e.LapTime)
	case packet.Retirement:
		return fmt.Sprintf("%s: car %d", title, e.VehicleIdx)
	case packet.TeamMateInPits:
		return fmt.Sprintf("%s: car %d", title, e.VehicleIdx)
	case packet.RaceWinner:
		return fmt.Sprintf("%s: car %d", title, e.VehicleIdx)
	case packet.Penalty:
		return fmt.Sprintf("%s: car %d, %s (%s), lap %d",
			title, e.VehicleIdx,
			PenaltyTypes.Name(int(e.PenaltyType)),
			InfringementTypes.Name(int(e.InfringementType)),
			e.LapNum)
	case packet.SpeedTrap:
		return fmt.Sprintf("%s: car %d, %.1f km/h", title, e.VehicleIdx, e.Speed)
	case packet.StartLights:
		return fmt.Sprintf("%s: %d", title, e.NumLights)
	case packet.DriveThroughServed:
		return fmt.Sprintf("%s: car %d", title, e.VehicleIdx)
	case packet.StopGoServed:
		return fmt.Sprintf("%s: car %d", title, e.VehicleIdx)
	case packet.Flashback:
		return fmt.Sprintf("%s: frame %d, %.3fs", title, e.FrameIdentifier, e.SessionTime)
	case packet.Buttons:
		return fmt.Sprintf("%s: 0x%08x", title, e.ButtonStatus)
	case packet.Overtake:
		return fmt.Sprintf("%s: car %d passed car %d",
			title, e.OvertakingVehicleIdx, e.BeingOvertakenVehicleIdx)
	default:
		return title
	}
}
