package appendix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gadams999/f123telem/packet"
)

func TestTableName(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		id    int
		want  string
	}{
		{"team", Teams, 0, "Mercedes"},
		{"track", Tracks, 4, "Catalunya"},
		{"unknown track", Tracks, -1, "Unknown (-1)"},
		{"negative flag", FIAFlags, -1, "Invalid/unknown"},
		{"network human", Drivers, 255, "Unknown (255)"},
		{"weather", Weather, 4, "Heavy rain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.table.Name(tt.id))
		})
	}
}

func TestTableKeys(t *testing.T) {
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4}, FIAFlags.Keys())
	assert.Equal(t, []int{0, 1}, OnOff.Keys())
}

func TestLapValidFlags(t *testing.T) {
	assert.Empty(t, LapValidFlags(0))
	assert.Equal(t, []string{"Lap valid"}, LapValidFlags(LapValid))
	assert.Equal(t, []string{"Sector 1 valid", "Sector 3 valid"}, LapValidFlags(Sector1Valid|Sector3Valid))
	assert.Len(t, LapValidFlags(0xff), 4)
}

func TestEventCodesComplete(t *testing.T) {
	for _, m := range packet.EventUnion().Members() {
		_, ok := EventCodes[m.Code]
		assert.True(t, ok, m.Code)
	}
	assert.Len(t, EventCodes, len(packet.EventUnion().Members()))
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		in   packet.EventDetails
		want string
	}{
		{packet.SessionStarted{}, "Session Started"},
		{packet.FastestLap{VehicleIdx: 3, LapTime: 81.5}, "Fastest Lap: car 3, 81.500s"},
		{
			packet.Penalty{PenaltyType: 4, InfringementType: 4, VehicleIdx: 2, LapNum: 7},
			"Penalty Issued: car 2, Time penalty (Small Collision), lap 7",
		},
		{packet.SpeedTrap{VehicleIdx: 1, Speed: 331.5}, "Speed Trap Triggered: car 1, 331.5 km/h"},
		{packet.StartLights{NumLights: 3}, "Start lights: 3"},
		{packet.Buttons{ButtonStatus: 0x10}, "Button status: 0x00000010"},
		{packet.Overtake{OvertakingVehicleIdx: 5, BeingOvertakenVehicleIdx: 6}, "Overtake: car 5 passed car 6"},
		{packet.RedFlag{}, "Red Flag"},
	}
	for _, tt := range tests {
		t.Run(tt.in.Code(), func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeEvent(tt.in))
		})
	}
}
