// Package mock generates synthetic F1 23 datagrams for demos and tests
// without a running game.
package mock

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gadams999/f123telem/packet"
)

// Generator simulates one car lapping alone. Other cars stay zeroed.
type Generator struct {
	SessionUID     uint64
	PlayerCarIndex uint8
	TrackID        int8
	LapLength      float64 // metres

	rnd         *rand.Rand
	frame       uint32
	sessionTime float64
	distance    float64
	lap         uint8
	lapStart    float64
	bestLap     float64
}

func NewGenerator(seed int64) *Generator {
	rnd := rand.New(rand.NewSource(seed))
	return &Generator{
		SessionUID:     rnd.Uint64(),
		PlayerCarIndex: 0,
		TrackID:        10, // Spa
		LapLength:      7004,
		rnd:            rnd,
		lap:            1,
	}
}

// Frame returns the frame identifier of the next tick.
func (g *Generator) Frame() uint32 { return g.frame }

func (g *Generator) header() packet.Header {
	return packet.Header{
		GameYear:                23,
		GameMajorVersion:        1,
		GameMinorVersion:        18,
		SessionUID:              g.SessionUID,
		SessionTime:             float32(g.sessionTime),
		FrameIdentifier:         g.frame,
		OverallFrameIdentifier:  g.frame,
		PlayerCarIndex:          g.PlayerCarIndex,
		SecondaryPlayerCarIndex: packet.NoCar,
	}
}

// Tick advances the simulation by dt seconds and returns the datagrams sent
// for that frame: telemetry, status and lap data every frame, session data
// once a second and events when something happens.
func (g *Generator) Tick(dt float64) ([][]byte, error) {
	var out [][]byte
	add := func(b []byte, err error) error {
		if err != nil {
			return err
		}
		out = append(out, b)
		return nil
	}

	if g.frame == 0 {
		if err := add(g.event(packet.CodeSessionStarted, nil)); err != nil {
			return nil, err
		}
	}

	speed := g.speed()
	g.distance += speed / 3.6 * dt
	if g.distance >= g.LapLength {
		g.distance -= g.LapLength
		lapTime := g.sessionTime - g.lapStart
		g.lapStart = g.sessionTime
		g.lap++
		if g.bestLap == 0 || lapTime < g.bestLap {
			g.bestLap = lapTime
			err := add(g.event(packet.CodeFastestLap, func(w *packet.Writer) error {
				if err := w.SetUint("event_details.fastest_lap.vehicle_idx", uint64(g.PlayerCarIndex)); err != nil {
					return err
				}
				return w.SetFloat("event_details.fastest_lap.lap_time", lapTime)
			}))
			if err != nil {
				return nil, err
			}
		}
	}

	if err := add(g.telemetry(speed)); err != nil {
		return nil, err
	}
	if err := add(g.status()); err != nil {
		return nil, err
	}
	if err := add(g.lapData()); err != nil {
		return nil, err
	}
	if g.frame%60 == 0 {
		if err := add(g.session()); err != nil {
			return nil, err
		}
	}

	g.frame++
	g.sessionTime += dt
	return out, nil
}

// speed follows the lap distance with some noise, in km/h.
func (g *Generator) speed() float64 {
	phase := 2 * math.Pi * g.distance / g.LapLength
	v := 210 + 100*math.Sin(3*phase) + g.rnd.Float64()*4
	return math.Max(60, math.Min(v, 340))
}

func (g *Generator) car(field string) string {
	return fmt.Sprintf("%s[%d]", field, g.PlayerCarIndex)
}

func (g *Generator) telemetry(speed float64) ([]byte, error) {
	w, err := packet.NewPacketWriter(packet.PacketCarTelemetry, g.header())
	if err != nil {
		return nil, err
	}
	gear := min(8, 1+int64(speed/42))
	rpm := 4000 + uint64(math.Mod(speed, 42)/42*8000)
	throttle := math.Min(1, speed/300)
	car := g.car("car_telemetry_data")
	return set(w,
		w.SetUint(car+".speed", uint64(speed)),
		w.SetFloat(car+".throttle", throttle),
		w.SetFloat(car+".brake", 1-throttle),
		w.SetInt(car+".gear", gear),
		w.SetUint(car+".engine_rpm", rpm),
		w.SetUint(car+".drs", boolUint(speed > 290)),
		w.SetUint(car+".rev_lights_percent", rpm*100/12000),
		w.SetUint(car+".engine_temperature", 100+uint64(g.rnd.Intn(10))),
		w.SetFloat(car+".tyres_pressure[0]", 22.5),
		w.SetFloat(car+".tyres_pressure[1]", 22.5),
		w.SetFloat(car+".tyres_pressure[2]", 21.0),
		w.SetFloat(car+".tyres_pressure[3]", 21.0),
		w.SetInt("suggested_gear", 0),
		w.SetUint("mfd_panel_index", 255),
		w.SetUint("mfd_panel_index_secondary_player", 255),
	)
}

func (g *Generator) status() ([]byte, error) {
	w, err := packet.NewPacketWriter(packet.PacketCarStatus, g.header())
	if err != nil {
		return nil, err
	}
	car := g.car("car_status_data")
	fuel := math.Max(0, 100-g.sessionTime/60)
	return set(w,
		w.SetFloat(car+".fuel_in_tank", fuel),
		w.SetFloat(car+".fuel_capacity", 110),
		w.SetFloat(car+".fuel_remaining_laps", fuel/1.6),
		w.SetUint(car+".max_rpm", 12000),
		w.SetUint(car+".idle_rpm", 4000),
		w.SetUint(car+".max_gears", 8),
		w.SetUint(car+".actual_tyre_compound", 17),
		w.SetUint(car+".visual_tyre_compound", 17),
		w.SetFloat(car+".ers_store_energy", 4e6),
		w.SetUint(car+".ers_deploy_mode", 1),
	)
}

func (g *Generator) lapData() ([]byte, error) {
	w, err := packet.NewPacketWriter(packet.PacketLapData, g.header())
	if err != nil {
		return nil, err
	}
	car := g.car("lap_data")
	current := g.sessionTime - g.lapStart
	return set(w,
		w.SetUint(car+".last_lap_time_in_ms", uint64(g.bestLap*1000)),
		w.SetUint(car+".current_lap_time_in_ms", uint64(current*1000)),
		w.SetFloat(car+".lap_distance", g.distance),
		w.SetFloat(car+".total_distance", float64(g.lap-1)*g.LapLength+g.distance),
		w.SetUint(car+".car_position", 1),
		w.SetUint(car+".current_lap_num", uint64(g.lap)),
		w.SetUint(car+".sector", uint64(min(2, int(3*g.distance/g.LapLength)))),
		w.SetUint(car+".driver_status", 4),
		w.SetUint(car+".result_status", 2),
		w.SetUint("time_trial_pb_car_idx", 255),
		w.SetUint("time_trial_rival_car_idx", 255),
	)
}

func (g *Generator) session() ([]byte, error) {
	w, err := packet.NewPacketWriter(packet.PacketSession, g.header())
	if err != nil {
		return nil, err
	}
	return set(w,
		w.SetUint("weather", 1),
		w.SetInt("track_temperature", 31),
		w.SetInt("air_temperature", 24),
		w.SetUint("total_laps", 44),
		w.SetUint("track_length", uint64(g.LapLength)),
		w.SetUint("session_type", 15),
		w.SetInt("track_id", int64(g.TrackID)),
		w.SetUint("session_time_left", 3600),
		w.SetUint("session_duration", 3600),
		w.SetUint("pit_speed_limit", 80),
	)
}

func (g *Generator) event(code string, fill func(w *packet.Writer) error) ([]byte, error) {
	w, err := packet.NewPacketWriter(packet.PacketEvent, g.header())
	if err != nil {
		return nil, err
	}
	if err := w.SetText("event_string_code", code); err != nil {
		return nil, err
	}
	if fill != nil {
		if err := fill(w); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// set returns the writer's bytes unless one of the setter errors is non-nil.
func set(w *packet.Writer, errs ...error) ([]byte, error) {
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

func boolUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
