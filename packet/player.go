package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// CarTelemetry is one car's entry of the car telemetry packet.
type CarTelemetry struct {
	Speed                   uint16     // Speed of car in kilometres per hour
	Throttle                float32    // Amount of throttle applied (0.0 to 1.0)
	Steer                   float32    // Steering (-1.0 (full lock left) to 1.0 (full lock right))
	Brake                   float32    // Amount of brake applied (0.0 to 1.0)
	Clutch                  uint8      // Amount of clutch applied (0 to 100)
	Gear                    int8       // Gear selected (1-8, N=0, R=-1)
	EngineRPM               uint16     // Engine RPM
	DRS                     uint8      // 0 = off, 1 = on
	RevLightsPercent        uint8      // Rev lights indicator (percentage)
	RevLightsBitValue       uint16     // Rev lights (bit 0 = leftmost LED, bit 14 = rightmost LED)
	BrakesTemperature       [4]uint16  // Brakes temperature (celsius)
	TyresSurfaceTemperature [4]uint8   // Tyres surface temperature (celsius)
	TyresInnerTemperature   [4]uint8   // Tyres inner temperature (celsius)
	EngineTemperature       uint16     // Engine temperature (celsius)
	TyresPressure           [4]float32 // Tyres pressure (PSI)
	SurfaceType             [4]uint8   // Driving surface, see appendices
}

// CarStatus is one car's entry of the car status packet.
type CarStatus struct {
	TractionControl         uint8   // 0 = off, 1 = medium, 2 = full
	AntiLockBrakes          uint8   // 0 (off) - 1 (on)
	FuelMix                 uint8   // 0 = lean, 1 = standard, 2 = rich, 3 = max
	FrontBrakeBias          uint8   // Front brake bias (percentage)
	PitLimiterStatus        uint8   // 0 = off, 1 = on
	FuelInTank              float32 // Current fuel mass
	FuelCapacity            float32 // Fuel capacity
	FuelRemainingLaps       float32 // Fuel remaining in terms of laps (value on MFD)
	MaxRPM                  uint16  // Cars max RPM, point of rev limiter
	IdleRPM                 uint16  // Cars idle RPM
	MaxGears                uint8   // Maximum number of gears
	DRSAllowed              uint8   // 0 = not allowed, 1 = allowed
	DRSActivationDistance   uint16  // 0 = DRS not available, non-zero - available in [X] metres
	ActualTyreCompound      uint8
	VisualTyreCompound      uint8
	TyresAgeLaps            uint8
	VehicleFIAFlags         int8    // -1 = invalid/unknown, 0 = none, 1 = green, 2 = blue, 3 = yellow
	EnginePowerICE          float32 // W
	EnginePowerMGUK         float32 // W
	ERSStoreEnergy          float32 // ERS energy store in Joules
	ERSDeployMode           uint8   // 0 = none, 1 = medium, 2 = hotlap, 3 = overtake
	ERSHarvestedThisLapMGUK float32
	ERSHarvestedThisLapMGUH float32
	ERSDeployedThisLap      float32
	NetworkPaused           uint8
}

// PlayerTelemetry returns the telemetry entry of the player's car.
func PlayerTelemetry(p *Packet) (CarTelemetry, error) {
	return playerEntry[CarTelemetry](p, PacketCarTelemetry, "car_telemetry_data")
}

// PlayerStatus returns the status entry of the player's car.
func PlayerStatus(p *Packet) (CarStatus, error) {
	return playerEntry[CarStatus](p, PacketCarStatus, "car_status_data")
}

// playerEntry reads the player's element of a per-car record array into T,
// whose binary layout matches the element layout.
func playerEntry[T any](p *Packet, id PacketID, field string) (T, error) {
	var out T
	if p.ID != id {
		return out, fmt.Errorf("%w: want %s, got %s", ErrWrongPacket, id, p.ID)
	}
	cars, ok := p.Record.Records(field)
	if !ok {
		return out, fmt.Errorf("%w: no %s", ErrWrongPacket, field)
	}
	idx := int(p.Header.PlayerCarIndex)
	if idx >= len(cars) {
		return out, fmt.Errorf("%w: index %d", ErrNoPlayerCar, idx)
	}
	raw, err := Encode(cars[idx])
	if err != nil {
		return out, err
	}
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &out); err != nil {
		return out, err
	}
	return out, nil
}
